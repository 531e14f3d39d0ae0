package main

import (
	"fmt"

	"github.com/izouxv/goShamir/field"
	"github.com/spf13/cobra"
)

func newModuliCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moduli",
		Short: "List the registered prime moduli",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range field.Names() {
				f, err := field.Get(name)
				if err != nil {
					return err
				}
				marker := ""
				if name == field.DefaultName {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bits%s\n", name, f.Modulus().BitLen(), marker)
			}
			return nil
		},
	}
}

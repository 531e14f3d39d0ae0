package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/izouxv/goShamir/sharefile"
	"github.com/spf13/cobra"
)

func newSealCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "seal IN OUT",
		Short: "Encrypt a JSON share document with a password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeal(args[0], args[1], g.secretPassword(os.LookupEnv))
		},
	}
}

func runSeal(in, out, password string) error {
	if password == "" {
		return errors.New("a password is required: use --password or $SHAMIR_PASSWORD")
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", in, err)
	}
	doc, err := sharefile.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	sealed, err := sharefile.Seal(doc, password)
	if err != nil {
		return err
	}
	return os.WriteFile(out, sealed, 0o600)
}

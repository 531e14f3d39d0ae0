package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type globalFlags struct {
	verbose  bool
	password string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:           "shamir-recover",
		Short:         "Recover Shamir secrets from threshold share documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "development logging")
	cmd.PersistentFlags().StringVar(&g.password, "password", "", "password for sealed share documents (default $SHAMIR_PASSWORD)")

	cmd.AddCommand(newSolveCmd(g), newSealCmd(g), newModuliCmd())
	return cmd
}

func (g *globalFlags) logger() (*zap.Logger, error) {
	if g.verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func (g *globalFlags) secretPassword(lookup func(string) (string, bool)) string {
	if g.password != "" {
		return g.password
	}
	if pw, ok := lookup("SHAMIR_PASSWORD"); ok {
		return pw
	}
	return ""
}

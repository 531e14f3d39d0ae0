package main

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"runtime"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/izouxv/goShamir/secret"
	"github.com/izouxv/goShamir/sharefile"
	"github.com/izouxv/goShamir/utils"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type solveFlags struct {
	strategy string
	modulus  string
	strict   bool
	format   string
	jobs     int
}

func newSolveCmd(g *globalFlags) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Print the secret of each share document, one per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := g.logger()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			return runSolve(cmd.Context(), cmd.OutOrStdout(), logger, g.secretPassword(os.LookupEnv), f, args)
		},
	}
	cmd.Flags().StringVar(&f.strategy, "strategy", secret.StrategyModular, "interpolation strategy: modular or rational")
	cmd.Flags().StringVar(&f.modulus, "modulus", "", "registered prime modulus for the modular strategy (see 'moduli')")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "rational strategy: fail instead of truncating a non-integer result")
	cmd.Flags().StringVar(&f.format, "format", "dec", "output format: dec or hex")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", runtime.NumCPU(), "documents solved in parallel")
	return cmd
}

func formatSecret(s *big.Int, format string) (string, error) {
	switch format {
	case "dec":
		return s.String(), nil
	case "hex":
		return hexutil.EncodeBig(s), nil
	}
	return "", fmt.Errorf("unknown output format %q", format)
}

func runSolve(ctx context.Context, out io.Writer, logger *zap.Logger, password string, f *solveFlags, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := formatSecret(big.NewInt(0), f.format); err != nil {
		return err
	}
	ip, err := secret.NewInterpolator(f.strategy, f.modulus, f.strict)
	if err != nil {
		return err
	}

	results := make([]string, len(paths))
	grp, ctx := errgroup.WithContext(ctx)
	if f.jobs > 0 {
		grp.SetLimit(f.jobs)
	}
	for i, path := range paths {
		i, path := i, path
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, raw, err := sharefile.Load(path, password)
			if err != nil {
				logger.Error("load failed", zap.String("file", path), zap.Error(err))
				return err
			}
			log := logger.With(
				zap.String("file", path),
				zap.String("fingerprint", utils.Fingerprint(raw)),
				zap.Int("n", doc.N),
				zap.Int("k", doc.K),
				zap.Int("shares", len(doc.Shares)),
				zap.String("strategy", ip.Name()),
			)
			s, err := doc.Recover(secret.WithInterpolator(ip))
			if err != nil {
				log.Error("recovery failed", zap.Error(err))
				return fmt.Errorf("%s: %w", path, err)
			}
			log.Info("secret recovered")
			results[i], err = formatSecret(s, f.format)
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(out, r); err != nil {
			return err
		}
	}
	return nil
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/acctnum"
	"github.com/teller-dev/teller/internal/bank"
	"github.com/teller-dev/teller/internal/buildinfo"
	"github.com/teller-dev/teller/internal/config"
	"github.com/teller-dev/teller/internal/logger"
)

// NewRootCommand creates the root CLI command. Running it starts an
// interactive ledger session on stdin/stdout.
func NewRootCommand() *cobra.Command {
	var cfgPath string
	var seed int64
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "teller",
		Short:   "Interactive in-memory bank ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if seed != 0 {
				cfg.Allocator.Seed = seed
			}

			log := logger.New(verbose)
			ledger := bank.New(acctnum.New(cfg.Allocator.Seed), log)

			sess := newSession(ledger, cfg, cmd.InOrStdin(), cmd.OutOrStdout())
			return sess.run()
		},
	}

	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to teller.yaml")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "account number RNG seed (0 = random)")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	return rootCmd
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

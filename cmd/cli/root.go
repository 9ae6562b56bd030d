package cli

import (
	"fmt"
	"os"

	"cross-bloomfilter/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir   string
	verbose   bool
	gzipDumps bool
	st        *store.Store
	logger    *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:           "bloomctl",
	Short:         "Create, query and exchange cross-language Bloom filter dumps",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		logger = log.Sugar()

		s, err := store.Open(dataDir, store.WithLogger(logger))
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		st = s
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		st, logger = nil, nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data-dir", "d", "./data", "Directory to store filter dumps")
	rootCmd.PersistentFlags().BoolVar(&gzipDumps, "gzip", true, "Gzip the payload of written dumps")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"
	return cfg.Build()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func getStore() *store.Store {
	if st == nil {
		panic("store not initialized")
	}
	return st
}

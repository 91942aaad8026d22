package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/annekeller/mediasearch/pkg/config"
	apperrors "github.com/annekeller/mediasearch/pkg/errors"
	"github.com/annekeller/mediasearch/pkg/logger"
	"github.com/annekeller/mediasearch/pkg/metrics"
)

var (
	cfgFile    string
	cfg        *config.Config
	appMetrics *metrics.Metrics
)

var rootCmd = &cobra.Command{
	Use:   "mediasearch",
	Short: "Build and query a German-language media-item search index",
	Long: `mediasearch indexes a corpus of media-item records (description,
credit, date, dimensions) for German-language full-text search with BM25
ranking and prefix expansion.

Example usage:
  mediasearch build                 # load the corpus, preprocess, and index it
  mediasearch search                # build the index and query it interactively
  mediasearch search -q "berlin"    # build the index and run a single query
  mediasearch status                # report on corpus/cache/index health`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
		if cfg.Metrics.Enabled {
			appMetrics = metrics.New()
			metrics.StartServer(cfg.Metrics.Port)
		}
		return nil
	},
}

// Execute runs the root command and exits the process with a code derived
// from any returned error via apperrors.ExitCode.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(apperrors.ExitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: built-in defaults)")
}

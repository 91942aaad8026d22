package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/annekeller/mediasearch/internal/search/index"
	"github.com/annekeller/mediasearch/pkg/health"
	"github.com/annekeller/mediasearch/pkg/postgres"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Run health checks against the corpus, cache, and index",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	checker := health.NewChecker()

	checker.Register("index-build", func(ctx context.Context) health.ComponentHealth {
		idx, _, err := buildIndex(ctx)
		if err != nil {
			return health.ComponentHealth{Status: health.StatusDown, Message: err.Error()}
		}
		return health.ComponentHealth{
			Status:  health.StatusUp,
			Message: fmt.Sprintf("%d documents indexed", idx.DocCount(index.Desc)),
		}
	})

	if cfg.Corpus.UsePostgres {
		checker.Register("postgres", func(ctx context.Context) health.ComponentHealth {
			client, err := postgres.New(cfg.Postgres)
			if err != nil {
				return health.ComponentHealth{Status: health.StatusDown, Message: err.Error()}
			}
			defer client.Close()
			return health.ComponentHealth{Status: health.StatusUp}
		})
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()
	report := checker.Run(ctx)

	fmt.Printf("overall: %s\n", report.Status)
	for name, comp := range report.Components {
		fmt.Printf("  %-14s %-10s %s (%s)\n", name, comp.Status, comp.Message, comp.Latency)
	}
	return nil
}

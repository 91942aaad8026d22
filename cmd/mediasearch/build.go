package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/annekeller/mediasearch/internal/corpus"
	"github.com/annekeller/mediasearch/internal/corpus/cache"
	"github.com/annekeller/mediasearch/internal/search/index"
	"github.com/annekeller/mediasearch/internal/search/preprocess"
	"github.com/annekeller/mediasearch/internal/search/record"
	apperrors "github.com/annekeller/mediasearch/pkg/errors"
	"github.com/annekeller/mediasearch/pkg/logger"
	"github.com/annekeller/mediasearch/pkg/postgres"
	pkgredis "github.com/annekeller/mediasearch/pkg/redis"
	"github.com/annekeller/mediasearch/pkg/resilience"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Load the corpus, preprocess it, and build the search index",
	RunE:  runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	idx, _, err := buildIndex(cmd.Context())
	if err != nil {
		return err
	}
	printCorpusStats(idx)
	return nil
}

// buildIndex runs the full one-shot build pipeline (load corpus, preprocess
// with the cache, add to a fresh index, finalize) and returns the
// finalized index alongside cache hit/miss counters. Both `build` and
// `search` call this — the index is never persisted across process
// invocations (spec.md §5: loaded once at startup).
func buildIndex(ctx context.Context) (*index.Index, *cache.Coalescer, error) {
	log := logger.WithComponent("build")
	start := time.Now()

	raws, err := loadCorpus(ctx)
	if err != nil {
		return nil, nil, err
	}
	log.Info("corpus loaded", "records", len(raws))

	preprocessCache, err := openCache()
	if err != nil {
		return nil, nil, err
	}
	coalescer := cache.NewCoalescer(preprocessCache)

	idx := index.New()
	for i, raw := range raws {
		rec := raw.ToRaw()
		processed, err := coalescer.GetOrCompute(raw, func() record.Processed {
			return preprocess.Document(rec)
		})
		if err != nil {
			preprocessCache.Close()
			return nil, nil, apperrors.Newf(apperrors.ErrInternal, 1, "preprocessing record %s: %v", raw.ID, err)
		}
		idx.AddDocument(i, processed)
	}
	idx.Finalize()
	preprocessCache.Close()

	elapsed := time.Since(start)
	log.Info("build complete",
		"docs", len(raws),
		"cache_hits", coalescer.Hits(),
		"cache_misses", coalescer.Misses(),
		"elapsed", elapsed.Round(time.Millisecond).String(),
	)
	recordBuildMetrics(idx, coalescer, elapsed)

	return idx, coalescer, nil
}

// recordBuildMetrics populates the Prometheus collectors in pkg/metrics, if
// the process was started with metrics enabled; a no-op otherwise.
func recordBuildMetrics(idx *index.Index, coalescer *cache.Coalescer, elapsed time.Duration) {
	if appMetrics == nil {
		return
	}
	appMetrics.BuildDuration.Observe(elapsed.Seconds())
	appMetrics.DocsIndexedTotal.Add(float64(idx.DocCount(index.Desc)))
	for _, f := range []index.Field{index.Desc, index.Credit, index.IDField} {
		appMetrics.FieldAvgDocLength.WithLabelValues(f.String()).Set(idx.AvgDocLength(f))
	}
	appMetrics.CacheHitsTotal.Add(float64(coalescer.Hits()))
	appMetrics.CacheMissesTotal.Add(float64(coalescer.Misses()))
}

func loadCorpus(ctx context.Context) ([]corpus.RawRecord, error) {
	if cfg.Corpus.UsePostgres {
		client, err := postgres.New(cfg.Postgres)
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrCorpusSourceUnavailable, 3, "connecting to postgres: %v", err)
		}
		defer client.Close()
		src := corpus.NewPgSource(client)
		records, err := src.LoadAll(ctx)
		recordBreakerMetric("postgres-corpus-source", src.BreakerState())
		return records, err
	}
	return corpus.NewFileLoader(cfg.Corpus.FileGlobs, true).Load()
}

// recordBreakerMetric publishes a circuit breaker's current state (0=closed,
// 1=open, 2=half-open) to the CircuitBreakerState gauge, if metrics are
// enabled.
func recordBreakerMetric(name string, state resilience.State) {
	if appMetrics == nil {
		return
	}
	appMetrics.CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

func openCache() (cache.PreprocessCache, error) {
	switch cfg.Cache.Backend {
	case "redis":
		client, err := pkgredis.NewClient(cfg.Redis)
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrCacheUnavailable, 3, "connecting to redis cache: %v", err)
		}
		return cache.NewRedisCache(client, cfg.Redis), nil
	case "none":
		return noCache{}, nil
	default:
		path := cfg.Cache.BoltPath
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, apperrors.Newf(apperrors.ErrCacheUnavailable, 3, "creating cache directory: %v", err)
		}
		boltCache, err := cache.NewBoltCache(path)
		if err != nil {
			return nil, apperrors.Newf(apperrors.ErrCacheUnavailable, 3, "opening bolt cache: %v", err)
		}
		return boltCache, nil
	}
}

// noCache is the "cache.Backend: none" PreprocessCache: every lookup is a
// miss, so every build run re-runs the Preprocessor from scratch.
type noCache struct{}

func (noCache) Get(string) (record.Processed, bool) { return record.Processed{}, false }
func (noCache) Set(string, record.Processed) error  { return nil }
func (noCache) Close() error                        { return nil }

func printCorpusStats(idx *index.Index) {
	fmt.Println()
	fmt.Println("Corpus statistics:")
	for _, f := range []index.Field{index.Desc, index.Credit, index.IDField} {
		fmt.Printf("  %-8s docs=%-6d avgLen=%-8.2f vocab=%d\n",
			f.String(), idx.DocCount(f), idx.AvgDocLength(f), idx.VocabSize(f))
	}
	fmt.Printf("  credits: %d distinct\n", len(idx.GetCredits()))
	fmt.Printf("  restrictions: %d distinct\n", len(idx.GetRestrictions()))
}

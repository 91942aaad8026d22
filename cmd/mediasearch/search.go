package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/annekeller/mediasearch/internal/search/index"
	"github.com/annekeller/mediasearch/internal/search/query"
)

var searchOnce string

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Build the index and search it interactively",
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchOnce, "query", "q", "", "run a single query and exit instead of entering the REPL")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	idx, _, err := buildIndex(cmd.Context())
	if err != nil {
		return err
	}

	if searchOnce != "" {
		renderResults(runQuery(idx, searchOnce))
		return nil
	}

	fmt.Println("Enter a query (empty line to exit):")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			break
		}
		renderResults(runQuery(idx, line))
	}
	return scanner.Err()
}

// runQuery runs a single query through the engine with the scoring knobs
// from the loaded config's search section, timing it for
// QueryLatency and approximating prefix-expansion usage for
// PrefixExpansionsTotal when metrics are enabled.
func runQuery(idx *index.Index, q string) []query.Result {
	s := cfg.Search
	qcfg := query.Config{
		K1:                 s.K1,
		B:                  s.B,
		DescWeight:         s.DescWeight,
		CreditWeight:       s.CreditWeight,
		IDWeight:           s.IDWeight,
		MinPrefixLength:    s.MinPrefixLength,
		MaxPrefixExpansion: s.MaxPrefixExpansion,
		PrefixPenalty:      s.PrefixPenalty,
	}
	start := time.Now()
	results := query.Search(idx, q, qcfg)
	recordQueryMetrics(q, results, time.Since(start))
	return results
}

func recordQueryMetrics(q string, results []query.Result, elapsed time.Duration) {
	if appMetrics == nil {
		return
	}
	appMetrics.QueryLatency.Observe(elapsed.Seconds())
	queryWords := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(q)) {
		queryWords[w] = struct{}{}
	}
	for _, r := range results {
		for _, term := range r.MatchedTerms {
			if _, exact := queryWords[strings.ToLower(term)]; !exact {
				appMetrics.PrefixExpansionsTotal.Inc()
			}
		}
	}
}

// renderResults prints id, score, matched terms, isoDate, and credit per
// result — a pure consumer of query.Result, not a new core feature.
func renderResults(results []query.Result) {
	if len(results) == 0 {
		fmt.Println("  (no results)")
		return
	}
	for _, r := range results {
		fmt.Printf("  [%d] score=%.4f date=%s credit=%q terms=%v\n",
			r.ID, r.Score, r.Record.IsoDate, r.Record.Credit, r.MatchedTerms)
	}
}

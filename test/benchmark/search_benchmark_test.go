package benchmark

import (
	"fmt"
	"testing"

	"github.com/annekeller/mediasearch/internal/search/bm25"
	"github.com/annekeller/mediasearch/internal/search/index"
	"github.com/annekeller/mediasearch/internal/search/preprocess"
	"github.com/annekeller/mediasearch/internal/search/query"
)

func buildBenchIndex(n int, descTemplate func(i int) string) *index.Index {
	idx := index.New()
	for i := 0; i < n; i++ {
		raw := benchRaw(i)
		raw.Desc = descTemplate(i)
		idx.AddDocument(i, preprocess.Document(raw))
	}
	idx.Finalize()
	return idx
}

// BenchmarkSearchExact measures end-to-end single-term search latency across
// corpora of increasing size.
func BenchmarkSearchExact(b *testing.B) {
	terms := []string{"bundesarchiv", "wiederaufbau", "berlin", "krieg", "fotograf"}
	sizes := []int{100, 1000, 10000}
	for _, n := range sizes {
		b.Run(fmt.Sprintf("docs_%d", n), func(b *testing.B) {
			idx := buildBenchIndex(n, func(i int) string {
				return fmt.Sprintf("Bundesarchiv %s Bildmaterial zur Wiederaufbauphase in Berlin nach dem Krieg",
					terms[i%len(terms)])
			})

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				results := query.Search(idx, terms[i%len(terms)], query.DefaultConfig())
				_ = results
			}
		})
	}
}

// BenchmarkSearchPrefix measures search latency when the query expands via
// prefix matching against a large vocabulary.
func BenchmarkSearchPrefix(b *testing.B) {
	idx := buildBenchIndex(5000, func(i int) string {
		return fmt.Sprintf("Bildarchiv Bildagentur Bildnachweis Bildbeschreibung bild%d", i)
	})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		results := query.Search(idx, "bild", query.DefaultConfig())
		_ = results
	}
}

// BenchmarkSearchMultiTerm measures search latency as the number of query
// terms increases.
func BenchmarkSearchMultiTerm(b *testing.B) {
	vocab := []string{"bundesarchiv", "wiederaufbau", "berlin", "krieg", "fotograf", "archiv", "presse", "nachlass", "sammlung", "index"}
	idx := buildBenchIndex(5000, func(i int) string {
		return fmt.Sprintf("%s %s %s", vocab[i%len(vocab)], vocab[(i+1)%len(vocab)], vocab[(i+2)%len(vocab)])
	})

	termCounts := []int{1, 3, 5, 10}
	for _, tc := range termCounts {
		b.Run(fmt.Sprintf("terms_%d", tc), func(b *testing.B) {
			q := ""
			for i := 0; i < tc; i++ {
				q += vocab[i%len(vocab)] + " "
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				results := query.Search(idx, q, query.DefaultConfig())
				_ = results
			}
		})
	}
}

// BenchmarkSearchParallel measures concurrent search throughput over a
// shared, already-finalized index.
func BenchmarkSearchParallel(b *testing.B) {
	idx := buildBenchIndex(10000, func(i int) string {
		return "Bundesarchiv Wiederaufbau Berlin Krieg Fotograf"
	})

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			results := query.Search(idx, "berlin", query.DefaultConfig())
			_ = results
		}
	})
}

// BenchmarkFilterApply measures filter-and-sort throughput over a full
// result set.
func BenchmarkFilterApply(b *testing.B) {
	idx := buildBenchIndex(10000, func(i int) string {
		return "Bundesarchiv Wiederaufbau Berlin Krieg Fotograf"
	})
	results := query.Search(idx, "", query.DefaultConfig())
	filter := query.Filter{Credit: "Bundesarchiv/Fotograf", HasCredit: true, Sort: query.SortDesc}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		filtered := query.Apply(results, filter)
		_ = filtered
	}
}

// BenchmarkBM25TermScore measures raw scoring-function cost in isolation,
// independent of index traversal.
func BenchmarkBM25TermScore(b *testing.B) {
	idf := bm25.IDF(50, 10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		score := bm25.TermScore(3, 42.0, 38.5, idf, bm25.DefaultK1, bm25.DefaultB)
		_ = score
	}
}

// Package benchmark contains Go benchmarks for the tokenizer, the in-memory
// inverted index, and the query engine, measuring throughput and allocation
// behaviour.
package benchmark

import (
	"fmt"
	"testing"

	"github.com/annekeller/mediasearch/internal/search/index"
	"github.com/annekeller/mediasearch/internal/search/preprocess"
	"github.com/annekeller/mediasearch/internal/search/record"
)

func benchRaw(id int) record.Raw {
	return record.Raw{
		ID:     fmt.Sprintf("doc-%d", id),
		Desc:   "Bundesarchiv Bildmaterial ueber die Wiederaufbauphase in Berlin nach dem Krieg",
		Credit: "Bundesarchiv/Fotograf",
		Date:   "12.05.1952",
	}
}

// BenchmarkIndexAddDocument measures per-document insert throughput into the
// in-memory inverted index.
func BenchmarkIndexAddDocument(b *testing.B) {
	idx := index.New()
	rec := preprocess.Document(benchRaw(0))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.AddDocument(i, rec)
	}
}

// BenchmarkIndexGetPostings measures single-term posting lookup latency over
// 10 000 documents.
func BenchmarkIndexGetPostings(b *testing.B) {
	idx := index.New()
	for i := 0; i < 10000; i++ {
		idx.AddDocument(i, preprocess.Document(benchRaw(i)))
	}
	idx.Finalize()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		postings := idx.GetPostings("bundesarchiv", index.Desc)
		_ = postings
	}
}

// BenchmarkIndexGetPostingsParallel measures concurrent read throughput.
func BenchmarkIndexGetPostingsParallel(b *testing.B) {
	idx := index.New()
	for i := 0; i < 10000; i++ {
		idx.AddDocument(i, preprocess.Document(benchRaw(i)))
	}
	idx.Finalize()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			postings := idx.GetPostings("bundesarchiv", index.Desc)
			_ = postings
		}
	})
}

// BenchmarkIndexGetPrefixTerms measures the cost of a prefix vocabulary scan
// over an index with 5 000 documents.
func BenchmarkIndexGetPrefixTerms(b *testing.B) {
	idx := index.New()
	for i := 0; i < 5000; i++ {
		idx.AddDocument(i, preprocess.Document(benchRaw(i)))
	}
	idx.Finalize()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		terms := idx.GetPrefixTerms("bild", index.Desc, 50)
		_ = terms
	}
}

// BenchmarkBuildIndex measures full build throughput (preprocess + index) at
// various corpus sizes.
func BenchmarkBuildIndex(b *testing.B) {
	sizes := []int{100, 1000, 5000}
	for _, n := range sizes {
		b.Run(fmt.Sprintf("docs_%d", n), func(b *testing.B) {
			raws := make([]record.Raw, n)
			for i := range raws {
				raws[i] = benchRaw(i)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				idx := index.New()
				for j, raw := range raws {
					idx.AddDocument(j, preprocess.Document(raw))
				}
				idx.Finalize()
			}
		})
	}
}

// Package query implements the Query Engine (spec.md §4.8): tokenizing a
// query string, scoring exact and prefix-expanded matches across all three
// fields with BM25, and producing a deterministically ordered result set.
package query

import (
	"sort"

	"github.com/annekeller/mediasearch/internal/search/bm25"
	"github.com/annekeller/mediasearch/internal/search/index"
	"github.com/annekeller/mediasearch/internal/search/record"
	"github.com/annekeller/mediasearch/internal/search/tokenizer"
)

// Config holds the tunable search-time knobs, all overridable per query.
// Defaults here must match spec.md §4.8's table.
type Config struct {
	K1                 float64
	B                  float64
	DescWeight         float64
	CreditWeight       float64
	IDWeight           float64
	MinPrefixLength    int
	MaxPrefixExpansion int
	PrefixPenalty      float64
}

// DefaultConfig returns the configuration used when a caller supplies none.
func DefaultConfig() Config {
	return Config{
		K1:                 bm25.DefaultK1,
		B:                  bm25.DefaultB,
		DescWeight:         3.0,
		CreditWeight:       1.5,
		IDWeight:           1.0,
		MinPrefixLength:    3,
		MaxPrefixExpansion: 50,
		PrefixPenalty:      0.8,
	}
}

// Result is one scored document: its id, the underlying processed record,
// its accumulated score, and the sorted set of indexed terms that contributed
// to it: exact query tokens and any prefix-expanded vocabulary terms.
type Result struct {
	ID           int
	Record       record.Processed
	Score        float64
	MatchedTerms []string
}

var searchFields = [...]index.Field{index.Desc, index.Credit, index.IDField}

func weightFor(cfg Config, f index.Field) float64 {
	switch f {
	case index.Desc:
		return cfg.DescWeight
	case index.Credit:
		return cfg.CreditWeight
	default:
		return cfg.IDWeight
	}
}

type accumulator struct {
	score        float64
	matchedTerms map[string]struct{}
}

// Search tokenizes queryString with the same tokenizer used at indexing
// time, scores every matching document across all three fields with BM25
// (exact matches plus, for sufficiently long terms, prefix-expanded
// matches under a penalty), and returns results sorted by score descending
// with ties broken by isoDate descending. An empty-token query (browse
// mode) returns every document at score 0 in document-id order.
func Search(idx *index.Index, queryString string, cfg Config) []Result {
	tokens := tokenizer.Tokenize(queryString)

	if len(tokens) == 0 {
		docs := idx.GetAllDocuments()
		results := make([]Result, len(docs))
		for i, d := range docs {
			results[i] = Result{ID: i, Record: d, Score: 0, MatchedTerms: []string{}}
		}
		return results
	}

	acc := make(map[int]*accumulator)

	addMatches := func(term string, field index.Field, penalty float64) {
		postings := idx.GetPostings(term, field)
		if len(postings) == 0 {
			return
		}
		docCount := idx.DocCount(field)
		idf, cached := idx.CachedIDF(field, term)
		if !cached {
			idf = bm25.IDF(len(postings), docCount)
			idx.StoreIDF(field, term, idf)
		}
		avgLen := idx.AvgDocLength(field)
		weight := weightFor(cfg, field)
		for _, p := range postings {
			docLen := idx.DocLength(p.DocID, field)
			score := bm25.TermScore(p.Freq, float64(docLen), avgLen, idf, cfg.K1, cfg.B)
			score *= weight * penalty

			a, ok := acc[p.DocID]
			if !ok {
				a = &accumulator{matchedTerms: make(map[string]struct{})}
				acc[p.DocID] = a
			}
			a.score += score
			a.matchedTerms[term] = struct{}{}
		}
	}

	for _, term := range tokens {
		for _, field := range searchFields {
			addMatches(term, field, 1.0)

			if len(term) < cfg.MinPrefixLength || cfg.MaxPrefixExpansion <= 0 {
				continue
			}
			expansion := idx.GetPrefixTerms(term, field, cfg.MaxPrefixExpansion)
			for _, t2 := range expansion {
				if t2 == term {
					continue
				}
				addMatches(t2, field, cfg.PrefixPenalty)
			}
		}
	}

	docIDs := make([]int, 0, len(acc))
	for docID := range acc {
		docIDs = append(docIDs, docID)
	}
	sort.Ints(docIDs)

	results := make([]Result, 0, len(docIDs))
	for _, docID := range docIDs {
		a := acc[docID]
		rec, _ := idx.GetDocument(docID)
		terms := make([]string, 0, len(a.matchedTerms))
		for t := range a.matchedTerms {
			terms = append(terms, t)
		}
		sort.Strings(terms)
		results = append(results, Result{
			ID:           docID,
			Record:       rec,
			Score:        a.score,
			MatchedTerms: terms,
		})
	}

	// results is already built in ascending docID order, so sort.SliceStable
	// here plus the explicit ID tiebreaker below guarantees a fully
	// deterministic ordering even when score and isoDate both tie.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		if results[i].Record.IsoDate != results[j].Record.IsoDate {
			return results[i].Record.IsoDate > results[j].Record.IsoDate
		}
		return results[i].ID < results[j].ID
	})

	return results
}

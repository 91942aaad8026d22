package query

import (
	"testing"

	"github.com/annekeller/mediasearch/internal/search/index"
	"github.com/annekeller/mediasearch/internal/search/record"
)

func buildIndex(docs []record.Processed) *index.Index {
	idx := index.New()
	for i, d := range docs {
		idx.AddDocument(i, d)
	}
	idx.Finalize()
	return idx
}

func rec(id, desc, credit, isoDate string, markers []string) record.Processed {
	return record.Processed{
		Raw:       record.Raw{ID: id, Desc: desc, Credit: credit},
		IsoDate:   isoDate,
		Markers:   markers,
		CleanDesc: desc,
	}
}

func TestSearchExactMatch(t *testing.T) {
	idx := buildIndex([]record.Processed{
		rec("1", "Berlin Portrait", "IMAGO / Mueller", "2024-03-14", nil),
	})

	results := Search(idx, "berlin", DefaultConfig())
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Score <= 0 {
		t.Errorf("expected positive score, got %v", results[0].Score)
	}
	found := false
	for _, m := range results[0].MatchedTerms {
		if m == "berlin" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected matchedTerms to contain 'berlin', got %v", results[0].MatchedTerms)
	}
}

func TestSearchPrefixExpansionScoresLower(t *testing.T) {
	idx := buildIndex([]record.Processed{
		rec("1", "Berlin Portrait", "IMAGO / Mueller", "2024-03-14", nil),
	})

	exact := Search(idx, "berlin", DefaultConfig())
	prefix := Search(idx, "ber", DefaultConfig())

	if len(exact) != 1 || len(prefix) != 1 {
		t.Fatalf("expected a single result from each query")
	}
	if prefix[0].Score >= exact[0].Score {
		t.Errorf("expected prefix-expanded score (%v) to be lower than exact score (%v)", prefix[0].Score, exact[0].Score)
	}
}

func TestSearchRestrictionMarkerNotSearchable(t *testing.T) {
	idx := buildIndex([]record.Processed{
		rec("1", "Muenchen", "IMAGO / A", "2024-01-01", []string{"PUBLICATIONxINxGERxONLY"}),
	})

	results := Search(idx, "publication", DefaultConfig())
	if len(results) != 0 {
		t.Errorf("expected no results for a marker-only term, got %v", results)
	}
}

func TestSearchTieBreakNewestFirst(t *testing.T) {
	idx := buildIndex([]record.Processed{
		rec("1", "Portrait", "A", "2024-01-01", nil),
		rec("2", "Portrait", "B", "2024-03-14", nil),
	})

	results := Search(idx, "portrait", DefaultConfig())
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].ID != 1 || results[1].ID != 0 {
		t.Errorf("expected newest-first tie-break (doc 1 then doc 0), got order %d, %d", results[0].ID, results[1].ID)
	}
}

func TestSearchEmptyQueryBrowseMode(t *testing.T) {
	idx := buildIndex([]record.Processed{
		rec("1", "a", "c", "2024-01-01", nil),
		rec("2", "b", "c", "2024-01-02", nil),
		rec("3", "c", "c", "2024-01-03", nil),
	})

	results := Search(idx, "", DefaultConfig())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Score != 0 {
			t.Errorf("expected score 0 in browse mode, got %v", r.Score)
		}
		if r.ID != i {
			t.Errorf("expected document-id order in browse mode, got %d at position %d", r.ID, i)
		}
	}
}

func TestSearchHyphenatedCompound(t *testing.T) {
	idx := buildIndex([]record.Processed{
		rec("1", "Baden-Württemberg", "c", "2024-01-01", nil),
	})

	for _, q := range []string{"baden-wuerttemberg", "baden", "wuerttemberg"} {
		results := Search(idx, q, DefaultConfig())
		if len(results) != 1 || results[0].Score <= 0 {
			t.Errorf("query %q: expected a single positive-score result, got %+v", q, results)
		}
	}
}

func TestMaxPrefixExpansionZeroDisablesExpansion(t *testing.T) {
	idx := buildIndex([]record.Processed{
		rec("1", "Berlin Portrait", "c", "2024-01-01", nil),
	})

	cfg := DefaultConfig()
	cfg.MaxPrefixExpansion = 0
	results := Search(idx, "ber", cfg)
	if len(results) != 0 {
		t.Errorf("expected no results when prefix expansion is disabled, got %v", results)
	}
}

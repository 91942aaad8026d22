package index

import (
	"testing"

	"github.com/annekeller/mediasearch/internal/search/record"
)

func newTestRecord(id, desc, credit, isoDate string, markers []string) record.Processed {
	return record.Processed{
		Raw: record.Raw{
			ID:     id,
			Desc:   desc,
			Credit: credit,
		},
		IsoDate:   isoDate,
		Markers:   markers,
		CleanDesc: desc,
	}
}

func TestAddDocumentAndFinalize(t *testing.T) {
	idx := New()
	idx.AddDocument(0, newTestRecord("1", "Berlin Portrait", "IMAGO / Mueller", "2024-03-14", nil))
	idx.AddDocument(1, newTestRecord("2", "Muenchen Skyline", "IMAGO / Schmidt", "2024-01-01", nil))
	idx.Finalize()

	if idx.DocCount(Desc) != 2 {
		t.Fatalf("DocCount(Desc) = %d, want 2", idx.DocCount(Desc))
	}

	postings := idx.GetPostings("berlin", Desc)
	if len(postings) != 1 || postings[0].DocID != 0 {
		t.Errorf("GetPostings(berlin, Desc) = %v, want single posting for doc 0", postings)
	}
}

func TestAvgDocLength(t *testing.T) {
	idx := New()
	idx.AddDocument(0, newTestRecord("1", "one two three", "c", "2024-01-01", nil))
	idx.AddDocument(1, newTestRecord("2", "one two three four", "c", "2024-01-02", nil))
	idx.Finalize()

	want := float64(idx.DocLength(0, Desc)+idx.DocLength(1, Desc)) / 2
	if got := idx.AvgDocLength(Desc); got != want {
		t.Errorf("AvgDocLength(Desc) = %v, want %v", got, want)
	}
}

func TestGetPrefixTerms(t *testing.T) {
	idx := New()
	idx.AddDocument(0, newTestRecord("1", "Berlin Bern Bremen", "c", "2024-01-01", nil))
	idx.Finalize()

	got := idx.GetPrefixTerms("ber", Desc, 10)
	if len(got) != 2 {
		t.Errorf("GetPrefixTerms(ber) = %v, want 2 matches (berlin, bern)", got)
	}
}

func TestGetPrefixTermsEmptyVocab(t *testing.T) {
	idx := New()
	idx.Finalize()
	got := idx.GetPrefixTerms("ber", Desc, 10)
	if len(got) != 0 {
		t.Errorf("expected empty result on empty vocab, got %v", got)
	}
}

func TestCreditsAndRestrictions(t *testing.T) {
	idx := New()
	idx.AddDocument(0, newTestRecord("1", "Muenchen", "IMAGO / A", "2024-01-01", []string{"PUBLICATIONxINxGERxONLY"}))
	idx.AddDocument(1, newTestRecord("2", "Berlin", "IMAGO / B", "2024-01-02", nil))
	idx.Finalize()

	credits := idx.GetCredits()
	if len(credits) != 2 {
		t.Errorf("GetCredits() = %v, want 2 entries", credits)
	}
	restrictions := idx.GetRestrictions()
	if len(restrictions) != 1 || restrictions[0] != "PUBLICATIONxINxGERxONLY" {
		t.Errorf("GetRestrictions() = %v, want [PUBLICATIONxINxGERxONLY]", restrictions)
	}
}

func TestIDFCache(t *testing.T) {
	idx := New()
	if _, ok := idx.CachedIDF(Desc, "berlin"); ok {
		t.Fatalf("expected no cached value before StoreIDF")
	}
	idx.StoreIDF(Desc, "berlin", 0.42)
	v, ok := idx.CachedIDF(Desc, "berlin")
	if !ok || v != 0.42 {
		t.Errorf("CachedIDF after StoreIDF = (%v, %v), want (0.42, true)", v, ok)
	}
}

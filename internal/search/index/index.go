// Package index implements the in-memory, multi-field inverted index
// (spec.md §3, §4.6): per-field postings, per-document corpus statistics,
// and a cached IDF lookup shared by the BM25 scorer.
package index

import (
	"sort"
	"sync"

	"github.com/annekeller/mediasearch/internal/search/record"
	"github.com/annekeller/mediasearch/internal/search/tokenizer"
)

// Index is the searchable in-memory representation of a corpus: one
// fieldIndex per Field, the flat list of processed documents keyed by id,
// and the distinct sets of credits and restriction markers seen across the
// corpus. Index is built once via AddDocument calls in ascending id order
// starting at 0, then Finalize'd; it is never mutated incrementally after
// that (see SPEC_FULL.md's Non-goals on incremental updates).
type Index struct {
	fields [numFields]*fieldIndex

	documents []record.Processed

	creditSet      map[string]struct{}
	restrictionSet map[string]struct{}

	idfMu    sync.RWMutex
	idfCache map[idfKey]float64
}

type idfKey struct {
	field Field
	term  string
}

// New returns an empty Index ready to receive documents.
func New() *Index {
	idx := &Index{
		creditSet:      make(map[string]struct{}),
		restrictionSet: make(map[string]struct{}),
		idfCache:       make(map[idfKey]float64),
	}
	for f := range idx.fields {
		idx.fields[f] = newFieldIndex()
	}
	return idx
}

var fieldToTokenizerField = map[Field]tokenizer.Field{
	Desc:    tokenizer.FieldDesc,
	Credit:  tokenizer.FieldCredit,
	IDField: tokenizer.FieldID,
}

// AddDocument tokenizes and indexes rec under id, which must equal
// len(documents) at call time — documents are appended in ascending,
// contiguous order starting from 0, matching the corpus invariant in
// spec.md §3. CleanDesc (restriction-extracted but not yet normalized) is
// indexed for Desc, the raw Credit for Credit, and the raw ID for IDField;
// normalization happens exactly once, inside the tokenizer.
func (idx *Index) AddDocument(id int, rec record.Processed) {
	descTokens := tokenizer.TokenizeField(rec.CleanDesc, fieldToTokenizerField[Desc])
	creditTokens := tokenizer.TokenizeField(rec.Credit, fieldToTokenizerField[Credit])
	idTokens := tokenizer.TokenizeField(rec.ID, fieldToTokenizerField[IDField])

	idx.fields[Desc].indexTokens(id, descTokens)
	idx.fields[Credit].indexTokens(id, creditTokens)
	idx.fields[IDField].indexTokens(id, idTokens)

	if rec.Credit != "" {
		idx.creditSet[rec.Credit] = struct{}{}
	}
	for _, m := range rec.Markers {
		idx.restrictionSet[m] = struct{}{}
	}

	if id == len(idx.documents) {
		idx.documents = append(idx.documents, rec)
	} else if id < len(idx.documents) {
		idx.documents[id] = rec
	} else {
		for len(idx.documents) < id {
			idx.documents = append(idx.documents, record.Processed{})
		}
		idx.documents = append(idx.documents, rec)
	}
}

// Finalize computes per-field corpus statistics (average document length,
// sorted vocabulary) and must be called once after all documents have been
// added and before any scoring or prefix lookup is performed.
func (idx *Index) Finalize() {
	for _, fi := range idx.fields {
		fi.finalize()
	}
}

// GetPostings returns the postings for term in field. term is normalized
// (lowercased, umlaut/eszett-folded) before lookup, matching how terms were
// normalized at index time.
func (idx *Index) GetPostings(term string, field Field) PostingList {
	return idx.fields[field].postingsFor(tokenizer.NormalizeTerm(term))
}

// GetPrefixTerms returns up to limit vocabulary terms in field starting
// with the normalized form of prefix.
func (idx *Index) GetPrefixTerms(prefix string, field Field, limit int) []string {
	return idx.fields[field].prefixTerms(tokenizer.NormalizeTerm(prefix), limit)
}

// VocabSize returns the number of distinct terms indexed for field.
func (idx *Index) VocabSize(field Field) int {
	return idx.fields[field].vocabSize()
}

// DocCount returns the total number of documents added to field's index —
// equivalently, the corpus size, since every document contributes to every
// field's docLengths even when a field is empty for that document.
func (idx *Index) DocCount(field Field) int {
	return idx.fields[field].totalDocs
}

// DocLength returns the token count of field for docID.
func (idx *Index) DocLength(docID int, field Field) int {
	return idx.fields[field].docLengths[docID]
}

// AvgDocLength returns field's average document length across the corpus.
func (idx *Index) AvgDocLength(field Field) float64 {
	return idx.fields[field].avgDocLength
}

// GetDocument returns the processed record stored at id, and whether id is
// in range.
func (idx *Index) GetDocument(id int) (record.Processed, bool) {
	if id < 0 || id >= len(idx.documents) {
		return record.Processed{}, false
	}
	return idx.documents[id], true
}

// GetAllDocuments returns every processed document in the corpus, in id
// order. The returned slice must not be mutated by callers.
func (idx *Index) GetAllDocuments() []record.Processed {
	return idx.documents
}

// GetCredits returns every distinct credit string seen across the corpus,
// sorted ascending.
func (idx *Index) GetCredits() []string {
	return sortedKeys(idx.creditSet)
}

// GetRestrictions returns every distinct restriction marker seen across the
// corpus, sorted ascending.
func (idx *Index) GetRestrictions() []string {
	return sortedKeys(idx.restrictionSet)
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CachedIDF returns the cached IDF value for (field, term) and true if one
// has already been computed, or false otherwise. Callers that compute a
// fresh value should store it with StoreIDF. Safe for concurrent use;
// under a concurrent miss on the same key, last write wins.
func (idx *Index) CachedIDF(field Field, term string) (float64, bool) {
	idx.idfMu.RLock()
	defer idx.idfMu.RUnlock()
	v, ok := idx.idfCache[idfKey{field, term}]
	return v, ok
}

// StoreIDF caches value for (field, term).
func (idx *Index) StoreIDF(field Field, term string, value float64) {
	idx.idfMu.Lock()
	defer idx.idfMu.Unlock()
	idx.idfCache[idfKey{field, term}] = value
}

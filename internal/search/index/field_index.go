package index

import "sort"

// fieldIndex is the per-field subset of the inverted index: a term→postings
// map, per-document token counts, and corpus statistics, plus a sorted
// vocabulary used for prefix lookup. Adapted from the teacher's
// MemoryIndex (internal/indexer/index/memory_index.go), split one-per-field
// instead of one shared map, since postings storage here uses plain slices
// rather than per-term *Posting pointers (no positions to mutate in place).
type fieldIndex struct {
	postings     map[string]PostingList
	docLengths   map[int]int
	totalDocs    int
	avgDocLength float64
	vocab        []string
}

func newFieldIndex() *fieldIndex {
	return &fieldIndex{
		postings:   make(map[string]PostingList),
		docLengths: make(map[int]int),
	}
}

// indexTokens counts per-term frequencies in tokens and appends a posting
// for each distinct term, then records the document's token count for this
// field. Must be called at most once per (field, docID).
func (fi *fieldIndex) indexTokens(docID int, tokens []string) {
	freqs := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, seen := freqs[t]; !seen {
			order = append(order, t)
		}
		freqs[t]++
	}
	for _, term := range order {
		fi.postings[term] = append(fi.postings[term], Posting{DocID: docID, Freq: freqs[term]})
	}
	fi.docLengths[docID] = len(tokens)
	fi.totalDocs++
}

// finalize computes the average document length and builds the sorted
// vocabulary. Safe to call repeatedly; it always recomputes from current
// state, so re-finalizing with no intervening writes is idempotent.
func (fi *fieldIndex) finalize() {
	if fi.totalDocs == 0 {
		fi.avgDocLength = 0
	} else {
		var sum int
		for _, l := range fi.docLengths {
			sum += l
		}
		fi.avgDocLength = float64(sum) / float64(fi.totalDocs)
	}
	vocab := make([]string, 0, len(fi.postings))
	for term := range fi.postings {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)
	fi.vocab = vocab
}

// vocabSize returns the number of distinct terms in the field's vocabulary.
func (fi *fieldIndex) vocabSize() int {
	return len(fi.vocab)
}

// postingsFor returns the postings for term, or nil if the term is unknown.
func (fi *fieldIndex) postingsFor(term string) PostingList {
	return fi.postings[term]
}

// prefixTerms returns up to limit distinct vocabulary terms that start with
// prefix, in ascending order. Returns an empty slice if the vocabulary or
// prefix is empty, or limit <= 0.
func (fi *fieldIndex) prefixTerms(prefix string, limit int) []string {
	if len(fi.vocab) == 0 || prefix == "" || limit <= 0 {
		return []string{}
	}
	start := sort.Search(len(fi.vocab), func(i int) bool {
		return fi.vocab[i] >= prefix
	})
	result := make([]string, 0, limit)
	for i := start; i < len(fi.vocab) && len(result) < limit; i++ {
		if !hasPrefix(fi.vocab[i], prefix) {
			break
		}
		result = append(result, fi.vocab[i])
	}
	return result
}

func hasPrefix(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return s[:len(prefix)] == prefix
}

package index

// Posting pairs a document id with the term frequency of a single term
// within one field of that document. Frequency is always positive — a term
// with zero occurrences in a field simply has no Posting for that
// (term, field, document) triple.
type Posting struct {
	DocID int
	Freq  int
}

// PostingList is an ordered (insertion order, no further sort required) list
// of postings for one term in one field.
type PostingList []Posting

// Package record defines the raw and processed media-item record shapes
// shared by the preprocessing and indexing stages (see spec.md §3).
package record

// Raw is a media-item record as received from the corpus source: an id, a
// free-text description that may contain embedded restriction markers, a
// credit/source string, a date string in one of three recognized formats,
// and the item's pixel dimensions.
type Raw struct {
	ID          string
	Desc        string
	Credit      string
	Date        string
	WidthPixel  int
	HeightPixel int
}

// Processed extends Raw with the outputs of the Document Preprocessor: a
// canonicalized ISO date (or the raw string as a fallback when unparseable),
// the restriction markers extracted from Desc, and the description with
// those markers removed. CleanDesc is deliberately NOT normalized — it is
// fed to the tokenizer as-is so normalization happens exactly once, inside
// tokenize (see spec.md §3, §4.5). SearchableDesc and NormalizedCredit are
// precomputed, already-normalized forms kept on the record for any external
// consumer that wants normalized text without re-deriving it; the index
// itself never reads them.
type Processed struct {
	Raw

	IsoDate          string
	Markers          []string
	CleanDesc        string
	SearchableDesc   string
	NormalizedCredit string
}

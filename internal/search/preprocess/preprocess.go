// Package preprocess orchestrates the Text Normalizer, Restriction
// Extractor, and Date Parser to turn a raw media-item record into an
// indexable Processed record (spec.md §4.4).
package preprocess

import (
	"github.com/annekeller/mediasearch/internal/search/dateparse"
	"github.com/annekeller/mediasearch/internal/search/normalize"
	"github.com/annekeller/mediasearch/internal/search/record"
	"github.com/annekeller/mediasearch/internal/search/restriction"
)

// Document runs a raw record through restriction extraction, normalization,
// and date parsing, producing a Processed record ready for Index.AddDocument.
// Document is total: every field of raw, however malformed, produces a
// defined Processed record.
func Document(raw record.Raw) record.Processed {
	extracted := restriction.Extract(raw.Desc)

	isoDate, ok := dateparse.Parse(raw.Date)
	if !ok {
		isoDate = raw.Date
	}

	return record.Processed{
		Raw:              raw,
		IsoDate:          isoDate,
		Markers:          extracted.Markers,
		CleanDesc:        extracted.CleanText,
		SearchableDesc:   normalize.Text(extracted.CleanText),
		NormalizedCredit: normalize.Text(raw.Credit),
	}
}

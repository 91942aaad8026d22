// Package corpus loads raw media-item records from local files and/or
// Postgres, and caches their preprocessed form so repeated `build` runs
// against an unchanged source skip re-running the Document Preprocessor.
package corpus

import "github.com/annekeller/mediasearch/internal/search/record"

// RawRecord is the on-disk/on-wire shape of one corpus entry, decoded from
// either a JSON file or a Postgres row into record.Raw.
type RawRecord struct {
	ID          string `json:"id"`
	Desc        string `json:"desc"`
	Credit      string `json:"credit"`
	Date        string `json:"date"`
	WidthPixel  int    `json:"widthPixel"`
	HeightPixel int    `json:"heightPixel"`
}

// ToRaw converts a RawRecord into the record.Raw shape the Document
// Preprocessor consumes.
func (r RawRecord) ToRaw() record.Raw {
	return record.Raw{
		ID:          r.ID,
		Desc:        r.Desc,
		Credit:      r.Credit,
		Date:        r.Date,
		WidthPixel:  r.WidthPixel,
		HeightPixel: r.HeightPixel,
	}
}

// Package normalize folds German orthography to an ASCII-compatible,
// lowercase form. It is deterministic and idempotent, and is the single
// place the search engine performs case/diacritic folding — see
// tokenizer.Tokenize, which calls Text exactly once per piece of text.
package normalize

import "strings"

var umlautReplacer = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// Text lowercases s and folds German umlauts/eszett to their ASCII digraphs.
// Text is total: it accepts any string, including the empty string, and
// never panics. Text(Text(s)) == Text(s) for all s.
func Text(s string) string {
	return umlautReplacer.Replace(strings.ToLower(s))
}

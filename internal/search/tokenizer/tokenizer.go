// Package tokenizer produces the token stream used for both indexing and
// query processing. It normalizes German orthography, splits on punctuation
// and whitespace, handles hyphenated compounds with dual emission, and drops
// a German stopword list. See normalize.Text for the single normalization
// pass that both index-time and query-time tokenization share.
package tokenizer

import (
	"strings"
	"unicode"

	"github.com/annekeller/mediasearch/internal/search/normalize"
)

// stopWords is the German function-word list to drop after tokenizing.
var stopWords = map[string]struct{}{
	"der": {}, "die": {}, "das": {}, "den": {}, "dem": {}, "des": {},
	"ein": {}, "eine": {}, "einer": {}, "einem": {}, "einen": {}, "eines": {},
	"in": {}, "im": {}, "an": {}, "am": {}, "auf": {}, "aus": {}, "bei": {},
	"mit": {}, "nach": {}, "von": {}, "vor": {}, "zu": {}, "zum": {}, "zur": {},
	"durch": {}, "fuer": {}, "gegen": {}, "ohne": {}, "um": {}, "unter": {}, "ueber": {},
	"und": {}, "oder": {}, "aber": {}, "denn": {}, "weil": {}, "wenn": {}, "als": {},
	"ob": {}, "dass": {},
	"ist": {}, "sind": {}, "war": {}, "waren": {}, "wird": {}, "werden": {},
	"hat": {}, "haben": {}, "hatte": {}, "hatten": {},
	"kann": {}, "koennen": {}, "muss": {}, "muessen": {}, "soll": {}, "sollen": {},
	"will": {}, "wollen": {},
	"ich": {}, "du": {}, "er": {}, "sie": {}, "es": {}, "wir": {}, "ihr": {},
	"nicht": {}, "auch": {}, "nur": {}, "noch": {}, "schon": {}, "sehr": {}, "so": {},
	"wie": {}, "was": {}, "wer": {}, "hier": {}, "dort": {}, "dann": {},
}

// creditStopWords are dropped only when tokenizing the credit field, to keep
// a single dominant agency name from saturating every document's credit
// posting list.
var creditStopWords = map[string]struct{}{
	"imago": {},
}

// Field identifies which of the three indexed fields a token stream belongs
// to, since the credit field drops one additional domain-specific stopword
// that the desc and id fields do not.
type Field int

const (
	FieldDesc Field = iota
	FieldCredit
	FieldID
)

const minTokenLength = 2

// isSplitter reports whether r is one of the punctuation/whitespace
// characters that separate words. Hyphens are deliberately excluded here;
// they are handled as a second pass within each word.
func isSplitter(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case ',', '.', ';', ':', '!', '?', '"', '\'', '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

// Tokenize splits text into lowercased, umlaut-folded, stopword-filtered
// tokens. Tokenize performs normalization itself (see normalize.Text), so
// callers pass raw, un-normalized text and normalization runs exactly once.
// Because normalize.Text is idempotent, pre-normalized input yields the same
// tokens; it only repeats work.
func Tokenize(text string) []string {
	return tokenize(text, FieldDesc)
}

// TokenizeField is Tokenize, but additionally drops field-specific stopwords
// (currently only "imago" on the credit field).
func TokenizeField(text string, field Field) []string {
	return tokenize(text, field)
}

// NormalizeTerm applies the same normalization used during tokenization to a
// single already-split term, so that postings and vocabulary lookups (by
// exact term or prefix) use the same orthographic form as indexing did.
func NormalizeTerm(term string) string {
	return normalize.Text(term)
}

func tokenize(text string, field Field) []string {
	if text == "" {
		return []string{}
	}
	normalized := normalize.Text(text)
	words := strings.FieldsFunc(normalized, isSplitter)

	tokens := make([]string, 0, len(words))
	for _, word := range words {
		tokens = append(tokens, expandWord(word)...)
	}

	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, stop := stopWords[t]; stop {
			continue
		}
		if field == FieldCredit {
			if _, stop := creditStopWords[t]; stop {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// expandWord applies the hyphenation policy: a hyphenated word emits both
// the whole word and each sufficiently long part when at least two parts
// qualify; otherwise it falls back to the hyphen-stripped word.
func expandWord(word string) []string {
	if !strings.Contains(word, "-") {
		if len(word) >= minTokenLength {
			return []string{word}
		}
		return nil
	}

	parts := strings.Split(word, "-")
	qualifying := make([]string, 0, len(parts))
	for _, p := range parts {
		if len(p) >= minTokenLength {
			qualifying = append(qualifying, p)
		}
	}

	if len(qualifying) >= 2 {
		result := make([]string, 0, len(qualifying)+1)
		if len(word) >= minTokenLength {
			result = append(result, word)
		}
		result = append(result, qualifying...)
		return result
	}

	stripped := strings.ReplaceAll(word, "-", "")
	if len(stripped) >= minTokenLength {
		return []string{stripped}
	}
	return nil
}

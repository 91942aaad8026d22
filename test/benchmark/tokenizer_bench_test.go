package benchmark

import (
	"fmt"
	"strings"
	"testing"

	"github.com/annekeller/mediasearch/internal/search/tokenizer"
)

var sampleTexts = map[string]string{
	"short": "Das Schloss Neuschwanstein bei Sonnenuntergang",
	"medium": `Das Bundesarchiv verwahrt Bildmaterial aus der Weimarer Republik und der
        Nachkriegszeit. Jede Aufnahme traegt eine Bildbeschreibung, einen Datumsstempel
        und einen Bildnachweis, der ueber den abgebildeten Fotografen oder die
        Bildagentur Auskunft gibt. Manche Beschreibungen enthalten Sperrvermerke, die
        vor der Indexierung aus dem Text entfernt werden, damit sie nicht als
        Suchbegriff erscheinen.`,
	"long": strings.Repeat(`Die Rechercheplattform fuer historische Pressefotografie kombiniert
        Tokenisierung, Stoppwortentfernung und Umlautnormalisierung, um Suchbegriffe aus
        Bildbeschreibungen und Bildnachweisen zu extrahieren. Der invertierte Index bildet
        jeden Begriff auf die Dokumente ab, die ihn enthalten, getrennt nach Feld. Eine
        BM25-Bewertung beruecksichtigt Termhaeufigkeit, Dokumentlaengennormalisierung und
        inverse Dokumenthaeufigkeit, um Relevanzwerte zu erzeugen. `, 20),
}

func BenchmarkTokenizeDesc(b *testing.B) {
	for name, text := range sampleTexts {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				tokens := tokenizer.TokenizeField(text, tokenizer.FieldDesc)
				_ = tokens
			}
		})
	}
}

func BenchmarkTokenizeDescParallel(b *testing.B) {
	text := sampleTexts["medium"]
	b.ReportAllocs()
	b.SetBytes(int64(len(text)))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			tokens := tokenizer.TokenizeField(text, tokenizer.FieldDesc)
			_ = tokens
		}
	})
}

func BenchmarkTokenizeCredit(b *testing.B) {
	words := []string{
		"Bildagentur", "imago", "Bundesarchiv", "Nachlass",
		"Pressefoto", "Sammlung", "Fotothek", "Archiv",
		"Verlag", "Bildredaktion",
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, w := range words {
			tokens := tokenizer.TokenizeField(w, tokenizer.FieldCredit)
			_ = tokens
		}
	}
}

func BenchmarkTokenizeVaryingSize(b *testing.B) {
	sizes := []int{10, 100, 500, 1000, 5000}
	baseWord := "bildbeschreibung sperrvermerk bildnachweis archiv index "
	for _, size := range sizes {
		text := strings.Repeat(baseWord, size/len(baseWord)+1)[:size]
		b.Run(fmt.Sprintf("bytes_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				tokens := tokenizer.TokenizeField(text, tokenizer.FieldDesc)
				_ = tokens
			}
		})
	}
}

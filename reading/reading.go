// Package reading canonicalizes phonetic strings so that readings compare
// script-, case- and width-insensitively, and decides which read forms a
// dictionary entry may be matched by.
package reading

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"yomisearch/model"
)

// hiraToKata shifts hiragana (and the iteration marks) into the katakana
// block. Everything else passes through unchanged.
func hiraToKata(r rune) rune {
	if (r >= 0x3041 && r <= 0x3096) || (r >= 0x309d && r <= 0x309f) {
		return r + 0x60
	}
	return r
}

// Normalize folds s into the canonical matching form: NFKC (folds
// half-width katakana and full-width latin/digits), then lower case, then
// hiragana to katakana. Applied identically to target readings and to
// candidate fragments before any comparison.
func Normalize(s string) string {
	folded := norm.NFKC.String(s)
	lower := strings.ToLower(folded)
	return strings.Map(hiraToKata, lower)
}

// readForms lists the raw fragments an entry may be transcribed by,
// keyed by part-of-speech class. Symbols and numerals may be kept
// literally (surface) or spoken (reading form); everything else matches
// by reading form, surface only when no reading is recorded.
var readForms = map[model.POSClass]func(e model.Entry) []string{
	model.Symbol:  surfaceAndReading,
	model.Numeral: surfaceAndReading,
	model.General: func(e model.Entry) []string {
		if e.Reading == "" {
			return []string{e.Surface}
		}
		return []string{e.Reading}
	},
}

func surfaceAndReading(e model.Entry) []string {
	if e.Reading == "" {
		return []string{e.Surface}
	}
	return []string{e.Surface, e.Reading}
}

// MatchVariants returns the normalized, deduplicated fragments the entry
// may contribute to a reconstructed reading. Empty fragments are dropped.
func MatchVariants(e model.Entry) []string {
	forms := readForms[model.General]
	if f, ok := readForms[e.Class]; ok {
		forms = f
	}

	var variants []string
	seen := make(map[string]struct{}, 2)
	for _, raw := range forms(e) {
		v := Normalize(raw)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		variants = append(variants, v)
	}
	return variants
}

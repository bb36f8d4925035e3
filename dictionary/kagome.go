package dictionary

import (
	"unicode/utf8"

	kdict "github.com/ikawaha/kagome-dict/dict"

	"yomisearch/model"
)

// KagomeDict adapts a compiled kagome dictionary (IPA, UniDic) to the
// Dict interface: the double-array index provides the common-prefix
// matches, the morph table the emission costs and connection classes,
// and the contents table the reading forms.
type KagomeDict struct {
	d          *kdict.Dict
	readingIdx int // index into the full feature list, -1 if unknown
}

// NewKagomeDict wraps d. The reading feature index is taken from the
// dictionary's contents metadata.
func NewKagomeDict(d *kdict.Dict) *KagomeDict {
	k := &KagomeDict{d: d, readingIdx: -1}
	if idx, ok := d.ContentsMeta[kdict.ReadingIndex]; ok {
		k.readingIdx = int(idx)
	}
	return k
}

// features rebuilds the full feature list for a morph: POS names
// followed by the contents row, as the kagome tokenizer exposes them.
func (k *KagomeDict) features(id int) []string {
	var contents []string
	if id < len(k.d.Contents) {
		contents = k.d.Contents[id]
	}
	pos := k.d.POSTable.POSs[id]
	fs := make([]string, 0, len(pos)+len(contents))
	for _, p := range pos {
		fs = append(fs, k.d.POSTable.NameList[p])
	}
	return append(fs, contents...)
}

// classOf buckets the IPA/UniDic POS hierarchy into the coarse classes
// the reading matcher cares about.
func classOf(fs []string) model.POSClass {
	if len(fs) == 0 {
		return model.General
	}
	switch fs[0] {
	case "記号", "補助記号":
		return model.Symbol
	case "名詞":
		if len(fs) > 1 && (fs[1] == "数" || fs[1] == "数詞") {
			return model.Numeral
		}
	}
	return model.General
}

func (k *KagomeDict) readingOf(fs []string) string {
	if k.readingIdx < 0 || k.readingIdx >= len(fs) {
		return ""
	}
	if r := fs[k.readingIdx]; r != "*" {
		return r
	}
	return ""
}

// EntriesAt implements Dict via common-prefix search on the trie index.
func (k *KagomeDict) EntriesAt(text []rune, begin int) []model.Entry {
	if begin < 0 || begin >= len(text) {
		return nil
	}
	input := string(text[begin:])
	var out []model.Entry
	k.d.Index.CommonPrefixSearchCallback(input, func(id, l int) {
		if id < 0 || id >= len(k.d.Morphs) {
			return
		}
		m := k.d.Morphs[id]
		surface := input[:l]
		fs := k.features(id)
		out = append(out, model.Entry{
			Surface: surface,
			Reading: k.readingOf(fs),
			Begin:   begin,
			End:     begin + utf8.RuneCountInString(surface),
			Class:   classOf(fs),
			Cost:    int(m.Weight),
			Left:    model.NewClassID(uint16(m.LeftID)),
			Right:   model.NewClassID(uint16(m.RightID)),
			WordID:  id,
		})
	})
	return out
}

// ConnectionCost implements Dict via the dictionary's connection matrix.
func (k *KagomeDict) ConnectionCost(left, right model.ClassID) int {
	if !left.Present() || !right.Present() {
		return 0
	}
	return int(k.d.Connection.At(int(left.Value()), int(right.Value())))
}

// Package dictionary defines the lexicon collaborator consumed by the
// lattice: all matches per start offset plus the bigram connection-cost
// table. MemDict is a small in-memory implementation; KagomeDict adapts
// a compiled kagome dictionary.
package dictionary

import (
	"yomisearch/model"
)

// Dict is the lexicon surface the analyzer consumes.
type Dict interface {
	// EntriesAt returns every dictionary match starting at rune offset
	// begin of text, with spans set relative to text.
	EntriesAt(text []rune, begin int) []model.Entry
	// ConnectionCost is the bigram weight between the preceding entry's
	// right-hand class and the following entry's left-hand class. The
	// result is defined (zero) when either id is absent.
	ConnectionCost(left, right model.ClassID) int
}

type lexeme struct {
	reading string
	class   model.POSClass
	left    uint16
	right   uint16
	cost    int
	id      int
}

// MemDict is an in-memory dictionary with an explicit connection
// matrix, used by tests and demos.
type MemDict struct {
	entries map[string][]lexeme
	matrix  [][]int
	maxLen  int // longest surface, in runes
	nextID  int
}

// NewMemDict creates an empty dictionary with a classes x classes
// connection matrix initialized to zero.
func NewMemDict(classes int) *MemDict {
	m := make([][]int, classes)
	for i := range m {
		m[i] = make([]int, classes)
	}
	return &MemDict{
		entries: make(map[string][]lexeme),
		matrix:  m,
	}
}

// Add registers a lexeme and returns its word id. Ids are assigned in
// registration order.
func (d *MemDict) Add(surface, reading string, class model.POSClass, left, right uint16, cost int) int {
	id := d.nextID
	d.nextID++
	d.entries[surface] = append(d.entries[surface], lexeme{
		reading: reading,
		class:   class,
		left:    left,
		right:   right,
		cost:    cost,
		id:      id,
	})
	if n := len([]rune(surface)); n > d.maxLen {
		d.maxLen = n
	}
	return id
}

// SetConnection sets the cost of the transition from an entry with
// right-hand class right to an entry with left-hand class left.
func (d *MemDict) SetConnection(right, left uint16, cost int) {
	d.matrix[right][left] = cost
}

// EntriesAt implements Dict.
func (d *MemDict) EntriesAt(text []rune, begin int) []model.Entry {
	if begin < 0 || begin >= len(text) {
		return nil
	}
	var out []model.Entry
	limit := len(text) - begin
	if d.maxLen < limit {
		limit = d.maxLen
	}
	for l := 1; l <= limit; l++ {
		surface := string(text[begin : begin+l])
		for _, lx := range d.entries[surface] {
			out = append(out, model.Entry{
				Surface: surface,
				Reading: lx.reading,
				Begin:   begin,
				End:     begin + l,
				Class:   lx.class,
				Cost:    lx.cost,
				Left:    model.NewClassID(lx.left),
				Right:   model.NewClassID(lx.right),
				WordID:  lx.id,
			})
		}
	}
	return out
}

// ConnectionCost implements Dict.
func (d *MemDict) ConnectionCost(left, right model.ClassID) int {
	if !left.Present() || !right.Present() {
		return 0
	}
	l, r := int(left.Value()), int(right.Value())
	if l >= len(d.matrix) || r >= len(d.matrix[l]) {
		return 0
	}
	return d.matrix[l][r]
}

package model

import (
	"fmt"
	"strings"
)

// POSClass is the coarse part-of-speech bucket that decides which read
// forms a dictionary entry may legitimately be matched by.
type POSClass int

const (
	// General entries match by their reading form (surface if no reading).
	General POSClass = iota
	// Symbol entries match by surface or reading form.
	Symbol
	// Numeral entries match by literal digits or spoken-digit reading.
	Numeral
)

func (c POSClass) String() string {
	switch c {
	case Symbol:
		return "symbol"
	case Numeral:
		return "numeral"
	default:
		return "general"
	}
}

// ClassID is a connection-class index into the bigram cost matrix.
// Entries produced by a rewrite/join step lose their original class ids;
// those carry an absent ClassID instead of a magic numeric sentinel.
type ClassID struct {
	id      uint16
	present bool
}

// NewClassID returns a present connection-class id.
func NewClassID(id uint16) ClassID {
	return ClassID{id: id, present: true}
}

// AbsentClassID returns the absent marker used by rewritten entries.
func AbsentClassID() ClassID {
	return ClassID{}
}

// Present reports whether the id survived into this entry.
func (c ClassID) Present() bool { return c.present }

// Value returns the matrix index. Only meaningful when Present.
func (c ClassID) Value() uint16 { return c.id }

func (c ClassID) String() string {
	if !c.present {
		return "absent"
	}
	return fmt.Sprintf("%d", c.id)
}

// Entry is a single dictionary match at a character span of the input.
// Begin and End are rune offsets; Surface is the exact text slice.
type Entry struct {
	Surface string   `json:"surface"`
	Reading string   `json:"reading,omitempty"` // katakana transcription, may be empty
	Begin   int      `json:"begin"`
	End     int      `json:"end"`
	Class   POSClass `json:"-"`
	Cost    int      `json:"cost"` // emission cost, non-negative
	Left    ClassID  `json:"-"`
	Right   ClassID  `json:"-"`
	WordID  int      `json:"word_id"` // dictionary identity, UnknownWordID for synthesized entries
	Unknown bool     `json:"unknown,omitempty"`
}

// UnknownWordID marks entries synthesized for text the dictionary does not cover.
const UnknownWordID = -1

// Path is an ordered sequence of entries tiling the input end to end.
type Path []Entry

// Validate checks that the path exactly tiles [0, textLen) with no gaps
// or overlaps. An empty path is valid only for empty text.
func (p Path) Validate(textLen int) error {
	pos := 0
	for i, e := range p {
		if e.Begin != pos {
			return fmt.Errorf("path entry %d begins at %d, want %d", i, e.Begin, pos)
		}
		if e.End <= e.Begin {
			return fmt.Errorf("path entry %d has empty span [%d,%d)", i, e.Begin, e.End)
		}
		pos = e.End
	}
	if pos != textLen {
		return fmt.Errorf("path covers [0,%d), want [0,%d)", pos, textLen)
	}
	return nil
}

// Surface reconstructs the covered text.
func (p Path) Surface() string {
	var b strings.Builder
	for _, e := range p {
		b.WriteString(e.Surface)
	}
	return b.String()
}

// Candidate is a completed path whose reconstructed reading matched a
// target string, plus the cost used for ranking.
type Candidate struct {
	Tokens    Path `json:"tokens"`
	TotalCost int  `json:"total_cost"`
}

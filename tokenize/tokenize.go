// Package tokenize is the user-facing entry point: it wires a
// dictionary into the lattice search and exposes tokenization, reading
// candidate enumeration, and path cost accounting.
package tokenize

import (
	"yomisearch/bridge"
	"yomisearch/candidates"
	"yomisearch/dictionary"
	"yomisearch/lattice"
	"yomisearch/model"
)

// Tokenizer analyzes text against one dictionary. The zero value is not
// usable; construct with New.
//
// Methods are safe for concurrent use except
// SetGlobalWhitespaceBridge, which must not race with analysis calls.
type Tokenizer struct {
	dict         dictionary.Dict
	unknown      lattice.UnknownConfig
	globalBridge bool
}

// Option configures a Tokenizer at construction time.
type Option func(*Tokenizer)

// WithUnknownConfig overrides the synthesis of entries for text the
// dictionary does not cover.
func WithUnknownConfig(u lattice.UnknownConfig) Option {
	return func(t *Tokenizer) { t.unknown = u }
}

// WithGlobalWhitespaceBridge sets the initial bridge mode, equivalent
// to calling SetGlobalWhitespaceBridge after New.
func WithGlobalWhitespaceBridge(enabled bool) Option {
	return func(t *Tokenizer) { t.globalBridge = enabled }
}

// New returns a Tokenizer over d. The whitespace bridge starts
// disabled.
func New(d dictionary.Dict, opts ...Option) *Tokenizer {
	t := &Tokenizer{dict: d, unknown: lattice.DefaultUnknown}
	for _, o := range opts {
		o(t)
	}
	return t
}

// SetGlobalWhitespaceBridge switches bridged transition pricing on or
// off for subsequent Tokenize calls and reports the previous setting.
// Enabling the bridge can only lower path costs; the separator tokens
// themselves still appear in the output.
func (t *Tokenizer) SetGlobalWhitespaceBridge(enabled bool) bool {
	prev := t.globalBridge
	t.globalBridge = enabled
	return prev
}

// Tokenize segments text into the minimal-cost entry sequence. Empty
// input yields an empty path and no error.
func (t *Tokenizer) Tokenize(text string) (model.Path, error) {
	la, err := lattice.Build([]rune(text), t.dict, t.unknown)
	if err != nil {
		return nil, err
	}
	p, _, err := la.BestPath(t.globalBridge)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ReadingCandidates enumerates up to maxResults segmentations of text
// whose concatenated read forms equal target after normalization,
// cheapest first. maxResults <= 0 falls back to a default limit and
// minTokens < 1 to 1. No match is an empty result, not an error.
func (t *Tokenizer) ReadingCandidates(text, target string, maxResults, minTokens int) ([]model.Candidate, error) {
	la, err := lattice.Build([]rune(text), t.dict, t.unknown)
	if err != nil {
		return nil, err
	}
	return candidates.Search(la.EntriesByBegin(), la.Len(), t.dict.ConnectionCost, target, maxResults, minTokens), nil
}

// InternalCost prices p as emitted: every entry cost plus every
// adjacent connection cost. The path must tile its text contiguously.
func (t *Tokenizer) InternalCost(p model.Path) (int, error) {
	if err := validateContiguous(p); err != nil {
		return 0, err
	}
	return bridge.InternalCost(p, t.dict.ConnectionCost), nil
}

// BridgedInternalCost prices p with separator runs elided from the cost
// accounting, so surrounding text variants that differ only in
// separators compare equal. Falls back to InternalCost when a run's
// neighbors lack connection classes.
func (t *Tokenizer) BridgedInternalCost(p model.Path) (int, error) {
	if err := validateContiguous(p); err != nil {
		return 0, err
	}
	return bridge.BridgedCost(p, t.dict.ConnectionCost), nil
}

func validateContiguous(p model.Path) error {
	if len(p) == 0 {
		return nil
	}
	return p.Validate(p[len(p)-1].End)
}

package candidates

import (
	"testing"

	"yomisearch/dictionary"
	"yomisearch/lattice"
	"yomisearch/model"
)

// tokyoDict carries both the merged and the split segmentation of
// 東京都 so the reading search has two accepting paths.
func tokyoDict() *dictionary.MemDict {
	d := dictionary.NewMemDict(8)
	d.Add("東京", "トウキョウ", model.General, 1, 1, 2000)
	d.Add("都", "ト", model.General, 2, 2, 1500)
	d.Add("東京都", "トウキョウト", model.General, 1, 1, 3000)
	d.SetConnection(1, 2, 300)
	return d
}

func search(t *testing.T, d *dictionary.MemDict, text, target string, maxResults, minTokens int) []model.Candidate {
	t.Helper()
	la, err := lattice.Build([]rune(text), d, lattice.DefaultUnknown)
	if err != nil {
		t.Fatalf("Build(%q): %v", text, err)
	}
	return Search(la.EntriesByBegin(), la.Len(), d.ConnectionCost, target, maxResults, minTokens)
}

func surfaces(c model.Candidate) []string {
	out := make([]string, len(c.Tokens))
	for i, e := range c.Tokens {
		out[i] = e.Surface
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func assertCovers(t *testing.T, text string, cands []model.Candidate) {
	t.Helper()
	for i, c := range cands {
		if len(c.Tokens) == 0 {
			t.Fatalf("candidate %d has no tokens", i)
		}
		if err := c.Tokens.Validate(len([]rune(text))); err != nil {
			t.Errorf("candidate %d spans: %v", i, err)
		}
		if got := c.Tokens.Surface(); got != text {
			t.Errorf("candidate %d reconstructs %q, want %q", i, got, text)
		}
	}
}

func TestSearchFindsSortedAlternativeSegmentations(t *testing.T) {
	cands := search(t, tokyoDict(), "東京都", "トウキョウト", 16, 1)
	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2", len(cands))
	}
	assertCovers(t, "東京都", cands)

	if !equal(surfaces(cands[0]), []string{"東京都"}) {
		t.Errorf("first candidate = %v, want [東京都]", surfaces(cands[0]))
	}
	if cands[0].TotalCost != 3000 {
		t.Errorf("first cost = %d, want 3000", cands[0].TotalCost)
	}
	if !equal(surfaces(cands[1]), []string{"東京", "都"}) {
		t.Errorf("second candidate = %v, want [東京 都]", surfaces(cands[1]))
	}
	if cands[1].TotalCost != 3800 {
		t.Errorf("second cost = %d, want 3800", cands[1].TotalCost)
	}
}

func TestSearchHiraganaTargetMatches(t *testing.T) {
	cands := search(t, tokyoDict(), "東京都", "とうきょうと", 16, 1)
	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2", len(cands))
	}
}

func TestSearchMismatchedReadingIsEmpty(t *testing.T) {
	if cands := search(t, tokyoDict(), "東京都", "トウキョウフ", 16, 1); len(cands) != 0 {
		t.Errorf("got %d candidates, want 0", len(cands))
	}
}

func TestSearchMaxResultsTruncatesAndClampsToDefault(t *testing.T) {
	limited := search(t, tokyoDict(), "東京都", "トウキョウト", 1, 1)
	if len(limited) != 1 {
		t.Fatalf("maxResults=1: got %d candidates", len(limited))
	}
	if !equal(surfaces(limited[0]), []string{"東京都"}) {
		t.Errorf("maxResults=1 kept %v, want the cheapest path", surfaces(limited[0]))
	}

	clamped := search(t, tokyoDict(), "東京都", "トウキョウト", 0, 1)
	if len(clamped) != 2 {
		t.Errorf("maxResults=0: got %d candidates, want clamped default behavior", len(clamped))
	}
}

func TestSearchMinTokensFilter(t *testing.T) {
	noSingle := search(t, tokyoDict(), "東京都", "トウキョウト", 16, 2)
	if len(noSingle) != 1 {
		t.Fatalf("minTokens=2: got %d candidates, want 1", len(noSingle))
	}
	if !equal(surfaces(noSingle[0]), []string{"東京", "都"}) {
		t.Errorf("minTokens=2 kept %v", surfaces(noSingle[0]))
	}

	asOne := search(t, tokyoDict(), "東京都", "トウキョウト", 16, 1)
	asZero := search(t, tokyoDict(), "東京都", "トウキョウト", 16, 0)
	if len(asOne) != len(asZero) {
		t.Fatalf("minTokens 0 and 1 disagree: %d vs %d", len(asZero), len(asOne))
	}
	for i := range asOne {
		if !equal(surfaces(asOne[i]), surfaces(asZero[i])) || asOne[i].TotalCost != asZero[i].TotalCost {
			t.Errorf("minTokens 0/1 candidate %d differs", i)
		}
	}

	if tooMany := search(t, tokyoDict(), "東京都", "トウキョウト", 16, 10); len(tooMany) != 0 {
		t.Errorf("minTokens=10: got %d candidates, want 0", len(tooMany))
	}
}

func TestSearchSymbolSurfaceStyles(t *testing.T) {
	d := dictionary.NewMemDict(4)
	d.Add("A", "", model.Symbol, 0, 0, 100)
	d.Add("/", "", model.Symbol, 0, 0, 100)
	d.Add("B", "", model.Symbol, 0, 0, 100)

	for _, target := range []string{"A/B", "a/b", "ａ／ｂ"} {
		cands := search(t, d, "A/B", target, 16, 1)
		if len(cands) != 1 {
			t.Errorf("target %q: got %d candidates, want 1", target, len(cands))
			continue
		}
		assertCovers(t, "A/B", cands)
	}
}

func TestSearchNumeralDigitAndSpokenStyles(t *testing.T) {
	d := dictionary.NewMemDict(4)
	d.Add("第", "ダイ", model.General, 1, 1, 500)
	d.Add("3", "サン", model.Numeral, 1, 1, 400)
	d.Add("話", "ワ", model.General, 1, 1, 600)

	for _, target := range []string{"ダイ3ワ", "ダイサンワ", "ダイ３ワ"} {
		cands := search(t, d, "第3話", target, 16, 1)
		if len(cands) != 1 {
			t.Errorf("target %q: got %d candidates, want 1", target, len(cands))
		}
	}
}

func TestSearchEqualCostPrefersFewerTokens(t *testing.T) {
	d := dictionary.NewMemDict(4)
	d.Add("ア", "ア", model.General, 0, 0, 400)
	d.Add("ブ", "ブ", model.General, 0, 0, 600)
	d.Add("アブ", "アブ", model.General, 0, 0, 1000)

	cands := search(t, d, "アブ", "アブ", 16, 1)
	if len(cands) != 2 {
		t.Fatalf("got %d candidates, want 2", len(cands))
	}
	if cands[0].TotalCost != cands[1].TotalCost {
		t.Fatalf("costs differ: %d vs %d", cands[0].TotalCost, cands[1].TotalCost)
	}
	if len(cands[0].Tokens) != 1 {
		t.Errorf("tie-break: first candidate has %d tokens, want 1", len(cands[0].Tokens))
	}
}

func TestSearchEmptyInputs(t *testing.T) {
	if cands := search(t, tokyoDict(), "", "トウキョウト", 16, 1); len(cands) != 0 {
		t.Errorf("empty text: got %d candidates", len(cands))
	}
	if cands := search(t, tokyoDict(), "東京都", "", 16, 1); len(cands) != 0 {
		t.Errorf("empty reading: got %d candidates", len(cands))
	}
	if cands := search(t, tokyoDict(), "", "", 16, 1); len(cands) != 0 {
		t.Errorf("both empty: got %d candidates", len(cands))
	}
}

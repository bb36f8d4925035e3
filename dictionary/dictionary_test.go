package dictionary

import (
	"testing"

	"yomisearch/model"
)

func TestMemDictEntriesAtReturnsAllPrefixMatches(t *testing.T) {
	d := NewMemDict(4)
	idTokyo := d.Add("東京", "トウキョウ", model.General, 1, 1, 2000)
	idMetro := d.Add("東京都", "トウキョウト", model.General, 1, 1, 3000)
	d.Add("都", "ト", model.General, 2, 2, 1500)

	text := []rune("東京都")
	got := d.EntriesAt(text, 0)
	if len(got) != 2 {
		t.Fatalf("EntriesAt(0) returned %d entries, want 2", len(got))
	}
	// Shorter matches first.
	if got[0].WordID != idTokyo || got[0].End != 2 {
		t.Errorf("first match = %+v, want 東京", got[0])
	}
	if got[1].WordID != idMetro || got[1].End != 3 {
		t.Errorf("second match = %+v, want 東京都", got[1])
	}

	if got := d.EntriesAt(text, 2); len(got) != 1 || got[0].Surface != "都" {
		t.Errorf("EntriesAt(2) = %v, want 都", got)
	}
	if got := d.EntriesAt(text, 3); got != nil {
		t.Errorf("EntriesAt past end = %v, want nil", got)
	}
}

func TestMemDictMultipleLexemesPerSurface(t *testing.T) {
	d := NewMemDict(8)
	d.Add("a", "", model.General, 0, 1, 0)
	d.Add("a", "", model.General, 0, 2, 1)

	got := d.EntriesAt([]rune("a"), 0)
	if len(got) != 2 {
		t.Fatalf("EntriesAt = %d entries, want 2", len(got))
	}
	if got[0].Right.Value() != 1 || got[1].Right.Value() != 2 {
		t.Errorf("entries = %v, want right classes 1 and 2", got)
	}
}

func TestMemDictConnectionCost(t *testing.T) {
	d := NewMemDict(4)
	d.SetConnection(1, 2, 300)

	if got := d.ConnectionCost(model.NewClassID(1), model.NewClassID(2)); got != 300 {
		t.Errorf("ConnectionCost(1,2) = %d, want 300", got)
	}
	if got := d.ConnectionCost(model.NewClassID(2), model.NewClassID(1)); got != 0 {
		t.Errorf("ConnectionCost(2,1) = %d, want 0", got)
	}
	if got := d.ConnectionCost(model.AbsentClassID(), model.NewClassID(2)); got != 0 {
		t.Errorf("ConnectionCost(absent,2) = %d, want 0", got)
	}
}

package quiz

import (
	"errors"
	"strings"
	"testing"
)

func testItem(id, correct int) Item {
	return Item{
		ID:           id,
		Title:        "Test",
		Question:     "Q?",
		Choices:      []string{"A", "B", "C"},
		CorrectIndex: correct,
		Explanation:  "Because.",
		Tags:         []string{"basics"},
		Level:        LevelIntro,
	}
}

func TestNewBank_Valid(t *testing.T) {
	b, err := NewBank([]Item{testItem(1, 0), testItem(2, 2)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
}

func TestNewBank_Empty(t *testing.T) {
	b, err := NewBank(nil)
	if err != nil {
		t.Fatalf("empty bank should be valid, got: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
}

func TestNewBank_DuplicateID(t *testing.T) {
	_, err := NewBank([]Item{testItem(1, 0), testItem(1, 1)})
	if err == nil {
		t.Fatal("expected error for duplicate id")
	}
	if !strings.Contains(err.Error(), "duplicate id") {
		t.Errorf("error should mention duplicate id, got: %v", err)
	}
}

func TestNewBank_CorrectIndexOutOfRange(t *testing.T) {
	_, err := NewBank([]Item{testItem(1, 3)})
	if err == nil {
		t.Fatal("expected error for out-of-range correct index")
	}
	if !errors.Is(err, ErrInvalidBank) {
		t.Errorf("expected ErrInvalidBank, got: %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Problems) != 1 {
		t.Errorf("Problems = %d, want 1", len(verr.Problems))
	}
}

func TestNewBank_CollectsAllProblems(t *testing.T) {
	bad := Item{ID: 0, Choices: []string{"only"}, CorrectIndex: -1, Level: Level(9)}
	_, err := NewBank([]Item{bad})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	// id, title, question, choices, correct index, level
	if len(verr.Problems) != 6 {
		t.Errorf("Problems = %d, want 6: %v", len(verr.Problems), verr.Problems)
	}
}

func TestBank_ItemsIsCopy(t *testing.T) {
	src := []Item{testItem(1, 0)}
	b, _ := NewBank(src)

	src[0].Choices[0] = "changed"
	items := b.Items()
	items[0].Title = "changed"

	got, _ := b.Get(1)
	if got.Title != "Test" {
		t.Errorf("Title = %q, bank was mutated through Items()", got.Title)
	}
	if got.Choices[0] != "A" {
		t.Errorf("Choices[0] = %q, bank was mutated through the source slice", got.Choices[0])
	}
}

func TestBank_Get(t *testing.T) {
	b, _ := NewBank([]Item{testItem(7, 1)})

	it, err := b.Get(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID != 7 {
		t.Errorf("ID = %d, want 7", it.ID)
	}

	_, err = b.Get(8)
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("expected ErrItemNotFound, got: %v", err)
	}
}

func TestBank_ByLevelAndTag(t *testing.T) {
	a := testItem(1, 0)
	c := testItem(2, 0)
	c.Level = LevelIntermediate
	c.Tags = []string{"ownership", "move"}
	d := testItem(3, 0)
	d.Level = LevelIntermediate
	d.Tags = []string{"loop"}
	b, _ := NewBank([]Item{a, c, d})

	inter := b.ByLevel(LevelIntermediate)
	if len(inter) != 2 || inter[0].ID != 2 || inter[1].ID != 3 {
		t.Errorf("ByLevel(intermediate) = %v, want ids [2 3] in order", ids(inter))
	}

	own := b.ByTag("ownership")
	if len(own) != 1 || own[0].ID != 2 {
		t.Errorf("ByTag(ownership) = %v, want [2]", ids(own))
	}

	tags := b.Tags()
	want := []string{"basics", "loop", "move", "ownership"}
	if strings.Join(tags, ",") != strings.Join(want, ",") {
		t.Errorf("Tags = %v, want %v", tags, want)
	}
}

func TestItem_IsCorrect(t *testing.T) {
	it := testItem(1, 1)
	tests := []struct {
		choice int
		want   bool
	}{
		{0, false},
		{1, true},
		{2, false},
		{99, false},
		{-1, false},
	}
	for _, tt := range tests {
		if got := it.IsCorrect(tt.choice); got != tt.want {
			t.Errorf("IsCorrect(%d) = %v, want %v", tt.choice, got, tt.want)
		}
	}
	if it.CorrectChoice() != "B" {
		t.Errorf("CorrectChoice = %q, want %q", it.CorrectChoice(), "B")
	}
}

func TestParseLevel(t *testing.T) {
	for _, l := range AllLevels() {
		got, err := ParseLevel(l.String())
		if err != nil {
			t.Errorf("ParseLevel(%q) error: %v", l.String(), err)
		}
		if got != l {
			t.Errorf("ParseLevel(%q) = %v, want %v", l.String(), got, l)
		}
	}

	_, err := ParseLevel("expert")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got: %v", err)
	}
}

func ids(items []Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

package quiz

// Item is a single multiple-choice question. Items are built once when the
// bank is loaded and never mutated afterwards.
type Item struct {
	ID           int
	Title        string
	Question     string
	Code         string // optional snippet shown with the question
	Choices      []string
	CorrectIndex int
	Explanation  string
	Tags         []string
	Level        Level
}

// HasCode reports whether the item carries a code excerpt.
func (it Item) HasCode() bool {
	return it.Code != ""
}

// IsCorrect reports whether choice is the correct answer. Any index outside
// the choice range is simply not correct.
func (it Item) IsCorrect(choice int) bool {
	return choice == it.CorrectIndex
}

// CorrectChoice returns the text of the correct choice.
func (it Item) CorrectChoice() string {
	if it.CorrectIndex < 0 || it.CorrectIndex >= len(it.Choices) {
		return ""
	}
	return it.Choices[it.CorrectIndex]
}

// HasTag reports whether the item is labelled with tag.
func (it Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

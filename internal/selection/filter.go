package selection

import "github.com/rustquiz/rustquiz/internal/quiz"

// Filter narrows a bank before selection. An item passes when its level is
// in Levels and it carries at least one of Tags; an empty list places no
// constraint.
type Filter struct {
	Levels []quiz.Level
	Tags   []string
}

// IsZero reports whether the filter lets every item through.
func (f Filter) IsZero() bool {
	return len(f.Levels) == 0 && len(f.Tags) == 0
}

// Match reports whether it passes the filter.
func (f Filter) Match(it quiz.Item) bool {
	if len(f.Levels) > 0 {
		found := false
		for _, l := range f.Levels {
			if it.Level == l {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(f.Tags) > 0 {
		found := false
		for _, t := range f.Tags {
			if it.HasTag(t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Apply returns the matching items in their original order.
func (f Filter) Apply(items []quiz.Item) []quiz.Item {
	out := make([]quiz.Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}

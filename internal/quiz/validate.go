package quiz

import "fmt"

// validateItems performs the integrity checks on a set of items.
// Returns a *ValidationError describing all problems found, or nil if valid.
func validateItems(items []Item) error {
	var errs []string

	seen := make(map[int]bool, len(items))
	for i, it := range items {
		prefix := fmt.Sprintf("item #%d (id %d)", i, it.ID)

		if it.ID <= 0 {
			errs = append(errs, fmt.Sprintf("%s: id must be > 0", prefix))
		} else if seen[it.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate id", prefix))
		}
		seen[it.ID] = true

		if it.Title == "" {
			errs = append(errs, fmt.Sprintf("%s: empty title", prefix))
		}
		if it.Question == "" {
			errs = append(errs, fmt.Sprintf("%s: empty question", prefix))
		}
		if len(it.Choices) < 2 {
			errs = append(errs, fmt.Sprintf("%s: needs at least 2 choices, got %d", prefix, len(it.Choices)))
		}
		if it.CorrectIndex < 0 || it.CorrectIndex >= len(it.Choices) {
			errs = append(errs, fmt.Sprintf("%s: correct index %d outside [0, %d)", prefix, it.CorrectIndex, len(it.Choices)))
		}
		if !it.Level.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown level %d", prefix, int(it.Level)))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

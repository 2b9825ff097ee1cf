package quiz

import (
	"fmt"
	"slices"
	"sort"
)

// Bank is an ordered, immutable collection of quiz items. It is built once
// at startup and handed explicitly to whatever needs it.
type Bank struct {
	items []Item
	byID  map[int]int // id -> position in items
}

// NewBank validates items and returns a Bank holding its own copy of them.
func NewBank(items []Item) (*Bank, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	b := &Bank{
		items: make([]Item, len(items)),
		byID:  make(map[int]int, len(items)),
	}
	for i, it := range items {
		it.Choices = slices.Clone(it.Choices)
		it.Tags = slices.Clone(it.Tags)
		b.items[i] = it
		b.byID[it.ID] = i
	}
	return b, nil
}

// Items returns all items in bank order. The returned slice is a copy.
func (b *Bank) Items() []Item {
	return slices.Clone(b.items)
}

// Len returns the number of items in the bank.
func (b *Bank) Len() int {
	return len(b.items)
}

// Get looks an item up by ID.
func (b *Bank) Get(id int) (Item, error) {
	i, ok := b.byID[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
	}
	return b.items[i], nil
}

// ByLevel returns the items at the given level, in bank order.
func (b *Bank) ByLevel(level Level) []Item {
	var out []Item
	for _, it := range b.items {
		if it.Level == level {
			out = append(out, it)
		}
	}
	return out
}

// ByTag returns the items labelled with tag, in bank order.
func (b *Bank) ByTag(tag string) []Item {
	var out []Item
	for _, it := range b.items {
		if it.HasTag(tag) {
			out = append(out, it)
		}
	}
	return out
}

// Tags returns every distinct tag in the bank, sorted.
func (b *Bank) Tags() []string {
	set := make(map[string]bool)
	for _, it := range b.items {
		for _, t := range it.Tags {
			set[t] = true
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

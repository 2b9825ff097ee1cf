package selection

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rustquiz/rustquiz/internal/quiz"
)

// ErrUnknownMode is returned by ParseMode for unrecognised mode names.
var ErrUnknownMode = errors.New("unknown mode")

// Mode is the selection policy of a session.
type Mode string

const (
	ModeOrdered Mode = "ordered" // every matching item, bank order
	ModeRandom  Mode = "random"  // a random sample of Count items
)

// AllModes returns the modes in menu order.
func AllModes() []Mode {
	return []Mode{ModeOrdered, ModeRandom}
}

// DisplayName returns a human-readable name for a mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeOrdered:
		return "Full run"
	case ModeRandom:
		return "Random round"
	default:
		return string(m)
	}
}

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeOrdered:
		return ModeOrdered, nil
	case ModeRandom:
		return ModeRandom, nil
	}
	return "", fmt.Errorf("%w: %q (want ordered or random)", ErrUnknownMode, s)
}

// DefaultRandomCount is the size of a random round when none is given.
const DefaultRandomCount = 5

// Plan describes how to build the item list of a session.
type Plan struct {
	Mode   Mode
	Count  int // used by ModeRandom only
	Filter Filter
}

// Describe returns a short label for the plan, e.g. "Random round (5)".
func (p Plan) Describe() string {
	if p.Mode == ModeRandom {
		return fmt.Sprintf("%s (%d)", p.Mode.DisplayName(), p.Count)
	}
	return p.Mode.DisplayName()
}

// Planner turns a Plan into the ordered item list handed to a session.
// It is stateless apart from its random source and can be called again for
// every new attempt.
type Planner struct {
	rng *rand.Rand
}

// NewPlanner creates a Planner. A seed of 0 uses the global random source;
// any other seed gives a reproducible sequence of samples.
func NewPlanner(seed uint64) *Planner {
	if seed == 0 {
		return &Planner{}
	}
	return &Planner{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Build filters the bank and applies the plan's selection policy.
func (p *Planner) Build(bank *quiz.Bank, plan Plan) []quiz.Item {
	items := bank.Items()
	if !plan.Filter.IsZero() {
		items = plan.Filter.Apply(items)
	}

	switch plan.Mode {
	case ModeRandom:
		return RandomSubset(items, plan.Count, p.rng)
	default:
		return All(items)
	}
}

package quiz

import (
	"errors"
	"fmt"
)

// ErrUnknownLevel is returned when a level name does not match any Level.
var ErrUnknownLevel = errors.New("unknown level")

// Level is the difficulty tag of a quiz item.
type Level int

const (
	LevelIntro Level = iota
	LevelBeginner
	LevelBeginnerPlus
	LevelIntermediate
)

// AllLevels returns all levels from easiest to hardest.
func AllLevels() []Level {
	return []Level{
		LevelIntro,
		LevelBeginner,
		LevelBeginnerPlus,
		LevelIntermediate,
	}
}

// String returns the wire name used in bank files and CLI flags.
func (l Level) String() string {
	switch l {
	case LevelIntro:
		return "intro"
	case LevelBeginner:
		return "beginner"
	case LevelBeginnerPlus:
		return "beginner-plus"
	case LevelIntermediate:
		return "intermediate"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// DisplayName returns a human-readable name for a level.
func (l Level) DisplayName() string {
	switch l {
	case LevelIntro:
		return "Intro"
	case LevelBeginner:
		return "Beginner"
	case LevelBeginnerPlus:
		return "Beginner+"
	case LevelIntermediate:
		return "Intermediate"
	default:
		return l.String()
	}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	return l >= LevelIntro && l <= LevelIntermediate
}

// ParseLevel parses a wire name back to a Level.
func ParseLevel(s string) (Level, error) {
	for _, l := range AllLevels() {
		if l.String() == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

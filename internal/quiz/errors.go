package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrItemNotFound is returned by Bank.Get when no item has the requested ID.
var ErrItemNotFound = errors.New("quiz item not found")

// ErrInvalidBank is wrapped by every error that rejects a question bank.
var ErrInvalidBank = errors.New("invalid question bank")

// ValidationError collects every integrity problem found in a bank.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v:\n  %s", ErrInvalidBank, strings.Join(e.Problems, "\n  "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidBank }

package quiz

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed data/bank.json
var defaultBankJSON []byte

// bankFile is the on-disk layout of a question bank.
type bankFile struct {
	Version int        `json:"version"`
	Items   []itemJSON `json:"items"`
}

type itemJSON struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Question     string   `json:"question"`
	Code         string   `json:"code,omitempty"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Tags         []string `json:"tags"`
	Level        string   `json:"level"`
}

// Default returns the bank embedded in the binary.
func Default() (*Bank, error) {
	b, err := Load(defaultBankJSON)
	if err != nil {
		return nil, fmt.Errorf("embedded bank: %w", err)
	}
	return b, nil
}

// LoadFile reads and loads a bank from a JSON file.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank %s: %w", path, err)
	}
	b, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", path, err)
	}
	return b, nil
}

// Load parses a JSON bank, validates it against the bank schema, and runs the
// integrity checks. Malformed banks are rejected here, before any session
// sees them.
func Load(data []byte) (*Bank, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %w", ErrInvalidBank, err)
	}
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	var bf bankFile
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&bf); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidBank, err)
	}

	items := make([]Item, 0, len(bf.Items))
	for _, ij := range bf.Items {
		level, err := ParseLevel(ij.Level)
		if err != nil {
			return nil, fmt.Errorf("%w: item %d: %w", ErrInvalidBank, ij.ID, err)
		}
		items = append(items, Item{
			ID:           ij.ID,
			Title:        ij.Title,
			Question:     ij.Question,
			Code:         ij.Code,
			Choices:      ij.Choices,
			CorrectIndex: ij.CorrectIndex,
			Explanation:  ij.Explanation,
			Tags:         ij.Tags,
			Level:        level,
		})
	}

	return NewBank(items)
}

package domain

import (
	"fmt"
	"strings"
)

type Challenge struct {
	Prompt string
	Answer string
}

type PuzzleKind struct {
	Name  string
	Pairs []Challenge
}

func (k PuzzleKind) Validate() error {
	if strings.TrimSpace(k.Name) == "" {
		return fmt.Errorf("puzzle kind name is required")
	}
	if len(k.Pairs) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyPuzzleKind, k.Name)
	}
	for i, pair := range k.Pairs {
		if pair.Prompt == "" {
			return fmt.Errorf("puzzle kind %q challenge %d: prompt is required", k.Name, i)
		}
		if pair.Answer == "" {
			return fmt.Errorf("puzzle kind %q challenge %d: answer is required", k.Name, i)
		}
	}
	return nil
}

type PuzzleCatalog struct {
	kinds map[string]PuzzleKind
}

func NewPuzzleCatalog(kinds ...PuzzleKind) (PuzzleCatalog, error) {
	catalog := PuzzleCatalog{kinds: make(map[string]PuzzleKind, len(kinds))}
	for _, kind := range kinds {
		if err := kind.Validate(); err != nil {
			return PuzzleCatalog{}, err
		}
		if _, ok := catalog.kinds[kind.Name]; ok {
			return PuzzleCatalog{}, fmt.Errorf("duplicate puzzle kind %q", kind.Name)
		}
		catalog.kinds[kind.Name] = kind
	}
	return catalog, nil
}

func (c PuzzleCatalog) Kind(name string) (PuzzleKind, error) {
	kind, ok := c.kinds[name]
	if !ok {
		return PuzzleKind{}, fmt.Errorf("%w: %q", ErrPuzzleKindNotFound, name)
	}
	if len(kind.Pairs) == 0 {
		return PuzzleKind{}, fmt.Errorf("%w: %q", ErrEmptyPuzzleKind, name)
	}
	return kind, nil
}

func (c PuzzleCatalog) Len() int {
	return len(c.kinds)
}

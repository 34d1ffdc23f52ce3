package domain

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Manual is a printable document. Catalog entries are templates; the board only ever
// holds clones, each with its own InstanceID and position.
type Manual struct {
	ID         string
	InstanceID string
	Title      string
	Size       Vec
	Body       string
	Color      string
	Pos        Vec
}

func (m Manual) Rect() Rect {
	return Rect{Pos: m.Pos, Size: m.Size}
}

func (m Manual) Clone() Manual {
	clone := m
	clone.InstanceID = uuid.NewString()
	return clone
}

type ManualCatalog struct {
	manuals map[string]Manual
}

func NewManualCatalog(manuals ...Manual) (ManualCatalog, error) {
	catalog := ManualCatalog{manuals: make(map[string]Manual, len(manuals))}
	for _, manual := range manuals {
		if manual.ID == "" {
			return ManualCatalog{}, fmt.Errorf("manual id is required")
		}
		if manual.Size.X <= 0 || manual.Size.Y <= 0 {
			return ManualCatalog{}, fmt.Errorf("%w: %q", ErrInvalidManualSize, manual.ID)
		}
		if _, ok := catalog.manuals[manual.ID]; ok {
			return ManualCatalog{}, fmt.Errorf("duplicate manual %q", manual.ID)
		}
		manual.InstanceID = ""
		catalog.manuals[manual.ID] = manual
	}
	return catalog, nil
}

// Clone returns an independent copy of the catalog entry.
func (c ManualCatalog) Clone(id string) (Manual, error) {
	manual, ok := c.manuals[id]
	if !ok {
		return Manual{}, fmt.Errorf("%w: %q", ErrManualNotFound, id)
	}
	return manual.Clone(), nil
}

func (c ManualCatalog) Has(id string) bool {
	_, ok := c.manuals[id]
	return ok
}

// IDs returns catalog ids sorted alphabetically.
func (c ManualCatalog) IDs() []string {
	ids := make([]string, 0, len(c.manuals))
	for id := range c.manuals {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Get returns a copy of the catalog entry itself, without a fresh instance id.
func (c ManualCatalog) Get(id string) (Manual, bool) {
	manual, ok := c.manuals[id]
	return manual, ok
}

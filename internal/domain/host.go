package domain

import "fmt"

// FileEntry is one item of a host's file listing. ManualReference is the only variant.
type FileEntry interface {
	isFileEntry()
}

// ManualReference points at a manual page by catalog id.
type ManualReference struct {
	ID string
}

func (ManualReference) isFileEntry() {}

// Listing maps file names to entries and remembers insertion order.
type Listing struct {
	names   []string
	entries map[string]FileEntry
}

func NewListing() Listing {
	return Listing{entries: map[string]FileEntry{}}
}

func (l *Listing) Add(name string, entry FileEntry) error {
	if l.entries == nil {
		l.entries = map[string]FileEntry{}
	}
	if _, ok := l.entries[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateListingKey, name)
	}

	l.names = append(l.names, name)
	l.entries[name] = entry
	return nil
}

func (l Listing) Get(name string) (FileEntry, bool) {
	entry, ok := l.entries[name]
	return entry, ok
}

// Names returns file names in insertion order.
func (l Listing) Names() []string {
	return append([]string(nil), l.names...)
}

func (l Listing) Len() int {
	return len(l.names)
}

type Host struct {
	Address    string
	Files      Listing
	Hacked     bool
	Position   Vec
	PuzzleKind string
}

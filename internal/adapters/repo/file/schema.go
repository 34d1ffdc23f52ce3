package file

import "fmt"

const currentSchemaVersion = 1

func validateVersion(kind string, version int) error {
	if version > currentSchemaVersion {
		return fmt.Errorf("unsupported %s schema version %d (current %d)", kind, version, currentSchemaVersion)
	}
	return nil
}

type networkFileSchema struct {
	Version int          `toml:"version" yaml:"version"`
	Entry   string       `toml:"entry" yaml:"entry"`
	Hosts   []hostSchema `toml:"hosts" yaml:"hosts"`
}

func (s *networkFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

type hostSchema struct {
	Address  string         `toml:"address" yaml:"address"`
	Hacked   bool           `toml:"hacked" yaml:"hacked"`
	Puzzle   string         `toml:"puzzle,omitempty" yaml:"puzzle,omitempty"`
	Position positionSchema `toml:"position" yaml:"position"`
	Files    []fileSchema   `toml:"files,omitempty" yaml:"files,omitempty"`
}

type positionSchema struct {
	X int `toml:"x" yaml:"x"`
	Y int `toml:"y" yaml:"y"`
}

type fileSchema struct {
	Name   string `toml:"name" yaml:"name"`
	Manual string `toml:"manual" yaml:"manual"`
}

type puzzleFileSchema struct {
	Version int          `toml:"version" yaml:"version"`
	Kinds   []kindSchema `toml:"kinds" yaml:"kinds"`
}

func (s *puzzleFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

type kindSchema struct {
	Name       string            `toml:"name" yaml:"name"`
	Challenges []challengeSchema `toml:"challenges" yaml:"challenges"`
}

type challengeSchema struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
	Answer string `toml:"answer" yaml:"answer"`
}

type manualFileSchema struct {
	Version int            `toml:"version" yaml:"version"`
	Manuals []manualSchema `toml:"manuals" yaml:"manuals"`
}

func (s *manualFileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

type manualSchema struct {
	ID     string `toml:"id" yaml:"id"`
	Title  string `toml:"title" yaml:"title"`
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Color  string `toml:"color" yaml:"color"`
	Body   string `toml:"body" yaml:"body"`
}

// Package data provides battle roster files: which actors and enemies take
// part in a battle. A roster references definitions from internal/gamedata by
// id. The default roster is embedded; custom rosters load from disk.
package data

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// rosterFS embeds the YAML roster files from this directory at build time.
//
//go:embed *.yaml
var rosterFS embed.FS

// RosterFile describes one battle's membership. Order is significant: it is
// the scheduler's tie-break order, party first.
type RosterFile struct {
	Party []PartySlot `yaml:"party"`
	Troop []TroopSlot `yaml:"troop"`
}

// PartySlot places one actor in the battle.
type PartySlot struct {
	Actor string `yaml:"actor"`          // actor definition id
	Name  string `yaml:"name,omitempty"` // optional display-name override
}

// TroopSlot places one enemy in the battle.
type TroopSlot struct {
	Enemy string `yaml:"enemy"`          // enemy definition id
	Name  string `yaml:"name,omitempty"` // optional display-name override
}

// Validate rejects rosters a battle cannot start with.
func (r *RosterFile) Validate() error {
	if len(r.Party) == 0 {
		return errors.New("roster has no party slots")
	}
	if len(r.Troop) == 0 {
		return errors.New("roster has no troop slots")
	}
	for i, s := range r.Party {
		if s.Actor == "" {
			return fmt.Errorf("party slot %d: missing actor id", i)
		}
	}
	for i, s := range r.Troop {
		if s.Enemy == "" {
			return fmt.Errorf("troop slot %d: missing enemy id", i)
		}
	}
	return nil
}

// LoadRoster reads and validates a roster YAML file from disk.
func LoadRoster(path string) (*RosterFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	return parseRoster(b, path)
}

// DefaultRoster returns the embedded default battle roster.
func DefaultRoster() (*RosterFile, error) {
	b, err := rosterFS.ReadFile("default_roster.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded roster: %w", err)
	}
	return parseRoster(b, "default_roster.yaml")
}

func parseRoster(b []byte, name string) (*RosterFile, error) {
	var roster RosterFile
	if err := yaml.Unmarshal(b, &roster); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", name, err)
	}
	if err := roster.Validate(); err != nil {
		return nil, fmt.Errorf("roster %s: %w", name, err)
	}
	return &roster, nil
}

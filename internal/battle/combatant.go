// Package battle provides the charge-turn scheduler: combatants accumulate
// charge over simultaneous rounds based on their stats, and whoever fills the
// gauge first acts next. The package decides only who acts; what they do is
// the caller's concern.
package battle

import (
	"github.com/google/uuid"
)

// Combatant is the interface for any entity scheduled for turns.
// Both party actors and enemies implement this interface; the scheduler
// never branches on the concrete kind.
type Combatant interface {
	// Handle returns a stable identity for the lifetime of the battle.
	Handle() uuid.UUID

	// DisplayName returns the name shown in turn-order displays.
	DisplayName() string

	// IsBoss reports whether this combatant is a boss-class enemy.
	IsBoss() bool

	// IsAlive reports whether the combatant is still present in battle.
	// Dead combatants are skipped by charging rounds and selection.
	IsAlive() bool

	// Stat resolves a charge-formula stat name to its current value.
	// Unknown names resolve to 0.
	Stat(name string) float64
}

// Roster supplies the ordered set of combatants currently in battle.
// The order must be stable; it is the tie-break order for selection.
type Roster interface {
	ActiveCombatants() []Combatant
}

// RosterOf adapts a fixed slice into a Roster. Useful for tests and for
// battles whose membership is managed by the caller.
type RosterOf []Combatant

// ActiveCombatants returns the slice unchanged.
func (r RosterOf) ActiveCombatants() []Combatant { return r }

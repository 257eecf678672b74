// Package entity provides battle entities: party actors and enemies.
// Both implement battle.Combatant, so the scheduler never needs to know
// which kind it is driving.
package entity

import (
	"github.com/samdwyer/chargeturn/internal/battle"
	"github.com/samdwyer/chargeturn/internal/gamedata"
)

// StatBlock holds a battler's live stats over the full charge-formula
// vocabulary. It is embedded by Actor and Enemy.
type StatBlock struct {
	HP, MaxHP            int
	SP, MaxSP            int
	Str, Dex, Agi, Int   int
	Atk, PDef, MDef, Eva int
}

// newStatBlock initializes live stats from a definition; current HP/SP start
// at the maximums.
func newStatBlock(def gamedata.StatsDef) StatBlock {
	return StatBlock{
		HP: def.MaxHP, MaxHP: def.MaxHP,
		SP: def.MaxSP, MaxSP: def.MaxSP,
		Str: def.Str, Dex: def.Dex, Agi: def.Agi, Int: def.Int,
		Atk: def.Atk, PDef: def.PDef, MDef: def.MDef, Eva: def.Eva,
	}
}

// Stat resolves a charge-formula stat name. Unknown names resolve to 0.
func (s *StatBlock) Stat(name string) float64 {
	switch name {
	case "hp":
		return float64(s.HP)
	case "maxhp":
		return float64(s.MaxHP)
	case "sp":
		return float64(s.SP)
	case "maxsp":
		return float64(s.MaxSP)
	case "str":
		return float64(s.Str)
	case "dex":
		return float64(s.Dex)
	case "agi":
		return float64(s.Agi)
	case "int":
		return float64(s.Int)
	case "atk":
		return float64(s.Atk)
	case "pdef":
		return float64(s.PDef)
	case "mdef":
		return float64(s.MDef)
	case "eva":
		return float64(s.Eva)
	default:
		return 0
	}
}

// IsAlive reports whether the battler has HP remaining.
func (s *StatBlock) IsAlive() bool { return s.HP > 0 }

// TakeDamage reduces HP and returns the actual damage taken.
func (s *StatBlock) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > s.HP {
		actual = s.HP
	}
	s.HP -= actual
	return actual
}

// Action is a battler's chosen action for its pending turn: the kind plus
// the sub-id (weapon, skill or item) that keys the speed-factor lookup.
// The speed factor is resolved from it at commit time, not at selection
// time, since the choice may change before it is confirmed.
type Action struct {
	Kind  battle.ActionKind
	SubID int
}

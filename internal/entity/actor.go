package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/chargeturn/internal/gamedata"
)

// Actor represents an individual party member.
type Actor struct {
	StatBlock

	Name     string
	WeaponID int   // sub-id for attack speed factors
	SkillIDs []int // skills available to the action layer
	Pending  Action

	handle uuid.UUID
}

// NewActor creates a party actor from a data-driven definition.
func NewActor(def *gamedata.ActorDef) *Actor {
	a := &Actor{
		StatBlock: newStatBlock(def.Stats),
		Name:      def.Name,
		WeaponID:  def.WeaponID,
		handle:    uuid.New(),
	}
	a.SkillIDs = make([]int, len(def.SkillIDs))
	copy(a.SkillIDs, def.SkillIDs)
	return a
}

// Handle returns the actor's stable battle identity.
func (a *Actor) Handle() uuid.UUID { return a.handle }

// DisplayName returns the actor's name.
func (a *Actor) DisplayName() string { return a.Name }

// IsBoss always reports false for party actors.
func (a *Actor) IsBoss() bool { return false }

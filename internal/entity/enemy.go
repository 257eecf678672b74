package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/chargeturn/internal/gamedata"
)

// Enemy represents a hostile battler.
type Enemy struct {
	StatBlock

	Name    string
	Pending Action

	boss   bool
	handle uuid.UUID
}

// NewEnemy creates an enemy from a data-driven definition.
func NewEnemy(def *gamedata.EnemyDef) *Enemy {
	return &Enemy{
		StatBlock: newStatBlock(def.Stats),
		Name:      def.Name,
		boss:      def.Boss,
		handle:    uuid.New(),
	}
}

// Handle returns the enemy's stable battle identity.
func (e *Enemy) Handle() uuid.UUID { return e.handle }

// DisplayName returns the enemy's name.
func (e *Enemy) DisplayName() string { return e.Name }

// IsBoss reports whether the enemy is boss-class, for display emphasis.
func (e *Enemy) IsBoss() bool { return e.boss }

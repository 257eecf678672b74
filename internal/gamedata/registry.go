package gamedata

import (
	"errors"
	"fmt"
)

// ActorRegistry holds loaded actor definitions keyed by id.
type ActorRegistry struct {
	actors []ActorDef
}

// NewActorRegistry creates a registry from loaded actor definitions,
// rejecting duplicate ids and invalid stat blocks.
func NewActorRegistry(actors []ActorDef) (*ActorRegistry, error) {
	if len(actors) == 0 {
		return nil, errors.New("no actor definitions")
	}
	seen := map[string]bool{}
	for i := range actors {
		a := &actors[i]
		if a.ID == "" {
			return nil, fmt.Errorf("actor %d: missing id", i)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate actor id %q", a.ID)
		}
		seen[a.ID] = true
		if err := a.Stats.Validate(); err != nil {
			return nil, fmt.Errorf("actor %q: %w", a.ID, err)
		}
	}
	return &ActorRegistry{actors: actors}, nil
}

// LoadActorRegistry loads and validates the embedded actors.json.
func LoadActorRegistry() (*ActorRegistry, error) {
	actors, err := LoadActors()
	if err != nil {
		return nil, err
	}
	return NewActorRegistry(actors)
}

// MustLoadActorRegistry loads an actor registry, panicking on error.
func MustLoadActorRegistry() *ActorRegistry {
	registry, err := LoadActorRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the actor definition with the given ID, or nil if not found.
func (r *ActorRegistry) GetByID(id string) *ActorDef {
	for i := range r.actors {
		if r.actors[i].ID == id {
			return &r.actors[i]
		}
	}
	return nil
}

// All returns all actor definitions.
func (r *ActorRegistry) All() []ActorDef { return r.actors }

// Count returns the number of actor definitions.
func (r *ActorRegistry) Count() int { return len(r.actors) }

// EnemyRegistry holds loaded enemy definitions keyed by id.
type EnemyRegistry struct {
	enemies []EnemyDef
}

// NewEnemyRegistry creates a registry from loaded enemy definitions,
// rejecting duplicate ids and invalid stat blocks.
func NewEnemyRegistry(enemies []EnemyDef) (*EnemyRegistry, error) {
	if len(enemies) == 0 {
		return nil, errors.New("no enemy definitions")
	}
	seen := map[string]bool{}
	for i := range enemies {
		e := &enemies[i]
		if e.ID == "" {
			return nil, fmt.Errorf("enemy %d: missing id", i)
		}
		if seen[e.ID] {
			return nil, fmt.Errorf("duplicate enemy id %q", e.ID)
		}
		seen[e.ID] = true
		if err := e.Stats.Validate(); err != nil {
			return nil, fmt.Errorf("enemy %q: %w", e.ID, err)
		}
	}
	return &EnemyRegistry{enemies: enemies}, nil
}

// LoadEnemyRegistry loads and validates the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	return NewEnemyRegistry(enemies)
}

// MustLoadEnemyRegistry loads an enemy registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef { return r.enemies }

// Count returns the number of enemy definitions.
func (r *EnemyRegistry) Count() int { return len(r.enemies) }

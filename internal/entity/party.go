package entity

// Party groups the player's side of a battle.
type Party struct {
	Members []*Actor
}

// AliveCount returns the number of members still alive.
func (p *Party) AliveCount() int {
	count := 0
	for _, m := range p.Members {
		if m.IsAlive() {
			count++
		}
	}
	return count
}

// IsDefeated reports whether every member is down.
func (p *Party) IsDefeated() bool { return p.AliveCount() == 0 }

// Troop groups the enemy side of a battle.
type Troop struct {
	Enemies []*Enemy
}

// AliveCount returns the number of enemies still alive.
func (t *Troop) AliveCount() int {
	count := 0
	for _, e := range t.Enemies {
		if e.IsAlive() {
			count++
		}
	}
	return count
}

// IsDefeated reports whether every enemy is down.
func (t *Troop) IsDefeated() bool { return t.AliveCount() == 0 }

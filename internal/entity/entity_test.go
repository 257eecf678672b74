package entity

import (
	"testing"

	"github.com/samdwyer/chargeturn/internal/battle"
	"github.com/samdwyer/chargeturn/internal/gamedata"
)

// Both entity kinds must satisfy the scheduler's capability interface.
var (
	_ battle.Combatant = (*Actor)(nil)
	_ battle.Combatant = (*Enemy)(nil)
)

func testStats() gamedata.StatsDef {
	return gamedata.StatsDef{
		MaxHP: 100, MaxSP: 20,
		Str: 10, Dex: 12, Agi: 14, Int: 8,
		Atk: 16, PDef: 9, MDef: 7, Eva: 3,
	}
}

func TestActorFromDef(t *testing.T) {
	def := &gamedata.ActorDef{
		ID: "fencer", Name: "Fencer", Stats: testStats(),
		WeaponID: 1, SkillIDs: []int{10, 11},
	}
	a := NewActor(def)

	if a.DisplayName() != "Fencer" {
		t.Errorf("DisplayName() = %q, want Fencer", a.DisplayName())
	}
	if a.IsBoss() {
		t.Error("actors are never bosses")
	}
	if !a.IsAlive() {
		t.Error("fresh actor should be alive")
	}
	if a.HP != 100 || a.SP != 20 {
		t.Errorf("current pools = %d/%d, want 100/20", a.HP, a.SP)
	}
	if a.Handle() == NewActor(def).Handle() {
		t.Error("two actors share a handle")
	}

	// Mutating the actor's skill list must not touch the definition.
	a.SkillIDs[0] = 999
	if def.SkillIDs[0] != 10 {
		t.Error("actor skill list aliases the definition")
	}
}

func TestStatLookup(t *testing.T) {
	a := NewActor(&gamedata.ActorDef{ID: "x", Name: "X", Stats: testStats()})

	tests := []struct {
		stat     string
		expected float64
	}{
		{"hp", 100}, {"maxhp", 100}, {"sp", 20}, {"maxsp", 20},
		{"str", 10}, {"dex", 12}, {"agi", 14}, {"int", 8},
		{"atk", 16}, {"pdef", 9}, {"mdef", 7}, {"eva", 3},
		{"luck", 0}, // outside the vocabulary
	}
	for _, tt := range tests {
		if got := a.Stat(tt.stat); got != tt.expected {
			t.Errorf("Stat(%q) = %v, want %v", tt.stat, got, tt.expected)
		}
	}

	a.TakeDamage(40)
	if got := a.Stat("hp"); got != 60 {
		t.Errorf("Stat(hp) after damage = %v, want 60", got)
	}
}

func TestTakeDamage(t *testing.T) {
	e := NewEnemy(&gamedata.EnemyDef{ID: "ghoul", Name: "Ghoul", Stats: testStats()})

	if got := e.TakeDamage(30); got != 30 {
		t.Errorf("TakeDamage(30) = %d, want 30", got)
	}
	if got := e.TakeDamage(-5); got != 0 {
		t.Errorf("TakeDamage(-5) = %d, want 0", got)
	}
	if got := e.TakeDamage(1000); got != 70 {
		t.Errorf("TakeDamage(1000) = %d, want 70 (clamped to remaining HP)", got)
	}
	if e.IsAlive() {
		t.Error("enemy at 0 HP should be dead")
	}
}

func TestBossFlag(t *testing.T) {
	boss := NewEnemy(&gamedata.EnemyDef{ID: "b", Name: "B", Boss: true, Stats: testStats()})
	mook := NewEnemy(&gamedata.EnemyDef{ID: "m", Name: "M", Stats: testStats()})

	if !boss.IsBoss() {
		t.Error("boss flag lost")
	}
	if mook.IsBoss() {
		t.Error("non-boss flagged as boss")
	}
}

func TestPartyAndTroopCounts(t *testing.T) {
	stats := testStats()
	p := &Party{Members: []*Actor{
		NewActor(&gamedata.ActorDef{ID: "a", Name: "A", Stats: stats}),
		NewActor(&gamedata.ActorDef{ID: "b", Name: "B", Stats: stats}),
	}}
	tr := &Troop{Enemies: []*Enemy{
		NewEnemy(&gamedata.EnemyDef{ID: "e", Name: "E", Stats: stats}),
	}}

	if p.AliveCount() != 2 || p.IsDefeated() {
		t.Errorf("fresh party: AliveCount=%d IsDefeated=%v", p.AliveCount(), p.IsDefeated())
	}

	p.Members[0].TakeDamage(1000)
	if p.AliveCount() != 1 {
		t.Errorf("AliveCount after one death = %d, want 1", p.AliveCount())
	}
	p.Members[1].TakeDamage(1000)
	if !p.IsDefeated() {
		t.Error("party with no alive members should be defeated")
	}

	tr.Enemies[0].TakeDamage(1000)
	if !tr.IsDefeated() {
		t.Error("troop with no alive enemies should be defeated")
	}
}

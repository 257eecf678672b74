package game

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewSessionDefaults(t *testing.T) {
	s, err := NewSession(Config{Seed: 1})
	if err != nil {
		t.Fatalf("NewSession error: %v", err)
	}

	if got := len(s.party.Members); got != 4 {
		t.Errorf("party size = %d, want 4", got)
	}
	if got := len(s.troop.Enemies); got != 3 {
		t.Errorf("troop size = %d, want 3", got)
	}
	if got := len(s.roster); got != 7 {
		t.Errorf("roster size = %d, want 7 (party before troop)", got)
	}
	if s.Outcome() != OutcomeNone {
		t.Errorf("fresh session outcome = %v, want none", s.Outcome())
	}
	if s.depth != 16 {
		t.Errorf("forecast depth = %d, want configured 16", s.depth)
	}
}

func TestNewSessionErrors(t *testing.T) {
	if _, err := NewSession(Config{RosterPath: filepath.Join(t.TempDir(), "nope.yaml")}); err == nil {
		t.Error("missing roster file accepted")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := []byte("party:\n  - actor: nobody\ntroop:\n  - enemy: ghoul\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp roster: %v", err)
	}
	if _, err := NewSession(Config{RosterPath: path}); err == nil {
		t.Error("roster with unknown actor id accepted")
	}
}

func TestSessionRunsToOutcome(t *testing.T) {
	s, err := NewSession(Config{Seed: 42})
	if err != nil {
		t.Fatalf("NewSession error: %v", err)
	}

	outcome, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if outcome == OutcomeNone {
		t.Error("Run returned with outcome none")
	}
	if s.Turns() == 0 {
		t.Error("Run committed no turns")
	}
	if s.Turns() > s.cfg.MaxTurns {
		t.Errorf("Turns() = %d exceeds MaxTurns %d", s.Turns(), s.cfg.MaxTurns)
	}
	if len(s.Log()) == 0 {
		t.Error("battle log is empty")
	}
	if s.ForecastChanges() == 0 {
		t.Error("forecast never changed across a whole battle")
	}
}

func TestSessionIsDeterministicPerSeed(t *testing.T) {
	run := func(seed int64) (Outcome, int, []string) {
		t.Helper()
		s, err := NewSession(Config{Seed: seed})
		if err != nil {
			t.Fatalf("NewSession error: %v", err)
		}
		outcome, err := s.Run(context.Background())
		if err != nil {
			t.Fatalf("Run error: %v", err)
		}
		return outcome, s.Turns(), s.Log()
	}

	o1, turns1, log1 := run(7)
	o2, turns2, log2 := run(7)

	if o1 != o2 || turns1 != turns2 {
		t.Fatalf("same seed diverged: %v/%d vs %v/%d", o1, turns1, o2, turns2)
	}
	if len(log1) != len(log2) {
		t.Fatalf("same seed log lengths differ: %d vs %d", len(log1), len(log2))
	}
	for i := range log1 {
		if log1[i] != log2[i] {
			t.Errorf("log line %d differs:\n  %s\n  %s", i, log1[i], log2[i])
		}
	}
}

func TestSessionForecastDepthOverride(t *testing.T) {
	s, err := NewSession(Config{Seed: 1, ForecastDepth: 5, MaxTurns: 3})
	if err != nil {
		t.Fatalf("NewSession error: %v", err)
	}
	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if got := len(s.ForecastNames()); got != 5 {
		t.Errorf("forecast length = %d, want overridden depth 5", got)
	}
}

func TestBossLabel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "boss.yaml")
	content := []byte("party:\n  - actor: fencer\ntroop:\n  - enemy: lich_king\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp roster: %v", err)
	}

	s, err := NewSession(Config{Seed: 1, RosterPath: path, MaxTurns: 2})
	if err != nil {
		t.Fatalf("NewSession error: %v", err)
	}
	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	const marker = "Lich King (boss)"
	found := false
	for _, name := range s.ForecastNames() {
		if name == marker {
			found = true
		}
	}
	for _, line := range s.Log() {
		if strings.Contains(line, marker) {
			found = true
		}
	}
	if !found {
		t.Error("boss label never appeared in forecast or log")
	}
}

func TestOutcomeString(t *testing.T) {
	tests := []struct {
		outcome  Outcome
		expected string
	}{
		{OutcomeNone, "none"},
		{OutcomeVictory, "victory"},
		{OutcomeDefeat, "defeat"},
		{OutcomeTurnLimit, "turn_limit"},
		{Outcome(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.outcome.String(); got != tt.expected {
			t.Errorf("Outcome(%d).String() = %q, want %q", tt.outcome, got, tt.expected)
		}
	}
}

package battle

import (
	"testing"
)

func forecastNames(out []Combatant) []string {
	names := make([]string, len(out))
	for i, c := range out {
		names[i] = c.DisplayName()
	}
	return names
}

func TestForecastEmptyRoster(t *testing.T) {
	s := NewTurnScheduler(RosterOf{}, agiModel(t, 100))

	for _, depth := range []int{0, 1, 16, 1000} {
		if out := s.Forecast(depth); len(out) != 0 {
			t.Errorf("Forecast(%d) on empty roster returned %d entries, want 0", depth, len(out))
		}
	}
}

func TestForecastDepth(t *testing.T) {
	s := NewTurnScheduler(RosterOf{newStub("A", 10), newStub("B", 5)}, agiModel(t, 100))

	for _, depth := range []int{1, 4, 16, 100} {
		if out := s.Forecast(depth); len(out) != depth {
			t.Errorf("Forecast(%d) returned %d entries", depth, len(out))
		}
	}
}

func TestForecastNeverMutatesRealGauges(t *testing.T) {
	a := newStub("A", 10)
	b := newStub("B", 5)
	c := newStub("C", 20)
	s := NewTurnScheduler(RosterOf{a, b, c}, agiModel(t, 100))

	// Establish non-trivial real state: resolve and commit one turn.
	actor, err := s.AdvanceToNextActor()
	if err != nil {
		t.Fatalf("AdvanceToNextActor() error: %v", err)
	}
	if err := s.CommitTurn(actor, 0); err != nil {
		t.Fatalf("CommitTurn error: %v", err)
	}

	before := map[string]int{
		"A": s.GaugeOf(a).Charge,
		"B": s.GaugeOf(b).Charge,
		"C": s.GaugeOf(c).Charge,
	}

	first := s.Forecast(16)
	second := s.Forecast(16)
	third := s.Forecast(16)

	if !SameOrder(first, second) || !SameOrder(second, third) {
		t.Errorf("repeated forecasts differ: %v / %v / %v",
			forecastNames(first), forecastNames(second), forecastNames(third))
	}

	after := map[string]int{
		"A": s.GaugeOf(a).Charge,
		"B": s.GaugeOf(b).Charge,
		"C": s.GaugeOf(c).Charge,
	}
	for name := range before {
		if before[name] != after[name] {
			t.Errorf("%s real gauge changed %d -> %d across forecasts", name, before[name], after[name])
		}
	}
}

func TestForecastMatchesRealResolution(t *testing.T) {
	// With all speed factors 0 the forecast's neutral-action assumption is
	// exact, so the predicted order must equal the real turn order.
	build := func() *TurnScheduler {
		return NewTurnScheduler(
			RosterOf{newStub("A", 10), newStub("B", 5), newStub("C", 20)},
			agiModel(t, 100),
		)
	}

	predicted := forecastNames(build().Forecast(8))

	real := build()
	var actual []string
	for i := 0; i < 8; i++ {
		actor, err := real.AdvanceToNextActor()
		if err != nil {
			t.Fatalf("turn %d: AdvanceToNextActor() error: %v", i, err)
		}
		actual = append(actual, actor.DisplayName())
		if err := real.CommitTurn(actor, 0); err != nil {
			t.Fatalf("turn %d: CommitTurn error: %v", i, err)
		}
	}

	want := []string{"C", "A", "C", "C", "A", "B", "C", "C"}
	for i := range want {
		if predicted[i] != want[i] {
			t.Errorf("forecast[%d] = %s, want %s", i, predicted[i], want[i])
		}
		if actual[i] != want[i] {
			t.Errorf("real turn %d = %s, want %s", i, actual[i], want[i])
		}
	}
}

func TestForecastSkipsDeadCombatants(t *testing.T) {
	a := newStub("A", 10)
	b := newStub("B", 20)
	b.dead = true
	s := NewTurnScheduler(RosterOf{a, b}, agiModel(t, 100))

	out := s.Forecast(4)
	for i, c := range out {
		if c != Combatant(a) {
			t.Errorf("forecast[%d] = %s, want A (B is dead)", i, c.DisplayName())
		}
	}
}

func TestForecastStallsGracefully(t *testing.T) {
	// A charges normally; B never can. The simulation must stop once only
	// stalled combatants remain below threshold instead of looping forever.
	a := newStub("A", 10)
	zero := newStub("Z", 0)
	s := NewTurnScheduler(RosterOf{a, zero}, agiModel(t, 100))

	out := s.Forecast(16)
	for i, c := range out {
		if c != Combatant(a) {
			t.Errorf("forecast[%d] = %s, want A", i, c.DisplayName())
		}
	}
	if len(out) != 16 {
		t.Errorf("Forecast(16) returned %d entries, want 16 (A keeps charging)", len(out))
	}

	stalled := NewTurnScheduler(RosterOf{newStub("Z1", 0), newStub("Z2", 0)}, agiModel(t, 100))
	if out := stalled.Forecast(16); len(out) != 0 {
		t.Errorf("all-stalled forecast returned %d entries, want 0", len(out))
	}
}

func TestSameOrder(t *testing.T) {
	a := newStub("A", 10)
	b := newStub("B", 10)

	if !SameOrder([]Combatant{a, b}, []Combatant{a, b}) {
		t.Error("identical sequences reported as different")
	}
	if SameOrder([]Combatant{a, b}, []Combatant{b, a}) {
		t.Error("reordered sequences reported as same")
	}
	if SameOrder([]Combatant{a, b}, []Combatant{a}) {
		t.Error("different lengths reported as same")
	}
	if !SameOrder(nil, nil) {
		t.Error("nil sequences reported as different")
	}
}

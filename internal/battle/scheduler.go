package battle

import (
	"errors"

	"github.com/google/uuid"
)

// Phase represents the scheduler's position in the turn cycle.
type Phase int

const (
	// PhaseIdle - no battle round in progress and no pending selection.
	PhaseIdle Phase = iota
	// PhaseCharging - every active combatant's gauge is ticking per round.
	PhaseCharging
	// PhaseSelecting - at least one gauge has reached the threshold.
	PhaseSelecting
	// PhaseActiveTurn - a combatant has been chosen and awaits its action.
	PhaseActiveTurn
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseCharging:
		return "charging"
	case PhaseSelecting:
		return "selecting"
	case PhaseActiveTurn:
		return "active_turn"
	default:
		return "unknown"
	}
}

var (
	// ErrEmptyRoster is returned when turn resolution runs with no alive
	// combatants. A battle should not be running in that state.
	ErrEmptyRoster = errors.New("battle: no active combatants")

	// ErrNoProgress is returned when a full charging round advances no gauge,
	// which would otherwise spin forever. It indicates a misconfigured
	// charge formula (zero or negative rate for every combatant).
	ErrNoProgress = errors.New("battle: no combatant gains charge")

	// ErrTurnPending is returned when AdvanceToNextActor is called while a
	// chosen combatant is still awaiting CommitTurn.
	ErrTurnPending = errors.New("battle: a turn is already pending")

	// ErrNotActive is returned when CommitTurn names a combatant other than
	// the current active battler.
	ErrNotActive = errors.New("battle: combatant is not the active battler")
)

// TurnScheduler owns the gauge state for one battle and resolves who acts
// next. It holds references to combatants, never ownership: liveness and
// stats are read from the roster, and membership changes are the roster's
// concern. Construct one per battle and discard it at battle end.
type TurnScheduler struct {
	roster Roster
	model  *GaugeModel
	gauges map[uuid.UUID]*Gauge
	phase  Phase
	active Combatant
	rounds int
}

// NewTurnScheduler creates a scheduler over the given roster. Gauge state is
// created zeroed the first time a combatant appears in the roster.
func NewTurnScheduler(roster Roster, model *GaugeModel) *TurnScheduler {
	return &TurnScheduler{
		roster: roster,
		model:  model,
		gauges: make(map[uuid.UUID]*Gauge),
		phase:  PhaseIdle,
	}
}

// Phase returns the scheduler's current phase.
func (s *TurnScheduler) Phase() Phase { return s.phase }

// Model returns the gauge model the scheduler was built with.
func (s *TurnScheduler) Model() *GaugeModel { return s.model }

// Rounds returns the number of real charging rounds run since construction
// or the last Reset.
func (s *TurnScheduler) Rounds() int { return s.rounds }

// ActiveBattler returns the combatant chosen by the last resolution pass,
// or nil when no turn is pending.
func (s *TurnScheduler) ActiveBattler() Combatant { return s.active }

// GaugeOf returns a copy of a combatant's gauge, for display and tests.
// A combatant the scheduler has never seen reads as zeroed.
func (s *TurnScheduler) GaugeOf(c Combatant) Gauge {
	if g, ok := s.gauges[c.Handle()]; ok {
		return *g
	}
	return Gauge{}
}

// Reset discards all gauge state and returns to idle, for battle teardown.
func (s *TurnScheduler) Reset() {
	s.gauges = make(map[uuid.UUID]*Gauge)
	s.active = nil
	s.phase = PhaseIdle
	s.rounds = 0
}

// gauge returns the combatant's gauge, creating it zeroed on first sight.
func (s *TurnScheduler) gauge(c Combatant) *Gauge {
	g, ok := s.gauges[c.Handle()]
	if !ok {
		g = &Gauge{}
		s.gauges[c.Handle()] = g
	}
	return g
}

// alive reads the roster and filters to alive combatants, preserving roster
// order. Liveness is read once per charging round; a combatant whose
// liveness flips mid-battle keeps its gauge value for if it returns.
func (s *TurnScheduler) alive() []Combatant {
	all := s.roster.ActiveCombatants()
	out := make([]Combatant, 0, len(all))
	for _, c := range all {
		if c.IsAlive() {
			out = append(out, c)
		}
	}
	return out
}

// AdvanceToNextActor runs charging rounds until at least one combatant's
// gauge reaches the threshold, then selects the one with the strictly
// largest gauge (ties broken by roster order) as the active battler. All
// combatants tick in the same round before any threshold check, so equal
// speeds reach the threshold together. Losers keep their over-threshold
// surplus toward their own next turn.
//
// The call is synchronous and always terminates: either a combatant becomes
// ready, or a zero-progress round reports ErrNoProgress.
func (s *TurnScheduler) AdvanceToNextActor() (Combatant, error) {
	if s.phase == PhaseActiveTurn {
		return nil, ErrTurnPending
	}

	var combatants []Combatant
	for {
		combatants = s.alive()
		if len(combatants) == 0 {
			s.phase = PhaseIdle
			return nil, ErrEmptyRoster
		}
		if s.anyReady(combatants) {
			break
		}
		s.phase = PhaseCharging
		s.rounds++
		progressed := false
		for _, c := range combatants {
			g := s.gauge(c)
			before := g.Charge
			s.model.TickReal(g, c)
			if g.Charge != before {
				progressed = true
			}
		}
		if !progressed {
			s.phase = PhaseIdle
			return nil, ErrNoProgress
		}
	}

	s.phase = PhaseSelecting
	winner := s.selectReady(combatants)

	s.active = winner
	s.phase = PhaseActiveTurn
	return winner, nil
}

// anyReady reports whether any combatant's real gauge is at the threshold.
func (s *TurnScheduler) anyReady(combatants []Combatant) bool {
	for _, c := range combatants {
		if s.model.Ready(s.gauge(c)) {
			return true
		}
	}
	return false
}

// selectReady picks the ready combatant with the largest real gauge. A tie at
// the maximum goes to the first in roster order.
func (s *TurnScheduler) selectReady(combatants []Combatant) Combatant {
	var winner Combatant
	best := 0
	for _, c := range combatants {
		g := s.gauge(c)
		if !s.model.Ready(g) {
			continue
		}
		if winner == nil || g.Charge > best {
			winner = c
			best = g.Charge
		}
	}
	return winner
}

// CommitTurn finalizes the active battler's turn: its real gauge is reset
// with the speed factor of the action just taken, and the scheduler returns
// to charging. Committing any combatant other than the active battler is a
// caller bug and reports ErrNotActive rather than corrupting the turn order.
func (s *TurnScheduler) CommitTurn(actor Combatant, speedFactor int) error {
	if actor == nil || s.active == nil || actor.Handle() != s.active.Handle() {
		return ErrNotActive
	}
	s.model.ResetReal(s.gauge(actor), speedFactor)
	s.active = nil
	s.phase = PhaseCharging
	return nil
}

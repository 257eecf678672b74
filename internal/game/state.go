// Package game provides the battle session: the glue that drives the
// charge-turn scheduler, resolves chosen actions into speed factors, and
// publishes the battle log and turn forecast for display.
package game

// Outcome represents how a battle session ended.
type Outcome int

const (
	// OutcomeNone - the battle is still running.
	OutcomeNone Outcome = iota
	// OutcomeVictory - all enemies defeated.
	OutcomeVictory
	// OutcomeDefeat - all party members defeated.
	OutcomeDefeat
	// OutcomeTurnLimit - the configured turn cap was reached.
	OutcomeTurnLimit
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeTurnLimit:
		return "turn_limit"
	default:
		return "unknown"
	}
}

package game

// Config holds battle session options.
type Config struct {
	// Seed for the action-selection RNG. The same seed replays the same battle.
	Seed int64

	// MaxTurns caps the battle length. 0 means the default of 200.
	MaxTurns int

	// ForecastDepth overrides the configured number of predicted turns.
	// 0 means use the scheduler configuration's depth.
	ForecastDepth int

	// RosterPath loads a custom roster YAML from disk.
	// Empty means the embedded default roster.
	RosterPath string
}

const defaultMaxTurns = 200

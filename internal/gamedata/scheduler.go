package gamedata

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/chargeturn/internal/battle"
	"github.com/samdwyer/chargeturn/internal/formula"
)

// SchedulerDef is the charge-turn tuning loaded from scheduler.json: the
// charge-rate formula, the gauge threshold, the forecast depth shown to the
// presentation layer, and the per-action speed-factor tables.
type SchedulerDef struct {
	ChargeFormula string                    `json:"chargeFormula"` // expression over the stat vocabulary
	Threshold     int                       `json:"threshold"`     // gauge value that grants a turn
	ForecastDepth int                       `json:"forecastDepth"` // future turns computed for display
	SpeedFactors  map[string]SpeedFactorDef `json:"speedFactors"`  // keyed by action kind name
}

// SpeedFactorDef configures one action kind's speed factors: a kind-wide
// default plus optional per-sub-id overrides (weapon/skill/item ids).
type SpeedFactorDef struct {
	Default int            `json:"default"`
	ByID    map[string]int `json:"byId,omitempty"`
}

// actionKinds maps configuration names to action kinds.
var actionKinds = map[string]battle.ActionKind{
	"attack":      battle.ActionAttack,
	"skill":       battle.ActionSkill,
	"item":        battle.ActionItem,
	"defend":      battle.ActionDefend,
	"escape_fail": battle.ActionEscapeFail,
	"nothing":     battle.ActionNothing,
}

// Validate checks the definition without building anything. Any error here is
// a fatal configuration error: the simulation must not start.
func (d *SchedulerDef) Validate() error {
	if _, err := formula.Parse(d.ChargeFormula); err != nil {
		return fmt.Errorf("charge formula: %w", err)
	}
	if d.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %d", d.Threshold)
	}
	if d.ForecastDepth <= 0 {
		return fmt.Errorf("forecast depth must be positive, got %d", d.ForecastDepth)
	}
	for kindName, def := range d.SpeedFactors {
		if _, ok := actionKinds[kindName]; !ok {
			return fmt.Errorf("unknown action kind %q in speed factors", kindName)
		}
		for id := range def.ByID {
			if _, err := strconv.Atoi(id); err != nil {
				return fmt.Errorf("speed factor %s: sub-id %q is not an integer", kindName, id)
			}
		}
	}
	return nil
}

// Compile validates the definition and builds the runtime gauge model and
// speed-factor table.
func (d *SchedulerDef) Compile() (*battle.GaugeModel, *battle.SpeedFactorTable, error) {
	if err := d.Validate(); err != nil {
		return nil, nil, err
	}

	rate, err := formula.Parse(d.ChargeFormula)
	if err != nil {
		return nil, nil, fmt.Errorf("charge formula: %w", err)
	}
	model, err := battle.NewGaugeModel(d.Threshold, rate)
	if err != nil {
		return nil, nil, err
	}

	table := battle.NewSpeedFactorTable()
	for kindName, def := range d.SpeedFactors {
		kind := actionKinds[kindName]
		table.SetDefault(kind, def.Default)
		for id, factor := range def.ByID {
			subID, _ := strconv.Atoi(id) // validated above
			table.SetOverride(kind, subID, factor)
		}
	}
	return model, table, nil
}

// LoadSchedulerDef loads and validates the embedded scheduler.json.
func LoadSchedulerDef() (*SchedulerDef, error) {
	def, err := load[SchedulerDef]("scheduler.json")
	if err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("scheduler.json: %w", err)
	}
	return &def, nil
}

// MustLoadSchedulerDef loads the scheduler definition, panicking on error.
// Use this for data that must be present for a battle to run.
func MustLoadSchedulerDef() *SchedulerDef {
	def, err := LoadSchedulerDef()
	if err != nil {
		panic(err)
	}
	return def
}

package battle

import (
	"fmt"

	"github.com/samdwyer/chargeturn/internal/formula"
)

// Gauge holds one combatant's accumulated charge. Charge is the real value
// consumed by turn resolution; Shadow is an independent copy used only while
// forecasting future turns. Both are mutated only through a GaugeModel.
type Gauge struct {
	Charge int
	Shadow int
}

// GaugeModel owns the threshold and the compiled charge-rate formula, and
// provides the arithmetic for advancing and resetting gauges. It carries no
// per-combatant state.
type GaugeModel struct {
	threshold int
	rate      formula.Expr
}

// NewGaugeModel creates a gauge model. The threshold must be positive and the
// rate expression non-nil; both are configuration errors, not runtime faults.
func NewGaugeModel(threshold int, rate formula.Expr) (*GaugeModel, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("battle: threshold must be positive, got %d", threshold)
	}
	if rate == nil {
		return nil, fmt.Errorf("battle: charge-rate formula is required")
	}
	return &GaugeModel{threshold: threshold, rate: rate}, nil
}

// Threshold returns the charge value a gauge must reach to grant a turn.
func (m *GaugeModel) Threshold() int { return m.threshold }

// ChargeRate evaluates the charge formula over the combatant's current stats.
// The fractional part of the result is discarded. A misconfigured formula may
// produce a non-positive rate; the model does not clamp.
func (m *GaugeModel) ChargeRate(c Combatant) int {
	return int(m.rate.Eval(c.Stat))
}

// TickReal advances the real gauge by one round of charge.
func (m *GaugeModel) TickReal(g *Gauge, c Combatant) {
	g.Charge += m.ChargeRate(c)
}

// TickShadow advances the forecast gauge by one round of charge.
func (m *GaugeModel) TickShadow(g *Gauge, c Combatant) {
	g.Shadow += m.ChargeRate(c)
}

// CopyRealIntoShadow snapshots the real gauge into the forecast gauge.
// After the copy the two values are fully independent.
func (m *GaugeModel) CopyRealIntoShadow(g *Gauge) {
	g.Shadow = g.Charge
}

// ResetReal resets the real gauge after a committed turn. The reset subtracts
// the threshold rather than zeroing, so any overshoot carries over, then adds
// the speed factor of the action just taken.
func (m *GaugeModel) ResetReal(g *Gauge, speedFactor int) {
	g.Charge += speedFactor - m.threshold
}

// ResetShadow resets the forecast gauge after a forecast turn. No speed
// factor applies: the forecast assumes a neutral action.
func (m *GaugeModel) ResetShadow(g *Gauge) {
	g.Shadow -= m.threshold
}

// Clear zeroes both gauges, for battle end or a combatant leaving the roster.
func (m *GaugeModel) Clear(g *Gauge) {
	g.Charge = 0
	g.Shadow = 0
}

// Ready reports whether the real gauge has reached the threshold.
func (m *GaugeModel) Ready(g *Gauge) bool { return g.Charge >= m.threshold }

// ShadowReady reports whether the forecast gauge has reached the threshold.
func (m *GaugeModel) ShadowReady(g *Gauge) bool { return g.Shadow >= m.threshold }

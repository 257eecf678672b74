package battle

// Forecast predicts the next depth turns without touching real gauge state,
// for the turn-order display. Every alive combatant's real gauge is
// snapshotted into its shadow gauge, then the shadow simulation runs the same
// round/select/reset cycle as real resolution, except that shadow resets
// apply no speed factor, since the actions behind future turns have not been
// chosen yet.
//
// The pass is pure with respect to real gauges and idempotent: re-running it
// with no intervening CommitTurn yields the identical sequence. An empty
// roster yields an empty sequence; a roster where no gauge can advance yields
// however many turns were resolved before the simulation stalled.
func (s *TurnScheduler) Forecast(depth int) []Combatant {
	if depth <= 0 {
		return nil
	}
	combatants := s.alive()
	if len(combatants) == 0 {
		return nil
	}

	for _, c := range combatants {
		s.model.CopyRealIntoShadow(s.gauge(c))
	}

	out := make([]Combatant, 0, depth)
	for len(out) < depth {
		for !s.anyShadowReady(combatants) {
			progressed := false
			for _, c := range combatants {
				g := s.gauge(c)
				before := g.Shadow
				s.model.TickShadow(g, c)
				if g.Shadow != before {
					progressed = true
				}
			}
			if !progressed {
				return out
			}
		}

		winner := s.selectShadowReady(combatants)
		out = append(out, winner)
		s.model.ResetShadow(s.gauge(winner))
	}
	return out
}

// anyShadowReady reports whether any shadow gauge is at the threshold.
func (s *TurnScheduler) anyShadowReady(combatants []Combatant) bool {
	for _, c := range combatants {
		if s.model.ShadowReady(s.gauge(c)) {
			return true
		}
	}
	return false
}

// selectShadowReady picks the ready combatant with the largest shadow gauge,
// using the same roster-order tie-break as real selection.
func (s *TurnScheduler) selectShadowReady(combatants []Combatant) Combatant {
	var winner Combatant
	best := 0
	for _, c := range combatants {
		g := s.gauge(c)
		if !s.model.ShadowReady(g) {
			continue
		}
		if winner == nil || g.Shadow > best {
			winner = c
			best = g.Shadow
		}
	}
	return winner
}

// SameOrder reports whether two forecast sequences name the same combatants
// in the same order. Callers use it to decide whether a fresh forecast is
// worth pushing to the display.
func SameOrder(a, b []Combatant) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Handle() != b[i].Handle() {
			return false
		}
	}
	return true
}

package world

import "math"

// ============================================================================
// TRAPS
// ============================================================================

func (w *World) updateTraps(dt float64) {
	p := &w.Player
	kept := w.Traps[:0]
	for _, t := range w.Traps {
		t.T += dt
		if t.T >= t.Life {
			continue
		}
		armed := !t.Warn && t.T >= t.ArmedDelay
		if armed && circlesOverlap(t.Pos, t.Radius, p.Pos, w.Cfg.PlayerRadius*0.4) {
			w.damagePlayer(t.Damage)
			continue // a trap is spent on its first hit
		}
		kept = append(kept, t)
	}
	w.Traps = kept
}

// ============================================================================
// THUNDER STRIKES
// ============================================================================

func (w *World) updateThunders(dt float64) {
	kept := w.Thunders[:0]
	for _, th := range w.Thunders {
		th.T += dt
		if th.T >= th.Warn+th.Life {
			continue
		}
		// the check stays live for the whole strike window until a hit lands
		if th.T >= th.Warn && !th.HitDone &&
			beamHitsCircle(th.Start, th.End, w.Player.Pos, th.Thickness, w.Cfg.PlayerRadius) {
			th.HitDone = true
			w.damagePlayer(th.Damage)
		}
		kept = append(kept, th)
	}
	w.Thunders = kept
}

// ============================================================================
// LASERS
// ============================================================================

func (w *World) updateLasers(dt float64) {
	kept := w.Lasers[:0]
	for _, l := range w.Lasers {
		l.T += dt
		if l.T >= l.Warn+l.Life {
			continue
		}
		// like thunder, the beam keeps checking until it actually connects
		if l.T >= l.Warn && !l.HitDone {
			if l.Owner == OwnerEnemy {
				if beamHitsCircle(l.Start, l.End, w.Player.Pos, l.Thickness, w.Cfg.PlayerRadius) {
					l.HitDone = true
					w.damagePlayer(l.Damage)
				}
			} else {
				for i := range w.Enemies {
					e := &w.Enemies[i]
					if beamHitsCircle(l.Start, l.End, e.Pos, l.Thickness, e.R) {
						l.HitDone = true
						w.damageEnemy(e, l.Damage)
					}
				}
			}
		}
		kept = append(kept, l)
	}
	w.Lasers = kept
}

// ============================================================================
// VORTEX AURA
// ============================================================================

// The vortex buff grinds nearby enemies for whole points of damage; the
// fractional remainder carries between steps so dps is dt-independent.
func (w *World) updateVortex(dt float64) {
	p := &w.Player
	if w.Time >= p.VortexUntil {
		p.vortexAcc = 0
		return
	}

	const (
		vortexRadius = 110
		vortexDPS    = 14
	)

	p.vortexAcc += vortexDPS * dt
	whole := math.Floor(p.vortexAcc)
	if whole < 1 {
		return
	}
	p.vortexAcc -= whole

	for i := range w.Enemies {
		e := &w.Enemies[i]
		if circlesOverlap(p.Pos, vortexRadius, e.Pos, e.R) {
			w.damageEnemy(e, whole)
		}
	}
}

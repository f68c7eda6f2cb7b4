package world

import "math"

// Boss phase is derived from remaining health so staggered damage (ultras,
// traps) can never skip a phase transition.
func bossPhase(e *Enemy) int {
	switch {
	case e.HP <= e.MaxHP/3:
		return 2
	case e.HP <= e.MaxHP*2/3:
		return 1
	default:
		return 0
	}
}

// ============================================================================
// SHARED BOSS HELPERS
// ============================================================================

func (w *World) bossFan(e *Enemy, count int, spreadDeg, speed, damage float64, kind ProjectileKind) {
	base := w.leadDir(e.Pos, speed, 0.5)
	half := spreadDeg * math.Pi / 180 / 2
	for i := range count {
		frac := 0.5
		if count > 1 {
			frac = float64(i) / float64(count-1)
		}
		w.enemyShoot(e, base.Rotate(-half+2*half*frac), speed, damage, 2.4, kind)
	}
}

func (w *World) bossSummon(b Behavior, limit int, around Vec2) {
	if w.activeHostiles() >= limit {
		return
	}
	ang := w.randFloat() * 2 * math.Pi
	pos := w.clampToRoom(around.Add(vecFromAngle(ang).Mul(70)), 0.9)
	w.spawnEnemy(b, pos)
}

// bossHold keeps a boss near its preferred engagement distance with a slow
// strafe so it never parks motionless.
func (w *World) bossHold(e *Enemy, dt, desired float64) {
	to := w.Player.Pos.Sub(e.Pos)
	d := to.Len()
	dir := to.Norm()

	var move Vec2
	switch {
	case d > desired+25:
		move = dir
	case d < desired-25:
		move = dir.Mul(-1)
	default:
		move = dir.Perp().Mul(e.AI.StrafeSign * 0.6)
	}
	e.Pos = e.Pos.Add(move.Norm().Mul(e.Speed * dt))
}

func (w *World) thunderStrike(at Vec2, damage float64) {
	dir := vecFromAngle(w.randFloat() * 2 * math.Pi)
	const halfLen = 180
	w.Thunders = append(w.Thunders, ThunderLine{
		Start:     at.Sub(dir.Mul(halfLen)),
		End:       at.Add(dir.Mul(halfLen)),
		Damage:    damage,
		Thickness: 14,
		Warn:      0.55,
		Life:      0.16,
	})
}

// ============================================================================
// THUNDER
// ============================================================================

func (w *World) updateBossThunder(e *Enemy, dt float64) {
	phase := bossPhase(e)

	desired := 230.0
	switch e.AI.Persona {
	case PersonaAggressive:
		desired = 205
	case PersonaTrickster:
		desired = 265
	}
	w.bossHold(e, dt, desired)

	if e.AttackCD > 0 {
		return
	}

	wave := float64(w.Wave)
	strikeDmg := 14 + wave/5

	swirlChance := 0.0
	if phase >= 1 {
		swirlChance = 0.12
	}
	if phase >= 2 {
		swirlChance = 0.25
	}
	if e.AI.Persona == PersonaTrickster {
		swirlChance += 0.08
	}

	roll := w.randFloat()
	switch {
	case roll < swirlChance:
		// ring of strikes swirling around the player
		for i := range 8 {
			ang := float64(i) / 8 * 2 * math.Pi
			at := w.Player.Pos.Add(vecFromAngle(ang).Mul(60 + w.randFloat()*30))
			w.thunderStrike(at, strikeDmg)
		}
	case roll < 0.5:
		at := w.Player.Pos.Add(w.Player.Vel.Mul(0.45))
		w.thunderStrike(at, strikeDmg)
	default:
		guns := []struct {
			Kind  ProjectileKind
			Speed float64
		}{
			{ProjPlasma, 240},
			{ProjBullet, 280},
			{ProjSpread, 220},
		}
		g := guns[e.AI.GunIdx%len(guns)]
		e.AI.GunIdx++
		count := []int{4, 5, 7}[phase]
		w.bossFan(e, count, 50, g.Speed, 9+wave/3, g.Kind)
	}

	if w.randFloat() < 0.22 {
		w.bossSummon(BehaviorRanged, w.MaxEnemies+2, e.Pos)
	}

	base := math.Max(0.9, 1.95-wave*0.015)
	e.AttackCD = base + w.randFloat()*0.3
}

// ============================================================================
// LASER
// ============================================================================

func (w *World) updateBossLaser(e *Enemy, dt float64) {
	phase := bossPhase(e)

	// wobbling hold so the beam origin keeps drifting
	desired := 240 + math.Sin(e.T*1.3+e.Seed)*30
	w.bossHold(e, dt, desired)

	if e.AttackCD > 0 {
		return
	}

	wave := float64(w.Wave)
	beamDmg := 16 + wave/3
	aim := w.Player.Pos.Sub(e.Pos).Norm()

	offsets := []float64{0}
	switch phase {
	case 1:
		offsets = []float64{-24, 0, 24}
	case 2:
		offsets = []float64{-34, 0, 34}
	}

	for _, off := range offsets {
		dir := aim.Rotate(off * math.Pi / 180)
		w.Lasers = append(w.Lasers, LaserBeam{
			Start:     e.Pos,
			End:       e.Pos.Add(dir.Mul(w.Cfg.RoomRadius * 2)),
			Damage:    beamDmg,
			Thickness: 12,
			Warn:      0.42,
			Life:      0.10,
			Owner:     OwnerEnemy,
			Color:     [3]uint8{255, 80, 80},
		})
	}

	// mix in a shotgun burst now and then
	if w.randFloat() < 0.30 {
		w.bossFan(e, 5, 40, 230, 8+wave/3, ProjSpread)
	}

	if w.randFloat() < 0.15 {
		w.bossSummon(BehaviorChaser, w.MaxEnemies+2, e.Pos)
	}

	e.AttackCD = math.Max(0.5, 1.15-wave*0.015)
}

// ============================================================================
// TRAPMASTER
// ============================================================================

func (w *World) updateBossTrapmaster(e *Enemy, dt float64) {
	phase := bossPhase(e)
	w.bossHold(e, dt, 260)

	if e.AttackCD > 0 {
		return
	}

	wave := float64(w.Wave)

	if e.AI.GunIdx%2 == 0 {
		// ring of traps boxing the player in
		for i := range 4 {
			ang := float64(i)/4*2*math.Pi + e.Seed
			pos := w.clampToRoom(w.Player.Pos.Add(vecFromAngle(ang).Mul(85)), 0.9)
			w.Traps = append(w.Traps, Trap{
				Pos:        pos,
				Radius:     30,
				Damage:     18,
				Life:       9,
				ArmedDelay: 0.55,
			})
		}
	} else {
		count := []int{5, 7, 9}[phase]
		w.bossFan(e, count, 60, 220, 8+wave/3, ProjBullet)
	}
	e.AI.GunIdx++

	if w.randFloat() < 0.20 {
		w.bossSummon(BehaviorEngineer, w.MaxEnemies+2, e.Pos)
	}

	e.AttackCD = math.Max(1.0, 2.2-wave*0.03)
}

// ============================================================================
// SWARM QUEEN
// ============================================================================

func (w *World) updateBossSwarmQueen(e *Enemy, dt float64) {
	phase := bossPhase(e)
	w.bossHold(e, dt, 260)

	if e.AttackCD > 0 {
		return
	}

	wave := float64(w.Wave)
	dmg := 8 + wave/3

	for range 2 {
		w.bossSummon(BehaviorSwarm, w.MaxEnemies+6, e.Pos)
	}

	switch phase {
	case 1:
		w.bossFan(e, 7, 95, 210, dmg, ProjPlasma)
	case 2:
		// expanding spiral ring plus a fan
		advance := 72.0
		if e.AI.Persona == PersonaTrickster {
			advance = 58
		}
		for i := range 10 {
			ang := (e.AI.SpiralDeg + float64(i)*36) * math.Pi / 180
			w.enemyShoot(e, vecFromAngle(ang), 190, dmg, 2.4, ProjPlasma)
		}
		e.AI.SpiralDeg = math.Mod(e.AI.SpiralDeg+advance, 360)
		w.bossFan(e, 7, 95, 210, dmg, ProjPlasma)
	default:
		aim := w.Player.Pos.Sub(e.Pos).Norm()
		for _, off := range []float64{-15, -5, 5, 15} {
			w.enemyShoot(e, aim.Rotate(off*math.Pi/180), 210, dmg, 2.4, ProjPlasma)
		}
	}

	e.AttackCD = math.Max(0.85, 2.0-wave*0.02)
}

// ============================================================================
// BRUTE
// ============================================================================

func (w *World) updateBossBrute(e *Enemy, dt float64) {
	phase := bossPhase(e)

	// two-second gait: a short burst of speed, then a heavy trudge
	dir := w.Player.Pos.Sub(e.Pos).Norm()
	if math.Mod(e.T, 2) < 0.55 {
		e.Pos = e.Pos.Add(dir.Mul(e.Speed * 2.6 * dt))
	} else {
		e.Pos = e.Pos.Add(dir.Mul(e.Speed * 0.6 * dt))
	}

	if e.AttackCD > 0 {
		return
	}

	wave := float64(w.Wave)
	at := w.Player.Pos

	// slam: visible telegraph first, then the damaging ring
	w.Traps = append(w.Traps, Trap{
		Pos:    at,
		Radius: 80,
		Life:   0.8,
		Warn:   true,
	})
	w.Traps = append(w.Traps, Trap{
		Pos:        at,
		Radius:     70,
		Damage:     26,
		Life:       0.9,
		ArmedDelay: 0.35,
	})

	if phase >= 1 {
		count := 7
		if phase >= 2 {
			count = 9
		}
		w.bossFan(e, count, 74, 215, 8+wave/3, ProjSpread)
	}

	e.AttackCD = math.Max(0.95, 2.0-wave*0.02)
}

package world

import "math"

// updateEnemy advances one enemy by dt. Tags without a handler idle in
// place, so a stale or modded archetype can never crash a run.
func (w *World) updateEnemy(e *Enemy, dt float64, hints map[int]steerHint) {
	e.T += dt
	if e.HitT > 0 {
		e.HitT = math.Max(0, e.HitT-dt)
	}
	if e.AttackCD > 0 {
		e.AttackCD -= dt
	}

	h := hints[e.ID]

	switch e.Behavior {
	case BehaviorChaser:
		w.updateChaser(e, dt, h)
	case BehaviorRanged:
		w.updateRanged(e, dt, h)
	case BehaviorSwarm:
		w.updateSwarm(e, dt, h)
	case BehaviorCharger:
		w.updateCharger(e, dt)
	case BehaviorTank:
		w.updateTank(e, dt, h)
	case BehaviorSpitter:
		w.updateSpitter(e, dt, h)
	case BehaviorFlyer:
		w.updateFlyer(e, dt)
	case BehaviorEngineer:
		w.updateEngineer(e, dt, h)
	case BehaviorBomber:
		w.updateBomber(e, dt, h)
	case BossThunder:
		w.updateBossThunder(e, dt)
	case BossLaser, BossAbyssGaze:
		w.updateBossLaser(e, dt)
	case BossTrapmaster:
		w.updateBossTrapmaster(e, dt)
	case BossSwarmQueen, BossWombCore:
		w.updateBossSwarmQueen(e, dt)
	case BossBrute:
		w.updateBossBrute(e, dt)
	}
}

// ============================================================================
// SHARED HELPERS
// ============================================================================

func (w *World) enemyShoot(e *Enemy, dir Vec2, speed, damage, life float64, kind ProjectileKind) {
	w.Projectiles = append(w.Projectiles, Projectile{
		Pos:    e.Pos.Add(dir.Mul(e.R)),
		Vel:    dir.Mul(speed),
		Damage: damage,
		Life:   life,
		Owner:  OwnerEnemy,
		Kind:   kind,
	})
}

// leadDir aims at where the player will be, scaled back so shots stay
// dodgeable.
func (w *World) leadDir(from Vec2, projSpeed, leadMult float64) Vec2 {
	to := w.Player.Pos.Sub(from)
	t := to.Len() / math.Max(projSpeed, 1)
	aim := w.Player.Pos.Add(w.Player.Vel.Mul(t * leadMult))
	return aim.Sub(from).Norm()
}

// bandMove keeps an enemy inside a distance band around the player and
// strafes sideways while it holds position.
func (w *World) bandMove(e *Enemy, dt, lo, hi, strafeScale float64, h steerHint) {
	to := w.Player.Pos.Sub(e.Pos)
	d := to.Len()
	dir := to.Norm()

	var move Vec2
	switch {
	case d > hi:
		move = dir
	case d < lo:
		move = dir.Mul(-1)
	default:
		move = dir.Perp().Mul(e.AI.StrafeSign * strafeScale)
	}

	move = move.Add(h.Sep).Norm()
	e.Pos = e.Pos.Add(move.Mul(e.Speed * dt))
}

func (w *World) enemyCooldown(e *Enemy, base, jitter float64) {
	e.AttackCD = (base + w.randFloat()*jitter) / e.AttackMult
}

// ============================================================================
// BASIC ARCHETYPES
// ============================================================================

func (w *World) updateChaser(e *Enemy, dt float64, h steerHint) {
	p := w.Player

	// mid-lunge: hold the locked heading at burst speed
	if e.AI.StateTimer > 0 {
		e.AI.StateTimer -= dt
		move := e.AI.LockDir.Add(h.Dodge.Mul(0.6)).Norm()
		e.Pos = e.Pos.Add(move.Mul(e.Speed * 2.3 * dt))
		return
	}

	d := p.Pos.Sub(e.Pos).Len()
	lead := clamp(d/math.Max(e.Speed, 1), 0, 0.6)
	target := p.Pos.Add(p.Vel.Mul(lead))
	dir := target.Sub(e.Pos).Norm()

	if e.AttackCD <= 0 && d > 60 && d < 300 {
		e.AI.LockDir = dir
		e.AI.StateTimer = 0.25
		e.AttackCD = w.randRange(1.4, 2.0)
		return
	}

	zig := dir.Perp().Mul(0.22 * math.Sin(e.T*2.6+e.Seed))
	move := dir.Add(zig).Add(h.Sep.Mul(1.1)).Add(h.Dodge).Norm()
	e.Pos = e.Pos.Add(move.Mul(e.Speed * dt))
}

func (w *World) updateRanged(e *Enemy, dt float64, h steerHint) {
	d := w.Player.Pos.Sub(e.Pos).Len()

	// while reloading, lean toward cover behind the nearest obstacle
	if e.AttackCD > 0.5 {
		if ci := w.nearestObstacle(e.Pos, 160); ci >= 0 {
			o := w.Obstacles[ci]
			spot := o.Pos.Add(o.Pos.Sub(w.Player.Pos).Norm().Mul(o.Radius + 20))
			dir := spot.Sub(e.Pos).Norm().Add(h.Sep).Norm()
			e.Pos = e.Pos.Add(dir.Mul(e.Speed * 0.8 * dt))
		} else {
			w.bandMove(e, dt, 140, 220, 0.4, h)
		}
	} else {
		w.bandMove(e, dt, 140, 220, 0.4, h)
	}

	if e.AttackCD <= 0 && d < 320 {
		speed := 235 + float64(w.Wave)*3
		dir := w.leadDir(e.Pos, speed, 0.75)
		w.enemyShoot(e, dir, speed, 8+float64(w.Wave)/2, 2.6, ProjBullet)
		w.enemyCooldown(e, 1.15, 0.35)
	}
}

func (w *World) updateTank(e *Enemy, dt float64, h steerHint) {
	to := w.Player.Pos.Sub(e.Pos)
	d := to.Len()
	if d > 100 {
		// brace briefly, then push forward in a short burst
		cycle := 2.0 + 0.7*math.Mod(e.Seed, 1)
		gait := 1.0
		switch phase := math.Mod(e.T+e.Seed, cycle); {
		case phase < 0.45:
			gait = 0.4
		case phase < 1.1:
			gait = 1.9
		}
		dir := to.Norm().Add(h.Sep).Norm()
		e.Pos = e.Pos.Add(dir.Mul(e.Speed * gait * dt))
	}
	if e.AttackCD <= 0 && d < 150 {
		dir := w.leadDir(e.Pos, 185, 0.6)
		w.enemyShoot(e, dir, 185, 12, 2.2, ProjMissile)
		w.enemyCooldown(e, 1.9, 0.3)
	}
}

func (w *World) updateSpitter(e *Enemy, dt float64, h steerHint) {
	d := w.Player.Pos.Sub(e.Pos).Len()
	w.bandMove(e, dt, 120, 200, 0.6, h)

	if e.AttackCD <= 0 && d < 280 {
		base := w.leadDir(e.Pos, 200, 0.6)
		offs := []float64{-30, 0, 30}
		if e.AI.GunIdx%2 == 1 {
			offs = []float64{-45, -15, 15, 45}
		}
		for _, off := range offs {
			w.enemyShoot(e, base.Rotate(off*math.Pi/180), 200, 6, 2.0, ProjSpread)
		}
		e.AI.GunIdx++
		e.AI.StrafeSign = -e.AI.StrafeSign
		w.enemyCooldown(e, 1.55, 0.35)
	}
}

func (w *World) updateFlyer(e *Enemy, dt float64) {
	switch e.AI.Phase {
	case phaseDashing:
		dir := e.AI.LockTarget.Sub(e.Pos)
		if dir.Len() < 20 {
			e.AI.Phase = phaseCircling
			e.AI.StateTimer = 2.0 + w.randFloat()
			return
		}
		e.Pos = e.Pos.Add(dir.Norm().Mul(e.Speed * 4.0 * dt))

	default: // circling
		e.AI.StateTimer -= dt
		to := w.Player.Pos.Sub(e.Pos)
		d := to.Len()
		tangent := to.Norm().Perp().Mul(e.AI.StrafeSign)
		radial := to.Norm().Mul(clamp((d-150)/60, -1, 1))
		move := tangent.Add(radial).Norm()
		e.Pos = e.Pos.Add(move.Mul(e.Speed * dt))

		if e.AI.StateTimer <= 0 {
			e.AI.Phase = phaseDashing
			e.AI.LockTarget = w.Player.Pos
		}
	}
}

func (w *World) updateCharger(e *Enemy, dt float64) {
	const chargeMult = 3.0

	switch e.AI.Phase {
	case phaseWindup:
		// frozen in place, telegraphing
		e.AI.StateTimer -= dt
		if e.AI.StateTimer <= 0 {
			d := w.Player.Pos.Sub(e.Pos).Len()
			predT := d / (e.Speed * chargeMult) * 0.5
			target := w.Player.Pos.Add(w.Player.Vel.Mul(predT))
			e.AI.LockTarget = target
			e.AI.LockDir = target.Sub(e.Pos).Norm()
			e.Vel = e.AI.LockDir.Mul(e.Speed * chargeMult)
			e.AI.Phase = phaseCharging
		}

	case phaseCharging:
		e.Pos = e.Pos.Add(e.Vel.Mul(dt))
		rem := e.AI.LockTarget.Sub(e.Pos)
		if rem.Len() < 30 || rem.Dot(e.AI.LockDir) < 0 {
			e.AI.Phase = phaseRecover
			e.AI.StateTimer = 1.0
		}

	case phaseRecover:
		e.AI.StateTimer -= dt
		e.Pos = e.Pos.Add(e.Vel.Mul(dt))
		e.Vel = e.Vel.Mul(math.Max(0, 1-4*dt))
		if e.AI.StateTimer <= 0 {
			e.AI.Phase = phaseApproach
		}

	default: // approach until close enough to wind up
		to := w.Player.Pos.Sub(e.Pos)
		if to.Len() < 200 {
			e.AI.Phase = phaseWindup
			e.AI.StateTimer = 0.5
			return
		}
		e.Pos = e.Pos.Add(to.Norm().Mul(e.Speed * dt))
	}
}

func (w *World) updateEngineer(e *Enemy, dt float64, h steerHint) {
	w.bandMove(e, dt, 180, 260, 0.5, h)

	if e.AttackCD <= 0 && w.activeTrapCount() < w.Cfg.MaxActiveConstructions {
		jitter := Vec2{
			X: (w.randFloat()*2 - 1) * 24,
			Y: (w.randFloat()*2 - 1) * 24,
		}
		pos := w.Player.Pos.Add(w.Player.Vel.Mul(0.65)).Add(jitter)
		pos = w.clampToRoom(pos, 0.86)
		w.Traps = append(w.Traps, Trap{
			Pos:        pos,
			Radius:     28,
			Damage:     16,
			Life:       10,
			ArmedDelay: 0.55,
		})
		w.enemyCooldown(e, 2.9, 0.6)
	}
}

func (w *World) updateBomber(e *Enemy, dt float64, h steerHint) {
	d := w.Player.Pos.Sub(e.Pos).Len()
	w.bandMove(e, dt, 130, 250, 0.5, h)

	if e.AttackCD <= 0 && d < 340 {
		speed := 115 + float64(w.Wave)*1.8
		dir := w.leadDir(e.Pos, speed, 0.95)
		w.Projectiles = append(w.Projectiles, Projectile{
			Pos:    e.Pos.Add(dir.Mul(e.R)),
			Vel:    dir.Mul(speed),
			Damage: 14 + float64(w.Wave)/3,
			Life:   1.1 + w.randFloat()*0.35, // fuse
			Owner:  OwnerEnemy,
			Kind:   ProjBomb,
		})
		w.enemyCooldown(e, 2.2, 0.5)
	}
}

// ============================================================================
// SWARM SQUAD
// ============================================================================

func (w *World) updateSwarmBrain(dt float64, swarmCount int) {
	if swarmCount == 0 {
		return
	}
	b := &w.swarm
	b.OrbitPhase += dt * 0.9
	b.ModeTimer -= dt
	if b.ModeTimer > 0 {
		return
	}
	b.Mode = (b.Mode + 1) % 3
	switch b.Mode {
	case 1: // surge
		b.ModeTimer = 1.6
	case 2: // regroup
		b.ModeTimer = 1.2
	default: // encircle
		b.ModeTimer = 2.5 + w.randFloat()
	}
}

func (w *World) swarmRingRadius(n int) float64 {
	return math.Max(52, 126-math.Min(55, float64(n)*4.5))
}

func (w *World) updateSwarm(e *Enemy, dt float64, h steerHint) {
	n := 0
	var coh, ali Vec2
	near := 0
	for i := range w.Enemies {
		o := &w.Enemies[i]
		if o.Behavior != BehaviorSwarm {
			continue
		}
		n++
		if o.ID == e.ID || dist2(e.Pos, o.Pos) > 90*90 {
			continue
		}
		coh = coh.Add(o.Pos)
		ali = ali.Add(o.Vel)
		near++
	}
	ring := w.swarmRingRadius(n)
	ang := w.swarm.OrbitPhase + e.AI.SlotBias

	var target Vec2
	speedScale := 1.0
	switch w.swarm.Mode {
	case 1: // surge straight in
		target = w.Player.Pos
		speedScale = 1.25
	case 2: // regroup on a wider ring
		target = w.Player.Pos.Add(vecFromAngle(ang).Mul(ring + 70))
		speedScale = 0.9
	default: // encircle
		target = w.Player.Pos.Add(vecFromAngle(ang).Mul(ring))
	}

	move := target.Sub(e.Pos).Norm()
	if near > 0 {
		coh = coh.Mul(1 / float64(near)).Sub(e.Pos).Norm().Mul(0.25)
		ali = ali.Norm().Mul(0.2)
		move = move.Add(coh).Add(ali)
	}
	move = move.Add(h.Sep).Add(h.Dodge.Mul(1.3)).Norm()
	e.Vel = move.Mul(e.Speed * speedScale)
	e.Pos = e.Pos.Add(e.Vel.Mul(dt))
}

// ============================================================================
// SMALL QUERIES
// ============================================================================

func (w *World) nearestObstacle(p Vec2, maxDist float64) int {
	best := -1
	bestD2 := maxDist * maxDist
	for i := range w.Obstacles {
		d2 := dist2(p, w.Obstacles[i].Pos)
		if d2 < bestD2 {
			best = i
			bestD2 = d2
		}
	}
	return best
}

func (w *World) activeTrapCount() int {
	n := 0
	for i := range w.Traps {
		if !w.Traps[i].Warn {
			n++
		}
	}
	return n
}

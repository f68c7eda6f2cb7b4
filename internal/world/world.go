package world

import (
	"math"

	"arena-lab/internal/jobs"
	"arena-lab/internal/shared/input"
)

func NewWorld(seed int64) *World {
	return NewWorldWithDifficulty(seed, DifficultyNormal)
}

func NewWorldWithDifficulty(seed int64, d Difficulty) *World {
	w := &World{}
	w.initRun(seed, d)
	w.aiPool = newSteeringPool()
	return w
}

func (w *World) initRun(seed int64, d Difficulty) {
	cfg := DefaultConfig()
	mods := d.Mods()

	w.Cfg = cfg
	w.Difficulty = d
	w.Mods = mods
	w.MaxEnemies = mods.MaxEnemies

	w.Time = 0
	w.Wave = 1
	w.WaveActive = false
	w.WaveThreat = 0
	w.WaveCombo = ""
	w.LastWaveClear = 0
	w.GameOver = false
	w.Paused = false
	w.Shake = 0

	w.Player = Player{
		Pos:          Vec2{},
		AimDir:       Vec2{1, 0},
		HP:           cfg.PlayerMaxHP,
		MaxHP:        cfg.PlayerMaxHP,
		Speed:        cfg.PlayerSpeed,
		Damage:       cfg.PlayerDamage,
		FireRate:     cfg.PlayerFireRate,
		Weapon:       WeaponBasic,
		UltraCharges: 1,
		Dash:         DashState{Charges: cfg.DashCharges},
	}

	w.Enemies = w.Enemies[:0]
	w.Projectiles = w.Projectiles[:0]
	w.PowerUps = w.PowerUps[:0]
	w.Traps = w.Traps[:0]
	w.Lasers = w.Lasers[:0]
	w.Thunders = w.Thunders[:0]
	w.pendingEnemies = w.pendingEnemies[:0]
	w.inbox = w.inbox[:0]
	w.events = w.events[:0]

	w.Stats = Stats{}
	w.Score = newScoreState()
	w.rewards = RewardState{Mods: defaultRewardMods()}
	w.swarm = swarmBrain{ModeTimer: 2.5}

	w.layoutSegment = 0
	w.latePoolIdx = 0
	w.nextEnemyID = 1

	w.rngSeed = seed
	w.rng = nil
	w.rngCalls = 0
	w.ensureRNG()

	w.aiTick = 0
	if w.aiPendingRequests == nil {
		w.aiPendingRequests = make(map[uint64]jobs.SteeringRequest, 8)
	} else {
		clear(w.aiPendingRequests)
	}
	if w.aiReadyResults == nil {
		w.aiReadyResults = make(map[uint64]jobs.SteeringResult, 8)
	} else {
		clear(w.aiReadyResults)
	}

	w.regenObstacles(0)
}

// ResetRun starts a fresh run with the same seed, reusing the worker pool.
func (w *World) ResetRun(d Difficulty) {
	w.initRun(w.rngSeed, d)
}

func (w *World) Close() {
	if w.aiPool != nil {
		w.aiPool.Close()
		w.aiPool = nil
	}
}

func (w *World) Enqueue(m Msg) {
	w.inbox = append(w.inbox, m)
}

// ============================================================================
// MAIN STEP
// ============================================================================

// Update advances the simulation by one fixed step and returns the frame's
// events in occurrence order. The slice is reused across calls.
func (w *World) Update(dt float64, in input.Intent) []Event {
	w.events = w.events[:0]

	for _, m := range w.inbox {
		switch msg := m.(type) {
		case MsgRestart:
			if w.GameOver || w.Paused {
				w.ResetRun(msg.Difficulty)
			}
		case MsgTogglePause:
			if !w.GameOver {
				w.Paused = !w.Paused
			}
		}
	}
	w.inbox = w.inbox[:0]

	if w.GameOver || w.Paused {
		return w.events
	}

	// a single oversized step would let fast projectiles tunnel
	dt = clamp(dt, 0, w.Cfg.SimStepCap)
	w.Time += dt

	p := &w.Player
	if p.HurtTimer > 0 {
		p.HurtTimer = math.Max(0, p.HurtTimer-dt)
	}
	if p.Dash.Cooldown > 0 {
		p.Dash.Cooldown -= dt
		if p.Dash.Cooldown <= 0 && p.Dash.Charges < w.Cfg.DashCharges {
			p.Dash.Charges++
			if p.Dash.Charges < w.Cfg.DashCharges {
				p.Dash.Cooldown = w.Cfg.DashCooldown * w.Mods.DashCD
			}
		}
	}

	if !w.WaveActive && w.Time-w.LastWaveClear >= w.Cfg.WaveCooldown {
		w.spawnWave(w.Wave)
	}

	w.updateVortex(dt)
	w.reapDead()
	w.updateTraps(dt)
	w.updateThunders(dt)

	w.updatePlayer(dt, in)

	aim := Vec2{in.AimX, in.AimY}.Norm()
	if aim == (Vec2{}) {
		aim = p.AimDir
	}
	p.AimDir = aim

	if in.Ultra {
		w.tryUltra(aim)
	}
	if in.Firing {
		w.fireWeapon(aim)
	}

	w.updateEnemies(dt)
	w.updateProjectiles(dt)
	w.reapDead()
	w.updatePickups(dt)
	w.checkWaveClear()
	w.updateLasers(dt)
	w.reapDead()
	w.checkWaveClear()

	w.Shake = math.Max(0, w.Shake-dt*20)
	w.updateScore(dt)

	if w.Player.HP <= 0 && !w.GameOver {
		w.GameOver = true
		w.emit(Event{Kind: EventRunEnded, Wave: w.Wave})
	}

	return w.events
}

// ============================================================================
// PLAYER
// ============================================================================

func (w *World) updatePlayer(dt float64, in input.Intent) {
	p := &w.Player
	old := p.Pos

	move := Vec2{in.MoveX, in.MoveY}.Norm()

	if in.Dash && !p.Dash.Active && p.Dash.Charges > 0 {
		dir := move
		if dir == (Vec2{}) {
			dir = p.AimDir
		}
		p.Dash.Active = true
		p.Dash.Timer = w.Cfg.DashDuration
		p.Dash.Dir = dir
		p.Dash.Charges--
		if p.Dash.Cooldown <= 0 {
			p.Dash.Cooldown = w.Cfg.DashCooldown * w.Mods.DashCD
		}
	}

	if p.Dash.Active {
		p.Pos = p.Pos.Add(p.Dash.Dir.Mul(w.Cfg.DashSpeed * dt))
		p.Dash.Timer -= dt
		if p.Dash.Timer <= 0 {
			p.Dash.Active = false
		}
	} else if move != (Vec2{}) {
		speed := p.Speed + w.rewards.Mods.Speed
		p.Pos = p.Pos.Add(move.Mul(speed * dt))
	}

	p.Pos = w.clampToRoom(p.Pos, w.Cfg.PlayerBoundFactor)
	p.Pos = w.resolveCircleObstacles(p.Pos, w.Cfg.PlayerRadius)

	if dt > 0 {
		p.Vel = p.Pos.Sub(old).Mul(1 / dt)
	}
}

// damagePlayer routes every hit through the shield, the incoming-damage
// modifiers, and the post-hit grace window. Dashing grants full immunity.
func (w *World) damagePlayer(amount float64) {
	p := &w.Player
	if amount <= 0 || p.HurtTimer > 0 || p.Dash.Active || w.GameOver {
		return
	}

	amount *= w.Mods.Incoming * w.rewards.Mods.Incoming

	if p.Shield > 0 {
		absorbed := math.Min(p.Shield, amount)
		p.Shield -= absorbed
		amount -= absorbed
	}

	p.HP = math.Max(0, p.HP-amount)
	p.HurtTimer = w.Cfg.PlayerHurtCooldown
	w.Stats.DamageTaken += amount
	w.Shake = math.Max(w.Shake, 6)
	w.scorePlayerHit()
	w.emit(Event{Kind: EventPlayerHit, Amount: amount, Pos: p.Pos})
}

// ============================================================================
// ENEMIES
// ============================================================================

func (w *World) updateEnemies(dt float64) {
	hints := w.consumeSteeringForTick(w.aiTick)

	swarmCount := 0
	for i := range w.Enemies {
		if w.Enemies[i].Behavior == BehaviorSwarm {
			swarmCount++
		}
	}
	w.updateSwarmBrain(dt, swarmCount)

	// pending summons land after the loop, so the slice is stable here
	for i := range w.Enemies {
		e := &w.Enemies[i]
		w.updateEnemy(e, dt, hints)

		e.Pos = w.clampToRoom(e.Pos, w.Cfg.EnemyBoundFactor)
		e.Pos = w.resolveCircleObstacles(e.Pos, e.R)

		if e.HP > 0 && circlesOverlap(e.Pos, e.R, w.Player.Pos, w.Cfg.PlayerRadius) {
			w.damagePlayer(w.Cfg.ContactDamage)
			if !e.Behavior.IsBoss() {
				// body hit: a regular enemy is consumed by its own attack
				e.HP = 0
			}
		}
	}

	w.reapDead()

	w.Enemies = append(w.Enemies, w.pendingEnemies...)
	w.pendingEnemies = w.pendingEnemies[:0]

	w.aiTick++
	w.submitSteeringJob(w.aiTick)
}

func (w *World) damageEnemy(e *Enemy, amount float64) {
	if amount <= 0 || e.HP <= 0 {
		return
	}
	e.HP -= amount
	e.HitT = 0.1
	w.Stats.DamageDealt += amount
}

// reapDead removes every enemy at or below zero health and applies death
// effects in slice order.
func (w *World) reapDead() {
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if e.HP > 0 {
			kept = append(kept, e)
			continue
		}
		w.onEnemyKilled(e)
	}
	w.Enemies = kept
}

func (w *World) onEnemyKilled(e Enemy) {
	w.Stats.EnemiesKilled++
	w.scoreKill(e.Behavior)
	w.emit(Event{Kind: EventEnemyKilled, Behavior: e.Behavior, Pos: e.Pos})

	if e.Behavior == BehaviorTank {
		// death blast
		rr := w.Cfg.TankBlastRadius + w.Cfg.PlayerRadius
		if dist2(e.Pos, w.Player.Pos) <= rr*rr {
			w.damagePlayer(w.Cfg.TankBlastDamage)
		}
		w.Shake = math.Max(w.Shake, 4)
	}

	if e.Behavior.IsBoss() {
		w.dropBossLoot(e.Pos)
		w.Shake = math.Max(w.Shake, 10)
		return
	}
	w.maybeDropKillLoot(e.Pos)
}

// ============================================================================
// PROJECTILES
// ============================================================================

func (w *World) updateProjectiles(dt float64) {
	room := w.Cfg.RoomRadius
	kept := w.Projectiles[:0]

	for _, pr := range w.Projectiles {
		prev := pr.Pos
		pr.Pos = pr.Pos.Add(pr.Vel.Mul(dt))
		pr.Life -= dt
		r := projectileRadius(pr.Kind)

		if pr.Life <= 0 {
			if pr.Kind == ProjBomb {
				w.explodeBomb(pr.Pos, pr.Damage)
			}
			continue
		}

		if w.Cfg.ObstaclesBlockShots && w.segBlockedByObstacle(prev, pr.Pos) >= 0 {
			if pr.Kind == ProjBomb {
				w.explodeBomb(pr.Pos, pr.Damage)
			}
			continue
		}

		if pr.Owner == OwnerPlayer {
			if hit := w.firstEnemyOnSegment(prev, pr.Pos, r); hit >= 0 {
				w.damageEnemy(&w.Enemies[hit], pr.Damage)
				continue // a shot is consumed by its first target
			}
		} else if segHitsCircle(prev, pr.Pos, w.Player.Pos, w.Cfg.PlayerRadius+r) {
			if pr.Kind == ProjBomb {
				w.explodeBomb(pr.Pos, pr.Damage)
			} else {
				w.damagePlayer(pr.Damage)
			}
			continue
		}

		if pr.Pos.Len() > room*1.2 {
			continue
		}

		kept = append(kept, pr)
	}
	w.Projectiles = kept
}

func (w *World) firstEnemyOnSegment(from, to Vec2, projR float64) int {
	best := -1
	bestD2 := math.MaxFloat64
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.HP <= 0 {
			continue
		}
		if !segHitsCircle(from, to, e.Pos, e.R+projR) {
			continue
		}
		d2 := dist2(from, e.Pos)
		if d2 < bestD2 {
			best = i
			bestD2 = d2
		}
	}
	return best
}

func (w *World) explodeBomb(at Vec2, damage float64) {
	cfg := w.Cfg
	d := at.Sub(w.Player.Pos).Len()
	reach := cfg.BombBlastRadius + cfg.PlayerRadius
	if d <= reach {
		dmg := math.Max(cfg.BombBlastMinDmg, damage*(1-d/reach))
		w.damagePlayer(dmg)
	}
	w.Shake = math.Max(w.Shake, 5)
}

// ============================================================================
// PICKUPS
// ============================================================================

func (w *World) updatePickups(dt float64) {
	p := &w.Player
	magnetR := w.Cfg.MagnetRadius + w.rewards.Mods.Magnet

	kept := w.PowerUps[:0]
	for _, pu := range w.PowerUps {
		pickupR := w.Cfg.PickupRadius
		if pu.Kind == PowerWeapon || pu.Kind == PowerUltra {
			pickupR = w.Cfg.BigPickupRadius
		}

		d := pu.Pos.Sub(p.Pos).Len()
		if d <= pickupR+w.Cfg.PlayerRadius*0.5 {
			w.applyPowerUp(pu)
			w.emit(Event{Kind: EventPowerUpCollected, PowerUp: pu.Kind, Pos: pu.Pos})
			continue
		}
		if d < magnetR {
			pull := w.Cfg.MagnetPullBase + (magnetR-d)*2
			pu.Pos = pu.Pos.Add(p.Pos.Sub(pu.Pos).Norm().Mul(pull * dt))
		}
		kept = append(kept, pu)
	}
	w.PowerUps = kept
}

// ============================================================================
// WAVE PROGRESSION
// ============================================================================

func (w *World) checkWaveClear() {
	if !w.WaveActive || len(w.Enemies) > 0 || len(w.pendingEnemies) > 0 {
		return
	}

	cleared := w.Wave
	boss := isBossWave(cleared)

	w.WaveActive = false
	w.LastWaveClear = w.Time
	w.Stats.WavesCleared++

	w.advanceTempRewards()
	w.scoreWaveClear(cleared, boss)
	w.emit(Event{Kind: EventWaveCleared, Wave: cleared, Boss: boss})

	if boss {
		w.grantBossPermReward()
		w.grantBossTempReward()
	}

	if w.randFloat() < 0.33*w.Mods.Powerup {
		off := vecFromAngle(w.randFloat() * 2 * math.Pi).Mul(60 + w.randFloat()*60)
		w.dropPowerUp(w.clampToRoom(w.Player.Pos.Add(off), 0.85))
	}

	w.Wave++

	// the arena reshuffles between boss tiers
	if cleared%5 == 0 {
		w.layoutSegment++
		w.regenObstacles(w.layoutSegment)
	}
}

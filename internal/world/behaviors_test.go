package world

import (
	"math"
	"testing"
)

func newTestEnemy(w *World, b Behavior, pos Vec2) *Enemy {
	w.Enemies = append(w.Enemies, Enemy{
		ID:         w.nextEnemyID,
		Pos:        pos,
		HP:         100,
		MaxHP:      100,
		Speed:      100,
		R:          behaviorRadius(b),
		Behavior:   b,
		AttackMult: 1,
		AI:         aiState{StrafeSign: 1},
	})
	w.nextEnemyID++
	return &w.Enemies[len(w.Enemies)-1]
}

func TestUnknownBehaviorTagIsNoOp(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	e := newTestEnemy(w, Behavior(99), Vec2{200, 0})
	before := e.Pos

	w.updateEnemy(e, testStep, nil)

	if e.Pos != before {
		t.Fatalf("unhandled behavior tag moved: %+v -> %+v", before, e.Pos)
	}
}

func TestChaserClosesOnPlayer(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	e := newTestEnemy(w, BehaviorChaser, Vec2{250, 0})
	before := e.Pos.Len()

	for range 30 {
		w.updateEnemy(e, testStep, nil)
	}

	if e.Pos.Len() >= before {
		t.Fatalf("chaser should close distance: %.2f -> %.2f", before, e.Pos.Len())
	}
}

func TestChargerStateMachine(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	e := newTestEnemy(w, BehaviorCharger, Vec2{300, 0})

	// approaches until inside windup range
	for e.AI.Phase == phaseApproach {
		w.updateEnemy(e, testStep, nil)
		if e.T > 10 {
			t.Fatal("charger never reached windup range")
		}
	}
	if e.AI.Phase != phaseWindup {
		t.Fatalf("expected windup, got %d", e.AI.Phase)
	}
	if e.Pos.Len() >= 200+1e-6 {
		t.Fatalf("windup should start inside 200 units, at %.2f", e.Pos.Len())
	}

	// frozen while telegraphing
	frozen := e.Pos
	w.updateEnemy(e, testStep, nil)
	if e.AI.Phase == phaseWindup && e.Pos != frozen {
		t.Fatal("charger must not move during windup")
	}

	for e.AI.Phase == phaseWindup {
		w.updateEnemy(e, testStep, nil)
	}
	if e.AI.Phase != phaseCharging {
		t.Fatalf("expected charging after windup, got %d", e.AI.Phase)
	}
	if v := e.Vel.Len(); !approxEqual(v, e.Speed*3.0) {
		t.Fatalf("charge speed should be 3x base: got %.2f want %.2f", v, e.Speed*3.0)
	}

	for e.AI.Phase == phaseCharging {
		w.updateEnemy(e, testStep, nil)
		if e.T > 20 {
			t.Fatal("charge never resolved")
		}
	}
	if e.AI.Phase != phaseRecover {
		t.Fatalf("expected recover after charge, got %d", e.AI.Phase)
	}

	for e.AI.Phase == phaseRecover {
		w.updateEnemy(e, testStep, nil)
	}
	if e.AI.Phase != phaseApproach {
		t.Fatalf("expected approach after recover, got %d", e.AI.Phase)
	}
}

func TestFlyerDashLocksPosition(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	e := newTestEnemy(w, BehaviorFlyer, Vec2{150, 0})
	e.AI.Phase = phaseCircling
	e.AI.StateTimer = 0.01

	w.updateEnemy(e, testStep, nil)
	if e.AI.Phase != phaseDashing {
		t.Fatalf("expected dash after circling timer, got %d", e.AI.Phase)
	}
	lock := e.AI.LockTarget

	// the dash keeps homing on the locked point, not the live player
	w.Player.Pos = Vec2{-300, -300}
	for range 200 {
		w.updateEnemy(e, testStep, nil)
		if e.AI.Phase != phaseDashing {
			break
		}
	}
	if e.AI.Phase != phaseCircling {
		t.Fatal("dash should end back in circling")
	}
	if e.Pos.Sub(lock).Len() > 40 {
		t.Fatalf("dash should end near the locked point, ended %.1f away", e.Pos.Sub(lock).Len())
	}
}

func TestSwarmRingRadiusShrinksWithSquadSize(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	prev := math.Inf(1)
	for n := 1; n <= 20; n++ {
		r := w.swarmRingRadius(n)
		if r > prev {
			t.Fatalf("ring radius grew with squad size at n=%d: %.2f -> %.2f", n, prev, r)
		}
		if r < 52 {
			t.Fatalf("ring radius below floor at n=%d: %.2f", n, r)
		}
		prev = r
	}
}

func TestEngineerRespectsConstructionCap(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	for range w.Cfg.MaxActiveConstructions {
		w.Traps = append(w.Traps, Trap{Radius: 28, Damage: 16, Life: 10})
	}

	e := newTestEnemy(w, BehaviorEngineer, Vec2{220, 0})
	e.AttackCD = 0

	before := len(w.Traps)
	w.updateEnemy(e, testStep, nil)

	if len(w.Traps) != before {
		t.Fatalf("engineer placed a trap past the cap: %d -> %d", before, len(w.Traps))
	}
}

func TestRangedFiresInsideRange(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	e := newTestEnemy(w, BehaviorRanged, Vec2{200, 0})
	e.AttackCD = 0

	w.updateEnemy(e, testStep, nil)

	if len(w.Projectiles) != 1 {
		t.Fatalf("ranged should fire one shot, got %d", len(w.Projectiles))
	}
	pr := w.Projectiles[0]
	if pr.Owner != OwnerEnemy {
		t.Fatal("shot should belong to the enemy side")
	}
	if pr.Vel.X >= 0 {
		t.Fatalf("shot should head toward the player, vel=%+v", pr.Vel)
	}
	if e.AttackCD <= 0 {
		t.Fatal("firing should start the cooldown")
	}
}

func TestBossPhaseFollowsHealth(t *testing.T) {
	e := &Enemy{HP: 100, MaxHP: 100}
	if p := bossPhase(e); p != 0 {
		t.Fatalf("full health should be phase 0, got %d", p)
	}
	e.HP = 66
	if p := bossPhase(e); p != 1 {
		t.Fatalf("two thirds health should be phase 1, got %d", p)
	}
	e.HP = 33
	if p := bossPhase(e); p != 2 {
		t.Fatalf("one third health should be phase 2, got %d", p)
	}
	e.HP = 1
	if p := bossPhase(e); p != 2 {
		t.Fatalf("phase must not exceed 2, got %d", p)
	}
}

func TestBossSummonHonorsCap(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	for range w.MaxEnemies + 2 {
		newTestEnemy(w, BehaviorChaser, Vec2{300, 0})
	}

	spawned := w.Stats.EnemiesSpawned
	w.bossSummon(BehaviorRanged, w.MaxEnemies+2, Vec2{})
	if w.Stats.EnemiesSpawned != spawned {
		t.Fatal("summon past the escort cap should be refused")
	}
}

func TestChaserLungeIsCooldownGated(t *testing.T) {
	w := NewWorld(5)
	defer w.Close()

	e := newTestEnemy(w, BehaviorChaser, Vec2{250, 0})

	w.updateEnemy(e, testStep, nil)
	if e.AI.StateTimer <= 0 {
		t.Fatal("chaser off cooldown should open with a lunge")
	}
	if e.AttackCD < 1.4-testStep || e.AttackCD > 2.0 {
		t.Fatalf("lunge cooldown out of range: %.2f", e.AttackCD)
	}

	before := e.Pos
	w.updateEnemy(e, testStep, nil)
	moved := e.Pos.Sub(before).Len()
	if moved <= e.Speed*2*testStep {
		t.Fatalf("lunge should clearly outpace the base speed, moved %.3f", moved)
	}
}

func TestTankBracesThenPushes(t *testing.T) {
	w := NewWorld(2)
	defer w.Close()

	e := newTestEnemy(w, BehaviorTank, Vec2{400, 0})
	e.Seed = 0

	start := e.Pos
	for range 24 {
		w.updateEnemy(e, testStep, nil)
	}
	braced := start.Sub(e.Pos).Len()

	mid := e.Pos
	for range 24 {
		w.updateEnemy(e, testStep, nil)
	}
	pushed := mid.Sub(e.Pos).Len()

	if pushed <= braced*2 {
		t.Fatalf("push burst should clearly outrun the brace: brace %.2f push %.2f", braced, pushed)
	}
}

func TestSpitterAlternatesVolleys(t *testing.T) {
	w := NewWorld(3)
	defer w.Close()

	e := newTestEnemy(w, BehaviorSpitter, Vec2{180, 0})

	w.updateEnemy(e, testStep, nil)
	if len(w.Projectiles) != 3 {
		t.Fatalf("first volley should be 3 shots, got %d", len(w.Projectiles))
	}
	if e.AI.StrafeSign != -1 {
		t.Fatal("strafe direction should flip after a volley")
	}

	w.Projectiles = w.Projectiles[:0]
	e.AttackCD = 0
	w.updateEnemy(e, testStep, nil)
	if len(w.Projectiles) != 4 {
		t.Fatalf("second volley should be 4 shots, got %d", len(w.Projectiles))
	}
	if e.AI.StrafeSign != 1 {
		t.Fatal("strafe direction should flip back on the next volley")
	}
}

func TestSwarmNeighborsBiasCourse(t *testing.T) {
	w := NewWorld(9)
	defer w.Close()

	newTestEnemy(w, BehaviorSwarm, Vec2{200, 0})
	newTestEnemy(w, BehaviorSwarm, Vec2{200, 60})
	e := &w.Enemies[0]
	e.AI.SlotBias = 0

	w.updateEnemy(e, testStep, nil)

	// ring target sits between it and the player, the packmate pulls it up
	if e.Vel.X >= 0 {
		t.Fatalf("swarm unit should still head for the orbit ring, vel %+v", e.Vel)
	}
	if e.Vel.Y <= 0 {
		t.Fatalf("cohesion should pull toward the nearby packmate, vel %+v", e.Vel)
	}
}

package world

import (
	"fmt"
	"math"
	"strings"
)

// ============================================================================
// WAVE PLANNING
// ============================================================================

type spawnClass struct {
	Name       string
	Members    []Behavior
	UnlockWave int
	Weight     float64
}

var spawnClasses = []spawnClass{
	{Name: "frontline", Members: []Behavior{BehaviorChaser, BehaviorCharger}, UnlockWave: 1, Weight: 3.0},
	{Name: "gunline", Members: []Behavior{BehaviorRanged}, UnlockWave: 1, Weight: 2.2},
	{Name: "explosive", Members: []Behavior{BehaviorBomber}, UnlockWave: 2, Weight: 1.6},
	{Name: "swarmers", Members: []Behavior{BehaviorSwarm}, UnlockWave: 3, Weight: 1.7},
	{Name: "control", Members: []Behavior{BehaviorEngineer}, UnlockWave: 4, Weight: 1.2},
	{Name: "bruisers", Members: []Behavior{BehaviorTank}, UnlockWave: 5, Weight: 1.0},
	{Name: "pressure", Members: []Behavior{BehaviorSpitter, BehaviorFlyer}, UnlockWave: 7, Weight: 1.3},
}

var memberWeights = map[Behavior]float64{
	BehaviorCharger: 0.9,
	BehaviorFlyer:   0.8,
}

func memberWeight(b Behavior) float64 {
	if mw, ok := memberWeights[b]; ok {
		return mw
	}
	return 1.0
}

type SpawnEntry struct {
	Behavior Behavior
	Count    int
}

func isBossWave(wave int) bool { return wave%5 == 0 }

// PlanWave builds the spawn list for a wave. Boss waves field exactly the
// boss; its escorts arrive through its own summons.
func (w *World) PlanWave(wave int) []SpawnEntry {
	if isBossWave(wave) {
		return []SpawnEntry{{Behavior: w.rollBoss(wave), Count: 1}}
	}

	total := int(math.Min(float64(w.MaxEnemies), (4+float64(wave)*1.4)*w.Mods.Spawn))
	if total < 3 {
		total = 3
	}

	chosen := w.chooseWaveClasses(wave)
	if len(chosen) == 0 {
		return []SpawnEntry{{Behavior: BehaviorChaser, Count: total}}
	}

	// per-class ceiling keeps one class from owning the whole wave
	classCap := int(math.Round(float64(total) * 0.6))
	if classCap < 1 {
		classCap = 1
	}

	counts := make(map[Behavior]int, len(chosen))
	perClass := make([]int, len(chosen))
	order := make([]Behavior, 0, len(chosen))

	for range total {
		ci := w.rollClassSlot(chosen, perClass, classCap)
		perClass[ci]++
		b := w.rollClassMember(chosen[ci])
		if counts[b] == 0 {
			order = append(order, b)
		}
		counts[b]++
	}

	out := make([]SpawnEntry, 0, len(order))
	for _, b := range order {
		out = append(out, SpawnEntry{Behavior: b, Count: counts[b]})
	}
	return out
}

func (w *World) chooseWaveClasses(wave int) []spawnClass {
	unlocked := make([]spawnClass, 0, len(spawnClasses))
	for _, c := range spawnClasses {
		if wave >= c.UnlockWave {
			unlocked = append(unlocked, c)
		}
	}

	target := 1 + min(2, (wave-1)/3)
	if target > len(unlocked) {
		target = len(unlocked)
	}

	chosen := make([]spawnClass, 0, target)
	for len(chosen) < target && len(unlocked) > 0 {
		totalW := 0.0
		for _, c := range unlocked {
			totalW += c.Weight
		}
		roll := w.randFloat() * totalW
		for i, c := range unlocked {
			roll -= c.Weight
			if roll < 0 {
				chosen = append(chosen, c)
				unlocked = append(unlocked[:i], unlocked[i+1:]...)
				break
			}
		}
	}
	return chosen
}

func (w *World) rollClassSlot(chosen []spawnClass, perClass []int, classCap int) int {
	totalW := 0.0
	for i, c := range chosen {
		if perClass[i] < classCap {
			totalW += c.Weight
		}
	}
	if totalW <= 0 {
		return 0
	}
	roll := w.randFloat() * totalW
	for i, c := range chosen {
		if perClass[i] >= classCap {
			continue
		}
		roll -= c.Weight
		if roll < 0 {
			return i
		}
	}
	return 0
}

func (w *World) rollClassMember(c spawnClass) Behavior {
	if len(c.Members) == 1 {
		return c.Members[0]
	}
	totalW := 0.0
	for _, b := range c.Members {
		totalW += memberWeight(b)
	}
	roll := w.randFloat() * totalW
	for _, b := range c.Members {
		roll -= memberWeight(b)
		if roll < 0 {
			return b
		}
	}
	return c.Members[len(c.Members)-1]
}

// ============================================================================
// BOSS ROTATION
// ============================================================================

var bossIntroOrder = []Behavior{BossThunder, BossLaser, BossTrapmaster, BossSwarmQueen, BossBrute}

var bossLatePool = []Behavior{BossAbyssGaze, BossWombCore}

// rollBoss introduces one new boss per five-wave tier, then mixes reprises
// of the harder intros with the late pool.
func (w *World) rollBoss(wave int) Behavior {
	tier := wave / 5
	idx := tier - 1
	if idx >= 0 && idx < len(bossIntroOrder) {
		return bossIntroOrder[idx]
	}

	if w.randFloat() < 0.28 {
		legacy := bossIntroOrder[2:]
		return legacy[w.randIntn(len(legacy))]
	}

	b := bossLatePool[w.latePoolIdx%len(bossLatePool)]
	w.latePoolIdx++
	return b
}

// ============================================================================
// SPAWNING
// ============================================================================

func (w *World) spawnWave(wave int) {
	plan := w.PlanWave(wave)
	w.WaveThreat, w.WaveCombo = describeWave(plan)
	for _, entry := range plan {
		for range entry.Count {
			w.spawnEnemy(entry.Behavior, w.rollSpawnPos())
		}
	}
	w.WaveActive = true
}

// describeWave totals the threat of a spawn plan and formats a short readout
// for the HUD. Neither feeds back into gameplay.
func describeWave(plan []SpawnEntry) (float64, string) {
	total := 0.0
	var sb strings.Builder
	for i, entry := range plan {
		total += threatValue[entry.Behavior] * float64(entry.Count)
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%dx %s", entry.Count, entry.Behavior)
	}
	return total, sb.String()
}

// rollSpawnPos picks a point near the arena edge, re-rolling a few times to
// keep it off the player's head. Obstacle overlap self-corrects next step.
func (w *World) rollSpawnPos() Vec2 {
	room := w.Cfg.RoomRadius
	var pos Vec2
	for range 8 {
		ang := w.randFloat() * 2 * math.Pi
		d := room*0.82 + w.randFloat()*room*0.12
		pos = vecFromAngle(ang).Mul(d)
		if pos.Sub(w.Player.Pos).Len() >= 180 {
			break
		}
	}
	return pos
}

func (w *World) spawnEnemy(b Behavior, pos Vec2) {
	e := Enemy{
		ID:       w.nextEnemyID,
		Pos:      pos,
		Behavior: b,
		R:        behaviorRadius(b),
		Seed:     w.randFloat() * 2 * math.Pi,
	}
	w.nextEnemyID++

	wave := w.Wave
	if bp, ok := bossProfiles[b]; ok {
		hp := (bp.BaseHP + bp.HPPerWave*float64(wave)) * bossHPGrowth(wave) * w.Mods.BossHP
		e.HP = hp
		e.MaxHP = hp
		e.Speed = bp.Speed * w.Mods.Speed
		e.AI.Persona = Persona(w.randIntn(3))
	} else {
		sp, ok := statProfiles[b]
		if !ok {
			sp = statProfile{HPMult: 1, SpeedMult: 1, Radius: 12}
		}
		hp := math.Max(sp.MinHP, enemyBaseHP(wave)*sp.HPMult*w.Mods.HP)
		e.HP = hp
		e.MaxHP = hp
		e.Speed = enemyBaseSpeed(wave) * sp.SpeedMult * w.Mods.Speed
	}

	// stagger opening attacks; later waves press harder
	e.AttackMult = clamp(1+0.015*float64(wave), 0.6, 1.6)
	lo, hi := attackCooldownRange(b)
	e.AttackCD = w.randRange(lo, hi) / e.AttackMult

	e.AI.SlotBias = w.randFloat() * 2 * math.Pi
	e.AI.StrafeSign = w.randSign()
	if b == BehaviorFlyer {
		e.AI.Phase = phaseCircling
		e.AI.StateTimer = 2.0 + w.randFloat()
	}

	w.pendingEnemies = append(w.pendingEnemies, e)
	w.Stats.EnemiesSpawned++
	w.emit(Event{Kind: EventEnemySpawned, Behavior: b, Pos: pos})
}

// activeHostiles counts live plus queued enemies, bosses excluded; summon
// caps use this so escorts cannot flood the arena.
func (w *World) activeHostiles() int {
	n := 0
	for i := range w.Enemies {
		if !w.Enemies[i].Behavior.IsBoss() {
			n++
		}
	}
	for i := range w.pendingEnemies {
		if !w.pendingEnemies[i].Behavior.IsBoss() {
			n++
		}
	}
	return n
}

package world

import (
	"math"
	"slices"
)

type PowerUpKind int

const (
	PowerHeal PowerUpKind = iota
	PowerDamage
	PowerSpeed
	PowerFireRate
	PowerShield
	PowerLaser
	PowerVortex
	PowerWeapon
	PowerUltra
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerHeal:
		return "heal"
	case PowerDamage:
		return "damage"
	case PowerSpeed:
		return "speed"
	case PowerFireRate:
		return "fire_rate"
	case PowerShield:
		return "shield"
	case PowerLaser:
		return "laser"
	case PowerVortex:
		return "vortex"
	case PowerWeapon:
		return "weapon"
	case PowerUltra:
		return "ultra"
	default:
		return "unknown"
	}
}

// ============================================================================
// TEMP / PERM REWARDS
// ============================================================================

type RewardCategory int

const (
	CatDamage RewardCategory = iota
	CatSpeed
	CatFireRate
	CatMagnet
	CatIncoming
	CatUltraCD
)

// TempReward is one stacked category of wave-limited bonuses. Amounts add
// up across pickups; the duration refreshes to the longest grant.
type TempReward struct {
	Cat       RewardCategory
	Amount    float64
	WavesLeft int
}

// RewardMods is the folded view of every active reward, recomputed whenever
// the stack changes. Multiplier fields default to 1.
type RewardMods struct {
	Damage   float64
	Speed    float64
	Magnet   float64
	Incoming float64
	UltraCD  float64
	FireRate float64
}

type RewardState struct {
	Temp []TempReward
	Perm []string
	Mods RewardMods

	LastUltraWave   int
	KillsSinceUltra int
}

func defaultRewardMods() RewardMods {
	return RewardMods{Incoming: 1, UltraCD: 1, FireRate: 1}
}

func (w *World) addTempReward(cat RewardCategory, amount float64, waves int) {
	rs := &w.rewards
	for i := range rs.Temp {
		if rs.Temp[i].Cat == cat {
			rs.Temp[i].Amount += amount
			if waves > rs.Temp[i].WavesLeft {
				rs.Temp[i].WavesLeft = waves
			}
			w.recomputeRewardMods()
			return
		}
	}
	rs.Temp = append(rs.Temp, TempReward{Cat: cat, Amount: amount, WavesLeft: waves})
	w.recomputeRewardMods()
}

func (w *World) advanceTempRewards() {
	rs := &w.rewards
	kept := rs.Temp[:0]
	for _, tr := range rs.Temp {
		tr.WavesLeft--
		if tr.WavesLeft > 0 {
			kept = append(kept, tr)
		}
	}
	rs.Temp = kept
	w.recomputeRewardMods()
}

func (w *World) recomputeRewardMods() {
	m := defaultRewardMods()
	for _, tr := range w.rewards.Temp {
		switch tr.Cat {
		case CatDamage:
			m.Damage += tr.Amount
		case CatSpeed:
			m.Speed += tr.Amount
		case CatMagnet:
			m.Magnet += tr.Amount
		case CatFireRate:
			m.FireRate = math.Max(0.45, m.FireRate-tr.Amount)
		case CatIncoming:
			m.Incoming = math.Max(0.40, m.Incoming-tr.Amount)
		case CatUltraCD:
			m.UltraCD = math.Max(0.40, m.UltraCD-tr.Amount)
		}
	}
	w.rewards.Mods = m
}

// applyPermanentReward applies a one-time run upgrade. Re-applying a key the
// run already holds is a no-op and reports false.
func (w *World) applyPermanentReward(key string) bool {
	if slices.Contains(w.rewards.Perm, key) {
		return false
	}
	w.rewards.Perm = append(w.rewards.Perm, key)

	p := &w.Player
	switch key {
	case "max_hp", "max_hp_2", "max_hp_3":
		p.MaxHP += 10
		p.HP = math.Min(p.MaxHP, p.HP+10)
	case "base_damage", "base_damage_2", "base_damage_3":
		p.Damage += 2
	case "move_speed", "move_speed_2":
		p.Speed += 10
	case "trigger_work", "trigger_work_2":
		p.FireRate = math.Max(0.14, p.FireRate*0.92)
	}
	return true
}

var permRewardCycle = []string{
	"max_hp", "base_damage", "move_speed", "trigger_work",
	"max_hp_2", "base_damage_2", "move_speed_2", "trigger_work_2",
	"max_hp_3", "base_damage_3",
}

func (w *World) grantBossPermReward() {
	for _, key := range permRewardCycle {
		if w.applyPermanentReward(key) {
			return
		}
	}
}

// boss temp reward table: every category is reachable here, including the
// ones no pickup grants directly
var bossTempRewards = []TempReward{
	{Cat: CatDamage, Amount: 3, WavesLeft: 3},
	{Cat: CatSpeed, Amount: 18, WavesLeft: 3},
	{Cat: CatFireRate, Amount: 0.12, WavesLeft: 3},
	{Cat: CatMagnet, Amount: 60, WavesLeft: 3},
	{Cat: CatIncoming, Amount: 0.15, WavesLeft: 3},
	{Cat: CatUltraCD, Amount: 0.15, WavesLeft: 3},
}

func (w *World) grantBossTempReward() {
	tr := bossTempRewards[w.randIntn(len(bossTempRewards))]
	w.addTempReward(tr.Cat, tr.Amount, tr.WavesLeft)
}

// ============================================================================
// LOOT ROLLS
// ============================================================================

func (w *World) rollPowerUpKind() (PowerUpKind, WeaponKind) {
	if w.randFloat() < 0.06 {
		return PowerVortex, WeaponBasic
	}
	if w.Wave >= 3 && w.randFloat() < 0.11 {
		return PowerWeapon, w.rollWaveWeapon(w.Wave + 1)
	}
	base := []PowerUpKind{PowerHeal, PowerDamage, PowerSpeed, PowerFireRate, PowerShield, PowerLaser}
	return base[w.randIntn(len(base))], WeaponBasic
}

func (w *World) dropPowerUp(pos Vec2) {
	kind, weapon := w.rollPowerUpKind()
	w.PowerUps = append(w.PowerUps, PowerUp{Pos: pos, Kind: kind, Weapon: weapon})
}

// maybeDropKillLoot runs once per non-boss kill.
func (w *World) maybeDropKillLoot(pos Vec2) {
	rs := &w.rewards
	rs.KillsSinceUltra++

	// ultra pity: guarantee a charge when the run has gone dry for a while
	if w.Wave >= 4 && (w.Wave-rs.LastUltraWave >= 4 || rs.KillsSinceUltra >= 30) {
		w.PowerUps = append(w.PowerUps, PowerUp{Pos: pos, Kind: PowerUltra})
		rs.LastUltraWave = w.Wave
		rs.KillsSinceUltra = 0
		return
	}

	if w.randFloat() < 0.15*w.Mods.Powerup {
		w.dropPowerUp(pos)
	}
}

func (w *World) dropBossLoot(pos Vec2) {
	// a boss always pays out a next-tier weapon plus a sustain pickup
	w.PowerUps = append(w.PowerUps, PowerUp{
		Pos:    pos.Add(Vec2{-24, 0}),
		Kind:   PowerWeapon,
		Weapon: w.rollWaveWeapon(w.Wave + 1),
	})

	sustain := []PowerUpKind{PowerHeal, PowerShield, PowerLaser}
	w.PowerUps = append(w.PowerUps, PowerUp{
		Pos:  pos.Add(Vec2{24, 0}),
		Kind: sustain[w.randIntn(len(sustain))],
	})

	if w.Player.UltraCharges < w.Cfg.UltraMaxCharges {
		w.PowerUps = append(w.PowerUps, PowerUp{Pos: pos.Add(Vec2{0, 24}), Kind: PowerUltra})
		w.rewards.LastUltraWave = w.Wave
		w.rewards.KillsSinceUltra = 0
	}

	if w.randFloat() < 0.35 {
		w.dropPowerUp(pos.Add(Vec2{0, -24}))
	}
}

// ============================================================================
// PICKUP APPLICATION
// ============================================================================

func (w *World) applyPowerUp(pu PowerUp) {
	p := &w.Player
	switch pu.Kind {
	case PowerHeal:
		p.HP = math.Min(p.MaxHP, p.HP+30)
	case PowerShield:
		p.Shield = math.Min(50, p.Shield+25)
	case PowerDamage:
		w.addTempReward(CatDamage, 3, 3)
	case PowerSpeed:
		w.addTempReward(CatSpeed, 18, 3)
	case PowerFireRate:
		w.addTempReward(CatFireRate, 0.12, 3)
	case PowerLaser:
		p.LaserUntil = w.Time + 6
	case PowerVortex:
		p.VortexUntil = w.Time + 7
	case PowerWeapon:
		p.Weapon = pu.Weapon
	case PowerUltra:
		if p.UltraCharges < w.Cfg.UltraMaxCharges {
			p.UltraCharges++
		}
	}
	w.Stats.PowerUpsTaken++
}

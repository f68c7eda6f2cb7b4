package world

import "testing"

func TestTempRewardStacksAndRefreshes(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	w.addTempReward(CatDamage, 3, 3)
	w.addTempReward(CatDamage, 3, 2)

	if len(w.rewards.Temp) != 1 {
		t.Fatalf("same category should collapse to one entry, got %d", len(w.rewards.Temp))
	}
	tr := w.rewards.Temp[0]
	if !approxEqual(tr.Amount, 6) {
		t.Fatalf("amounts should stack: got %.2f want 6", tr.Amount)
	}
	if tr.WavesLeft != 3 {
		t.Fatalf("duration should keep the longer grant: got %d want 3", tr.WavesLeft)
	}
	if !approxEqual(w.rewards.Mods.Damage, 6) {
		t.Fatalf("mods should fold the stack: got %.2f", w.rewards.Mods.Damage)
	}
}

func TestTempRewardExpiresOnWaveClears(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	w.addTempReward(CatSpeed, 18, 2)

	w.advanceTempRewards()
	if len(w.rewards.Temp) != 1 {
		t.Fatal("reward should survive its first wave clear")
	}
	w.advanceTempRewards()
	if len(w.rewards.Temp) != 0 {
		t.Fatal("reward should expire after its last wave clear")
	}
	if w.rewards.Mods.Speed != 0 {
		t.Fatalf("expired reward still in mods: %.2f", w.rewards.Mods.Speed)
	}
}

func TestMultiplierRewardsHaveFloors(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	for range 10 {
		w.addTempReward(CatIncoming, 0.15, 3)
		w.addTempReward(CatUltraCD, 0.15, 3)
		w.addTempReward(CatFireRate, 0.12, 3)
	}

	m := w.rewards.Mods
	if m.Incoming < 0.40 || m.UltraCD < 0.40 || m.FireRate < 0.45 {
		t.Fatalf("multiplier floors violated: %+v", m)
	}
}

func TestPermanentRewardIsIdempotent(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	base := w.Player.MaxHP
	if !w.applyPermanentReward("max_hp") {
		t.Fatal("first application should succeed")
	}
	if w.applyPermanentReward("max_hp") {
		t.Fatal("second application of the same key must be refused")
	}
	if !approxEqual(w.Player.MaxHP, base+10) {
		t.Fatalf("max hp should rise exactly once: got %.1f want %.1f", w.Player.MaxHP, base+10)
	}
}

func TestBossPermRewardWalksTheCycle(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	for i := range 3 {
		w.grantBossPermReward()
		if len(w.rewards.Perm) != i+1 {
			t.Fatalf("boss clear %d should add one perm reward, have %d", i+1, len(w.rewards.Perm))
		}
	}
	if w.rewards.Perm[0] == w.rewards.Perm[1] {
		t.Fatal("consecutive boss rewards should differ")
	}
}

func TestUltraPityGuaranteesADrop(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	w.Wave = 5
	w.rewards.LastUltraWave = 0

	w.maybeDropKillLoot(Vec2{50, 50})

	found := false
	for _, pu := range w.PowerUps {
		if pu.Kind == PowerUltra {
			found = true
		}
	}
	if !found {
		t.Fatal("pity should force an ultra drop")
	}
	if w.rewards.LastUltraWave != 5 || w.rewards.KillsSinceUltra != 0 {
		t.Fatalf("pity counters not reset: %+v", w.rewards)
	}
}

func TestApplyPowerUpEffects(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	w.Player.HP = 40
	w.applyPowerUp(PowerUp{Kind: PowerHeal})
	if !approxEqual(w.Player.HP, 70) {
		t.Fatalf("heal: got %.1f want 70", w.Player.HP)
	}

	w.applyPowerUp(PowerUp{Kind: PowerShield})
	w.applyPowerUp(PowerUp{Kind: PowerShield})
	w.applyPowerUp(PowerUp{Kind: PowerShield})
	if w.Player.Shield != 50 {
		t.Fatalf("shield should cap at 50, got %.1f", w.Player.Shield)
	}

	w.applyPowerUp(PowerUp{Kind: PowerWeapon, Weapon: WeaponPlasma})
	if w.Player.Weapon != WeaponPlasma {
		t.Fatalf("weapon pickup should swap the weapon, got %v", w.Player.Weapon)
	}

	w.Player.UltraCharges = w.Cfg.UltraMaxCharges
	w.applyPowerUp(PowerUp{Kind: PowerUltra})
	if w.Player.UltraCharges != w.Cfg.UltraMaxCharges {
		t.Fatalf("ultra charges should cap at %d, got %d", w.Cfg.UltraMaxCharges, w.Player.UltraCharges)
	}
}

func TestBossLootAlwaysIncludesWeapon(t *testing.T) {
	w := NewWorld(2)
	defer w.Close()
	w.Wave = 5

	w.dropBossLoot(Vec2{100, 100})

	hasWeapon := false
	for _, pu := range w.PowerUps {
		if pu.Kind == PowerWeapon {
			hasWeapon = true
		}
	}
	if !hasWeapon {
		t.Fatal("boss loot must include a weapon drop")
	}
}

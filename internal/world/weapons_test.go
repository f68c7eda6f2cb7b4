package world

import "testing"

func TestWeaponPoolGatesByWave(t *testing.T) {
	for _, e := range weaponPool(1) {
		if e.Kind != WeaponBasic {
			t.Fatalf("wave 1 pool should be basic only, found %v", e.Kind)
		}
	}

	seenHeavy := false
	for _, e := range weaponPool(8) {
		if e.Kind == WeaponHeavy {
			seenHeavy = true
		}
		if e.Kind == WeaponBasic {
			t.Fatal("late pools should have outgrown the basic weapon")
		}
	}
	if !seenHeavy {
		t.Fatal("late pool should offer the heavy weapon")
	}
}

func TestRollWaveWeaponStaysInPool(t *testing.T) {
	w := NewWorld(5)
	defer w.Close()

	for wave := 1; wave <= 10; wave++ {
		allowed := map[WeaponKind]bool{}
		for _, e := range weaponPool(wave) {
			allowed[e.Kind] = true
		}
		for range 20 {
			if k := w.rollWaveWeapon(wave); !allowed[k] {
				t.Fatalf("wave %d rolled %v outside its pool", wave, k)
			}
		}
	}
}

func TestEffectiveCooldownClamps(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()
	def := weaponDef(WeaponRapid)

	w.Player.FireRate = 0.001 // absurd buff stack
	if cd := w.effectiveFireCooldown(def); cd < 0.06 {
		t.Fatalf("cooldown floor violated: %.4f", cd)
	}

	w.Player.FireRate = 10 // absurd debuff
	want := def.Cooldown * 2.25
	if cd := w.effectiveFireCooldown(def); !approxEqual(cd, want) {
		t.Fatalf("cooldown ceiling violated: got %.4f want %.4f", cd, want)
	}
}

func TestFireWeaponSpawnsProjectiles(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	w.Player.Weapon = WeaponSpread
	w.Player.LastShot = -10

	w.fireWeapon(Vec2{1, 0})

	def := weaponDef(WeaponSpread)
	if len(w.Projectiles) != def.Count {
		t.Fatalf("spread should spawn %d shots, got %d", def.Count, len(w.Projectiles))
	}
	for _, pr := range w.Projectiles {
		if pr.Owner != OwnerPlayer {
			t.Fatal("player shots should carry player ownership")
		}
		if pr.Vel.X <= 0 {
			t.Fatalf("shot should travel along the aim: %+v", pr.Vel)
		}
	}

	// cadence gate blocks an immediate second volley
	w.fireWeapon(Vec2{1, 0})
	if len(w.Projectiles) != def.Count {
		t.Fatalf("cooldown should gate refire, got %d shots", len(w.Projectiles))
	}
}

func TestLaserBuffReplacesShotsWithBeam(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	w.Player.LaserUntil = w.Time + 5
	w.Player.LastShot = -10

	w.fireWeapon(Vec2{0, 1})

	if len(w.Projectiles) != 0 {
		t.Fatalf("laser buff should suppress projectiles, got %d", len(w.Projectiles))
	}
	if len(w.Lasers) != 1 {
		t.Fatalf("laser buff should spawn a beam, got %d", len(w.Lasers))
	}
	l := w.Lasers[0]
	if l.Owner != OwnerPlayer || l.Warn != 0 {
		t.Fatalf("player beam should be instant: %+v", l)
	}

	sawEvent := false
	for _, ev := range w.events {
		if ev.Kind == EventLaserFired {
			sawEvent = true
		}
	}
	if !sawEvent {
		t.Fatal("beam should announce a laser-fired event")
	}
}

func TestUltraConsumesChargeAndRotates(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	w.Player.UltraCharges = 2
	w.tryUltra(Vec2{1, 0})

	if w.Player.UltraCharges != 1 {
		t.Fatalf("ultra should consume a charge, have %d", w.Player.UltraCharges)
	}
	if w.Player.UltraVariant != 1 {
		t.Fatalf("ultra variant should rotate, got %d", w.Player.UltraVariant)
	}
	if len(w.Lasers) == 0 {
		t.Fatal("first ultra variant is a beam")
	}

	// cooldown gates the second charge
	w.tryUltra(Vec2{1, 0})
	if w.Player.UltraCharges != 1 {
		t.Fatal("ultra should be gated by its cooldown")
	}
}

func TestNovaBlastDamagesOnlyInRadius(t *testing.T) {
	w := NewWorld(1)
	defer w.Close()

	newTestEnemy(w, BehaviorChaser, Vec2{100, 0})
	newTestEnemy(w, BehaviorChaser, Vec2{300, 0})

	w.novaBlast(Vec2{}, 160, 25)

	if w.Enemies[0].HP != 75 {
		t.Fatalf("enemy in radius should take damage, hp=%.1f", w.Enemies[0].HP)
	}
	if w.Enemies[1].HP != 100 {
		t.Fatalf("enemy out of radius should be untouched, hp=%.1f", w.Enemies[1].HP)
	}
}

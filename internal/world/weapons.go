package world

import "math"

type WeaponKind int

const (
	WeaponBasic WeaponKind = iota
	WeaponSpread
	WeaponRapid
	WeaponHeavy
	WeaponPlasma
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponSpread:
		return "spread"
	case WeaponRapid:
		return "rapid"
	case WeaponHeavy:
		return "heavy"
	case WeaponPlasma:
		return "plasma"
	default:
		return "basic"
	}
}

type WeaponDef struct {
	Name      string
	Damage    float64
	Cooldown  float64
	Count     int
	SpreadDeg float64
	Speed     float64
	Proj      ProjectileKind
}

var weaponDefs = map[WeaponKind]WeaponDef{
	WeaponBasic:  {Name: "Blaster", Damage: 10, Cooldown: 0.28, Count: 1, Speed: 360, Proj: ProjBullet},
	WeaponSpread: {Name: "Splitter", Damage: 8, Cooldown: 0.35, Count: 3, SpreadDeg: 30, Speed: 320, Proj: ProjSpread},
	WeaponRapid:  {Name: "Needler", Damage: 6, Cooldown: 0.12, Count: 1, SpreadDeg: 5, Speed: 340, Proj: ProjBullet},
	WeaponHeavy:  {Name: "Breaker", Damage: 20, Cooldown: 0.38, Count: 1, Speed: 280, Proj: ProjMissile},
	WeaponPlasma: {Name: "Arccaster", Damage: 12, Cooldown: 0.25, Count: 2, SpreadDeg: 20, Speed: 300, Proj: ProjPlasma},
}

func weaponDef(kind WeaponKind) WeaponDef {
	if d, ok := weaponDefs[kind]; ok {
		return d
	}
	return weaponDefs[WeaponBasic]
}

type weightedWeapon struct {
	Kind   WeaponKind
	Weight float64
}

// weaponPool gates stronger weapons behind wave progression.
func weaponPool(wave int) []weightedWeapon {
	switch {
	case wave <= 2:
		return []weightedWeapon{{WeaponBasic, 1.0}}
	case wave <= 4:
		return []weightedWeapon{
			{WeaponBasic, 0.55},
			{WeaponRapid, 0.25},
			{WeaponSpread, 0.20},
		}
	case wave <= 6:
		return []weightedWeapon{
			{WeaponRapid, 0.35},
			{WeaponSpread, 0.35},
			{WeaponPlasma, 0.30},
		}
	default:
		return []weightedWeapon{
			{WeaponSpread, 0.45},
			{WeaponPlasma, 0.45},
			{WeaponHeavy, 0.10},
		}
	}
}

func (w *World) rollWaveWeapon(wave int) WeaponKind {
	pool := weaponPool(wave)
	total := 0.0
	for _, e := range pool {
		total += e.Weight
	}
	roll := w.randFloat() * total
	for _, e := range pool {
		roll -= e.Weight
		if roll < 0 {
			return e.Kind
		}
	}
	return pool[len(pool)-1].Kind
}

// effectiveFireCooldown scales the weapon's own cadence by the player's fire
// rate stat, clamped so stacked buffs cannot degenerate the sim.
func (w *World) effectiveFireCooldown(def WeaponDef) float64 {
	rateScale := clamp(w.Player.FireRate/w.Cfg.PlayerFireRate*w.rewards.Mods.FireRate, 0.45, 2.25)
	return math.Max(0.06, def.Cooldown*rateScale)
}

func (w *World) effectiveDamage(def WeaponDef) float64 {
	return def.Damage + w.rewards.Mods.Damage + (w.Player.Damage - w.Cfg.PlayerDamage)
}

// ============================================================================
// FIRING
// ============================================================================

func (w *World) fireWeapon(aim Vec2) {
	def := weaponDef(w.Player.Weapon)
	if w.Time-w.Player.LastShot < w.effectiveFireCooldown(def) {
		return
	}
	w.Player.LastShot = w.Time

	eff := w.effectiveDamage(def)

	// active laser buff replaces the shot with an instant beam
	if w.Time < w.Player.LaserUntil {
		w.firePlayerBeam(aim, float64(int(eff*0.9))+14, 10, 0.10, [3]uint8{120, 230, 255})
		return
	}

	half := def.SpreadDeg * math.Pi / 180 / 2
	for i := range def.Count {
		frac := 0.5
		if def.Count > 1 {
			frac = float64(i) / float64(def.Count-1)
		}
		ang := -half + 2*half*frac
		if def.Count == 1 && def.SpreadDeg > 0 {
			ang = (w.randFloat()*2 - 1) * half
		}
		dir := aim.Rotate(ang)
		w.Projectiles = append(w.Projectiles, Projectile{
			Pos:    w.Player.Pos,
			Vel:    dir.Mul(def.Speed),
			Damage: eff,
			Life:   w.Cfg.ProjectileLife,
			Owner:  OwnerPlayer,
			Kind:   def.Proj,
		})
	}
}

func (w *World) firePlayerBeam(dir Vec2, damage, thickness, life float64, color [3]uint8) {
	start := w.Player.Pos
	end := start.Add(dir.Mul(w.Cfg.RoomRadius * 2))
	w.Lasers = append(w.Lasers, LaserBeam{
		Start:     start,
		End:       end,
		Damage:    damage,
		Thickness: thickness,
		Warn:      0,
		Life:      life,
		Owner:     OwnerPlayer,
		Color:     color,
	})
	w.emit(Event{Kind: EventLaserFired, Start: start, End: end, Color: color})
}

// ============================================================================
// ULTRA
// ============================================================================

func (w *World) tryUltra(aim Vec2) {
	p := &w.Player
	if p.UltraCharges <= 0 || w.Time < p.UltraReadyAt {
		return
	}
	p.UltraCharges--
	p.UltraReadyAt = w.Time + w.Cfg.UltraCooldown*w.rewards.Mods.UltraCD

	base := w.Cfg.UltraDamageBase + w.effectiveDamage(weaponDef(p.Weapon))*w.Cfg.UltraDamageMult
	gold := [3]uint8{255, 215, 90}

	switch p.UltraVariant {
	case 1:
		// triple beams
		for _, off := range []float64{-16, 0, 16} {
			w.firePlayerBeam(aim.Rotate(off*math.Pi/180), base*0.72, 14, 0.12, gold)
		}
	case 2:
		// nova blast plus a forward beam
		w.novaBlast(p.Pos, 160, base*0.58)
		w.firePlayerBeam(aim, base*0.62, 14, 0.12, gold)
	default:
		w.firePlayerBeam(aim, base, 16, 0.12, gold)
	}

	p.UltraVariant = (p.UltraVariant + 1) % 3
	w.Shake = math.Max(w.Shake, 7)
}

func (w *World) novaBlast(center Vec2, radius, damage float64) {
	for i := range w.Enemies {
		e := &w.Enemies[i]
		rr := radius + e.R
		if dist2(center, e.Pos) <= rr*rr {
			w.damageEnemy(e, damage)
		}
	}
}

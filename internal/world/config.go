package world

type Config struct {
	// Arena
	RoomRadius        float64
	PlayerBoundFactor float64 // player clamped to RoomRadius * this
	EnemyBoundFactor  float64

	// Pacing
	WaveCooldown float64
	SimStepCap   float64 // upper bound on a single integration step

	// Player
	PlayerRadius       float64
	PlayerSpeed        float64
	PlayerMaxHP        float64
	PlayerDamage       float64
	PlayerFireRate     float64
	PlayerHurtCooldown float64

	// Dash
	DashSpeed    float64
	DashDuration float64
	DashCooldown float64
	DashCharges  int

	// Projectiles
	ProjectileLife      float64
	ContactDamage       float64
	TankBlastRadius     float64
	TankBlastDamage     float64
	BombBlastRadius     float64
	BombBlastMinDmg     float64
	ObstaclesBlockShots bool

	// Hazards
	MaxActiveConstructions int

	// Ultra
	UltraMaxCharges int
	UltraCooldown   float64
	UltraDamageBase float64
	UltraDamageMult float64

	// Pickups
	PickupRadius      float64
	BigPickupRadius   float64
	MagnetRadius      float64
	MagnetPullBase    float64

	// Score
	ComboStep     float64
	ComboMax      float64
	ComboHold     float64
	ComboDecay    float64
}

func DefaultConfig() Config {
	return Config{
		RoomRadius:        400,
		PlayerBoundFactor: 0.90,
		EnemyBoundFactor:  0.96,

		WaveCooldown: 2.0,
		SimStepCap:   1.0 / 30.0,

		PlayerRadius:       14,
		PlayerSpeed:        175,
		PlayerMaxHP:        100,
		PlayerDamage:       10,
		PlayerFireRate:     0.28,
		PlayerHurtCooldown: 0.6,

		DashSpeed:    520,
		DashDuration: 0.16,
		DashCooldown: 1.5,
		DashCharges:  2,

		ProjectileLife:      2.0,
		ContactDamage:       10,
		TankBlastRadius:     70,
		TankBlastDamage:     15,
		BombBlastRadius:     72,
		BombBlastMinDmg:     10,
		ObstaclesBlockShots: true,

		MaxActiveConstructions: 14,

		UltraMaxCharges: 2,
		UltraCooldown:   10.0,
		UltraDamageBase: 55,
		UltraDamageMult: 2.7,

		PickupRadius:      16,
		BigPickupRadius:   20,
		MagnetRadius:      150,
		MagnetPullBase:    220,

		ComboStep:  0.25,
		ComboMax:   8.0,
		ComboHold:  2.0,
		ComboDecay: 1.0,
	}
}

// ============================================================================
// DIFFICULTY
// ============================================================================

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyHard:
		return "hard"
	default:
		return "normal"
	}
}

// DifficultyMods are multipliers applied on top of the base balance tables.
type DifficultyMods struct {
	Spawn      float64
	HP         float64
	Speed      float64
	Powerup    float64
	BossHP     float64
	DashCD     float64
	Incoming   float64
	MaxEnemies int
}

func (d Difficulty) Mods() DifficultyMods {
	switch d {
	case DifficultyEasy:
		return DifficultyMods{
			Spawn:      0.85,
			HP:         0.88,
			Speed:      0.92,
			Powerup:    1.15,
			BossHP:     0.92,
			DashCD:     0.90,
			Incoming:   0.85,
			MaxEnemies: 10,
		}
	case DifficultyHard:
		return DifficultyMods{
			Spawn:      1.12,
			HP:         1.16,
			Speed:      1.08,
			Powerup:    0.90,
			BossHP:     1.08,
			DashCD:     1.12,
			Incoming:   1.15,
			MaxEnemies: 14,
		}
	default:
		return DifficultyMods{
			Spawn:      1.0,
			HP:         1.0,
			Speed:      1.0,
			Powerup:    1.0,
			BossHP:     1.0,
			DashCD:     1.0,
			Incoming:   1.0,
			MaxEnemies: 12,
		}
	}
}

package world

import (
	"math/rand"

	"arena-lab/internal/jobs"
)

type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

type ProjectileKind int

const (
	ProjBullet ProjectileKind = iota
	ProjSpread
	ProjPlasma
	ProjMissile
	ProjBomb
)

func projectileRadius(k ProjectileKind) float64 {
	switch k {
	case ProjBomb:
		return 10
	case ProjMissile:
		return 7
	case ProjPlasma:
		return 5.5
	case ProjSpread:
		return 4.8
	default:
		return 4.5
	}
}

type Projectile struct {
	Pos    Vec2
	Vel    Vec2
	Damage float64
	Life   float64
	Owner  Owner
	Kind   ProjectileKind
}

type Trap struct {
	Pos        Vec2
	Radius     float64
	Damage     float64
	Life       float64
	ArmedDelay float64
	T          float64
	Warn       bool // telegraph only, never damages
}

// LaserBeam is a segment hazard with a warn phase before it deals damage.
// Player ultra/laser shots reuse the same struct with Warn = 0.
type LaserBeam struct {
	Start     Vec2
	End       Vec2
	Damage    float64
	Thickness float64
	Warn      float64
	Life      float64
	T         float64
	Owner     Owner
	Color     [3]uint8
	HitDone   bool
}

type ThunderLine struct {
	Start     Vec2
	End       Vec2
	Damage    float64
	Thickness float64
	Warn      float64
	Life      float64
	T         float64
	HitDone   bool
}

type ObstacleKind int

const (
	ObstaclePillar ObstacleKind = iota
	ObstacleCrystal
	ObstacleCrate
)

type Obstacle struct {
	Pos    Vec2
	Radius float64
	Kind   ObstacleKind
}

type PowerUp struct {
	Pos    Vec2
	Kind   PowerUpKind
	Weapon WeaponKind // payload for PowerUpWeapon
}

// ============================================================================
// ENEMIES
// ============================================================================

type aiPhase int

const (
	phaseApproach aiPhase = iota
	phaseWindup
	phaseCharging
	phaseRecover
	phaseCircling
	phaseDashing
)

type Persona int

const (
	PersonaSteady Persona = iota
	PersonaAggressive
	PersonaTrickster
)

// aiState holds per-enemy behavior scratch. Fields are only meaningful for
// the archetypes that use them.
type aiState struct {
	Phase      aiPhase
	StateTimer float64
	LockTarget Vec2
	LockDir    Vec2
	SlotBias   float64
	StrafeSign float64
	GunIdx     int
	SpiralDeg  float64
	Persona    Persona
}

type Enemy struct {
	ID int

	Pos Vec2
	Vel Vec2

	HP    float64
	MaxHP float64
	Speed float64
	R     float64

	Behavior   Behavior
	T          float64 // lifetime, drives oscillators
	AttackCD   float64
	AttackMult float64
	Seed       float64 // phase jitter so twins desync
	HitT       float64 // hit flash timer

	AI aiState
}

// swarmBrain coordinates every live swarm enemy as one squad.
type swarmBrain struct {
	Mode       int // 0 encircle, 1 surge, 2 regroup
	ModeTimer  float64
	OrbitPhase float64
}

// ============================================================================
// PLAYER
// ============================================================================

type DashState struct {
	Active   bool
	Timer    float64
	Cooldown float64 // time until the next charge refills
	Charges  int
	Dir      Vec2
}

type Player struct {
	Pos    Vec2
	Vel    Vec2 // derived each step, used for enemy lead prediction
	AimDir Vec2

	HP     float64
	MaxHP  float64
	Shield float64

	Speed    float64
	Damage   float64
	FireRate float64

	LastShot  float64
	HurtTimer float64

	Weapon WeaponKind
	Dash   DashState

	// timed buffs
	LaserUntil  float64
	VortexUntil float64
	vortexAcc   float64

	UltraCharges int
	UltraReadyAt float64
	UltraVariant int
}

type Stats struct {
	EnemiesSpawned int
	EnemiesKilled  int
	DamageTaken    float64
	DamageDealt    float64
	PowerUpsTaken  int
	WavesCleared   int
}

// ============================================================================
// WORLD
// ============================================================================

type World struct {
	Cfg        Config
	Difficulty Difficulty
	Mods       DifficultyMods

	Time          float64
	Wave          int
	WaveActive    bool
	WaveThreat    float64
	WaveCombo     string
	LastWaveClear float64
	MaxEnemies    int

	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile
	PowerUps    []PowerUp
	Traps       []Trap
	Lasers      []LaserBeam
	Thunders    []ThunderLine
	Obstacles   []Obstacle

	Shake float64

	GameOver bool
	Paused   bool

	Stats Stats
	Score ScoreState

	inbox  []Msg
	events []Event

	// enemies queued during the current step (boss summons), merged after
	// the enemy update loop so iteration order stays stable
	pendingEnemies []Enemy

	rewards RewardState
	swarm   swarmBrain

	layoutSegment int
	latePoolIdx   int

	rng      *rand.Rand
	rngSeed  int64
	rngCalls uint64

	nextEnemyID int

	// steering worker-pool pipeline
	aiPool            *jobs.SteeringPool
	aiTick            uint64
	aiPendingRequests map[uint64]jobs.SteeringRequest
	aiReadyResults    map[uint64]jobs.SteeringResult
}

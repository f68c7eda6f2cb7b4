package world

import "math"

type Behavior int

const (
	BehaviorChaser Behavior = iota
	BehaviorRanged
	BehaviorSwarm
	BehaviorCharger
	BehaviorTank
	BehaviorSpitter
	BehaviorFlyer
	BehaviorEngineer
	BehaviorBomber

	BossThunder
	BossLaser
	BossTrapmaster
	BossSwarmQueen
	BossBrute
	BossAbyssGaze
	BossWombCore
)

func (b Behavior) IsBoss() bool { return b >= BossThunder && b <= BossWombCore }

func (b Behavior) String() string {
	switch b {
	case BehaviorChaser:
		return "chaser"
	case BehaviorRanged:
		return "ranged"
	case BehaviorSwarm:
		return "swarm"
	case BehaviorCharger:
		return "charger"
	case BehaviorTank:
		return "tank"
	case BehaviorSpitter:
		return "spitter"
	case BehaviorFlyer:
		return "flyer"
	case BehaviorEngineer:
		return "engineer"
	case BehaviorBomber:
		return "bomber"
	case BossThunder:
		return "boss_thunder"
	case BossLaser:
		return "boss_laser"
	case BossTrapmaster:
		return "boss_trapmaster"
	case BossSwarmQueen:
		return "boss_swarm_queen"
	case BossBrute:
		return "boss_brute"
	case BossAbyssGaze:
		return "boss_abyss_gaze"
	case BossWombCore:
		return "boss_womb_core"
	default:
		return "unknown"
	}
}

// ============================================================================
// ENEMY STAT TABLES
// ============================================================================

type statProfile struct {
	HPMult    float64
	SpeedMult float64
	Radius    float64
	MinHP     float64
}

var statProfiles = map[Behavior]statProfile{
	BehaviorChaser:   {HPMult: 1.00, SpeedMult: 1.32, Radius: 12},
	BehaviorRanged:   {HPMult: 0.90, SpeedMult: 0.95, Radius: 12},
	BehaviorSwarm:    {HPMult: 0.50, SpeedMult: 1.45, Radius: 9, MinHP: 8},
	BehaviorCharger:  {HPMult: 1.10, SpeedMult: 1.05, Radius: 13},
	BehaviorTank:     {HPMult: 2.00, SpeedMult: 0.55, Radius: 16},
	BehaviorSpitter:  {HPMult: 0.95, SpeedMult: 0.90, Radius: 12},
	BehaviorFlyer:    {HPMult: 0.80, SpeedMult: 1.20, Radius: 11},
	BehaviorEngineer: {HPMult: 1.05, SpeedMult: 0.85, Radius: 13},
	BehaviorBomber:   {HPMult: 1.00, SpeedMult: 0.90, Radius: 12},
}

type bossProfile struct {
	BaseHP    float64
	HPPerWave float64
	Speed     float64
}

var bossProfiles = map[Behavior]bossProfile{
	BossThunder:    {BaseHP: 150, HPPerWave: 32, Speed: 72},
	BossLaser:      {BaseHP: 135, HPPerWave: 28, Speed: 64},
	BossTrapmaster: {BaseHP: 170, HPPerWave: 30, Speed: 58},
	BossSwarmQueen: {BaseHP: 155, HPPerWave: 26, Speed: 66},
	BossBrute:      {BaseHP: 190, HPPerWave: 34, Speed: 78},
	BossAbyssGaze:  {BaseHP: 210, HPPerWave: 32, Speed: 60},
	BossWombCore:   {BaseHP: 240, HPPerWave: 36, Speed: 54},
}

const bossRadius = 24

// enemyBaseHP grows linearly with the wave before archetype multipliers.
func enemyBaseHP(wave int) float64 { return 22 + float64(wave)*5 }

func enemyBaseSpeed(wave int) float64 { return 55 + float64(wave)*2 }

func bossHPGrowth(wave int) float64 {
	return math.Min(1.75, 1.14+0.007*float64(wave))
}

// ============================================================================
// SCORE / THREAT TABLES
// ============================================================================

var killPoints = map[Behavior]float64{
	BehaviorChaser:   100,
	BehaviorRanged:   150,
	BehaviorSwarm:    60,
	BehaviorCharger:  175,
	BehaviorTank:     250,
	BehaviorSpitter:  175,
	BehaviorFlyer:    150,
	BehaviorEngineer: 200,
	BehaviorBomber:   200,
	BossThunder:      2000,
	BossLaser:        2200,
	BossTrapmaster:   2400,
	BossSwarmQueen:   2600,
	BossBrute:        2800,
	BossAbyssGaze:    3000,
	BossWombCore:     3000,
}

// threatValue is used by the planner to keep wave pressure roughly even.
var threatValue = map[Behavior]float64{
	BehaviorChaser:   1,
	BehaviorSwarm:    1,
	BehaviorRanged:   2,
	BehaviorFlyer:    2,
	BehaviorSpitter:  2,
	BehaviorCharger:  2,
	BehaviorBomber:   3,
	BehaviorEngineer: 3,
	BehaviorTank:     4,
	BossThunder:      20,
	BossLaser:        22,
	BossTrapmaster:   24,
	BossSwarmQueen:   26,
	BossBrute:        28,
	BossAbyssGaze:    30,
	BossWombCore:     30,
}

// attackCooldownRange is the initial attack timer window for a fresh spawn so
// a wave does not open fire in lockstep.
func attackCooldownRange(b Behavior) (lo, hi float64) {
	switch {
	case b.IsBoss():
		return 0.6, 1.6
	case b == BehaviorEngineer:
		return 0.6, 1.4
	default:
		return 0.2, 1.0
	}
}

func behaviorRadius(b Behavior) float64 {
	if b.IsBoss() {
		return bossRadius
	}
	if p, ok := statProfiles[b]; ok {
		return p.Radius
	}
	return 12
}

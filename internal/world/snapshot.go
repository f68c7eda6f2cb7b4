package world

// Snapshot is a read-only copy of everything the presentation layer draws.
// Slices are copied so rendering can outlive the next Update call.
type Snapshot struct {
	Time       float64
	Wave       int
	WaveActive bool
	WaveThreat float64
	WaveCombo  string
	Difficulty Difficulty

	Player      Player
	Enemies     []Enemy
	Projectiles []Projectile
	PowerUps    []PowerUp
	Traps       []Trap
	Lasers      []LaserBeam
	Thunders    []ThunderLine
	Obstacles   []Obstacle

	Shake    float64
	GameOver bool
	Paused   bool

	Stats Stats
	Score ScoreState

	RoomRadius float64
}

func (w *World) BuildSnapshot() Snapshot {
	s := Snapshot{
		Time:       w.Time,
		Wave:       w.Wave,
		WaveActive: w.WaveActive,
		WaveThreat: w.WaveThreat,
		WaveCombo:  w.WaveCombo,
		Difficulty: w.Difficulty,

		Player: w.Player,

		Shake:    w.Shake,
		GameOver: w.GameOver,
		Paused:   w.Paused,

		Stats: w.Stats,
		Score: w.Score,

		RoomRadius: w.Cfg.RoomRadius,
	}

	s.Enemies = append(s.Enemies, w.Enemies...)
	s.Projectiles = append(s.Projectiles, w.Projectiles...)
	s.PowerUps = append(s.PowerUps, w.PowerUps...)
	s.Traps = append(s.Traps, w.Traps...)
	s.Lasers = append(s.Lasers, w.Lasers...)
	s.Thunders = append(s.Thunders, w.Thunders...)
	s.Obstacles = append(s.Obstacles, w.Obstacles...)

	return s
}

// UltraReady reports whether the ultra can fire right now.
func (s Snapshot) UltraReady() bool {
	return s.Player.UltraCharges > 0 && s.Time >= s.Player.UltraReadyAt
}

package world

type EventKind int

const (
	EventEnemySpawned EventKind = iota
	EventEnemyKilled
	EventPlayerHit
	EventPowerUpCollected
	EventWaveCleared
	EventLaserFired
	EventRunEnded
)

// Event is one frame-local notification for the presentation layer. The
// slice returned by Update is ordered by occurrence within the step and is
// only valid until the next Update call.
type Event struct {
	Kind EventKind

	Behavior Behavior
	Pos      Vec2
	Amount   float64
	PowerUp  PowerUpKind
	Wave     int
	Boss     bool

	// laser visuals
	Start Vec2
	End   Vec2
	Color [3]uint8
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

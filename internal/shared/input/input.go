package input

// Intent is one world-space control sample for a single simulation step.
// The presentation layer converts device state (keyboard, mouse, gamepad)
// into this form; the sim never sees screen coordinates or key codes.
type Intent struct {
	MoveX, MoveY float64 // desired move direction, not necessarily normalized
	AimX, AimY   float64 // world-space aim direction

	Firing bool
	Dash   bool // edge-triggered
	Ultra  bool // edge-triggered
}

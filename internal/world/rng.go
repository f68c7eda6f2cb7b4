package world

import "math/rand"

func (w *World) ensureRNG() {
	if w.rng != nil {
		return
	}
	if w.rngSeed == 0 {
		w.rngSeed = 1
	}
	w.rng = rand.New(rand.NewSource(w.rngSeed))
}

func (w *World) randFloat() float64 {
	w.ensureRNG()
	w.rngCalls++
	return w.rng.Float64()
}

// randRange returns a value in [lo, hi).
func (w *World) randRange(lo, hi float64) float64 {
	return lo + w.randFloat()*(hi-lo)
}

func (w *World) randIntn(n int) int {
	w.ensureRNG()
	w.rngCalls++
	return w.rng.Intn(n)
}

// randSign returns -1 or 1.
func (w *World) randSign() float64 {
	if w.randIntn(2) == 0 {
		return -1
	}
	return 1
}

package telemetry

import (
	"sync"
	"time"

	"arena-lab/internal/commons/logger_config"
)

type Event struct {
	Kind string
	I    int
	F    float32
	At   time.Time
}

// Batch is one flush window worth of aggregated events.
type Batch struct {
	Kills    int
	Dmg      float32
	Frames   int
	AvgDt    float32
	Waves    int
	PowerUps int
}

type Sink struct {
	In   chan Event
	quit chan struct{}

	closeOnce sync.Once
	done      chan struct{}
}

// NewSink returns a sink that logs a batch summary every couple of seconds.
func NewSink() *Sink {
	return newSink(2*time.Second, func(b Batch) {
		logger_config.Logger.Info("telemetry batch",
			"kills", b.Kills,
			"dmg", b.Dmg,
			"frames", b.Frames,
			"avg_dt", b.AvgDt,
			"waves", b.Waves,
			"powerups", b.PowerUps,
		)
	})
}

func newSink(flushEvery time.Duration, flush func(Batch)) *Sink {
	s := &Sink{
		In:   make(chan Event, 256),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.loop(flushEvery, flush)

	return s
}

func (s *Sink) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		<-s.done
	})
}

func (s *Sink) loop(flushEvery time.Duration, flush func(Batch)) {
	defer close(s.done)

	ticker := time.NewTicker(flushEvery)
	defer ticker.Stop()

	var b Batch
	var dtSum float32

	for {
		select {
		case <-s.quit:
			return

		case ev := <-s.In:
			switch ev.Kind {
			case "kill":
				b.Kills += ev.I
			case "damage":
				b.Dmg += ev.F
			case "frame":
				b.Frames++
				dtSum += ev.F
			case "wave":
				b.Waves++
			case "powerup":
				b.PowerUps++
			}

		case <-ticker.C:
			if b.Frames > 0 {
				b.AvgDt = dtSum / float32(b.Frames)
			}
			if flush != nil {
				flush(b)
			}
			b = Batch{}
			dtSum = 0
		}
	}
}

package jobs

import (
	"math"
	"sync"
)

// Steering jobs are pure: a worker only ever reads the immutable snapshot in
// the request, so results are identical whether they come back from a worker
// or from the synchronous fallback.

type UnitSnapshot struct {
	UnitID    int
	X         float64
	Y         float64
	Radius    float64
	SepRadius float64
	Dodges    bool
	DodgeDist float64 // threat radius for dodging, 0 means the default
}

type ShotSnapshot struct {
	X    float64
	Y    float64
	VelX float64
	VelY float64
}

type SteeringRequest struct {
	Tick    uint64
	PlayerX float64
	PlayerY float64
	Units   []UnitSnapshot
	Shots   []ShotSnapshot
}

type UnitSteering struct {
	UnitID    int
	SepX      float64
	SepY      float64
	DodgeX    float64
	DodgeY    float64
	Neighbors int
}

type SteeringResult struct {
	Tick  uint64
	Items []UnitSteering
}

type SteeringPool struct {
	Req  chan SteeringRequest
	Res  chan SteeringResult
	quit chan struct{}

	closeOnce sync.Once
	wg        sync.WaitGroup
}

func NewSteeringPool(workerCount, queueSize int) *SteeringPool {
	if workerCount < 1 {
		workerCount = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	p := &SteeringPool{
		Req:  make(chan SteeringRequest, queueSize),
		Res:  make(chan SteeringResult, queueSize),
		quit: make(chan struct{}),
	}

	p.wg.Add(workerCount)
	for range workerCount {
		go p.worker()
	}

	return p
}

func (p *SteeringPool) Close() {
	p.closeOnce.Do(func() {
		close(p.quit)
		p.wg.Wait()
	})
}

func (p *SteeringPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.quit:
			return

		case req := <-p.Req:
			res := ComputeSteering(req)

			// Never block worker shutdown on a full result queue.
			select {
			case <-p.quit:
				return
			case p.Res <- res:
			default:
			}
		}
	}
}

// ComputeSteering builds a separation vector per unit (inverse-square push
// away from crowding neighbors) and a dodge vector away from incoming shots.
func ComputeSteering(req SteeringRequest) SteeringResult {
	out := SteeringResult{
		Tick:  req.Tick,
		Items: make([]UnitSteering, len(req.Units)),
	}

	for i, u := range req.Units {
		item := UnitSteering{UnitID: u.UnitID}

		sepR := u.SepRadius
		if sepR <= 0 {
			sepR = 44
		}

		for j, o := range req.Units {
			if j == i {
				continue
			}
			dx := u.X - o.X
			dy := u.Y - o.Y
			d2 := dx*dx + dy*dy
			if d2 >= sepR*sepR || d2 < 1e-9 {
				continue
			}
			// inverse-square falloff, normalized by the separation radius
			d := math.Sqrt(d2)
			push := (sepR - d) / sepR
			push = push * push / d
			item.SepX += dx * push
			item.SepY += dy * push
			item.Neighbors++
		}

		if u.Dodges {
			item.DodgeX, item.DodgeY = dodgeVector(u, req.Shots)
		}

		out.Items[i] = item
	}

	return out
}

// dodgeVector sums sideways escapes from the nearest shots still heading
// toward the unit. At most a handful of threats count so one unit cannot be
// paralyzed by a bullet storm.
func dodgeVector(u UnitSnapshot, shots []ShotSnapshot) (float64, float64) {
	const maxThreats = 4

	threatRadius := u.DodgeDist
	if threatRadius <= 0 {
		threatRadius = 90
	}

	var dx, dy float64
	threats := 0

	for _, s := range shots {
		if threats >= maxThreats {
			break
		}
		rx := u.X - s.X
		ry := u.Y - s.Y
		d2 := rx*rx + ry*ry
		if d2 >= threatRadius*threatRadius || d2 < 1e-9 {
			continue
		}
		// ignore shots already flying away
		if rx*s.VelX+ry*s.VelY <= 0 {
			continue
		}
		threats++

		// step off the shot's travel line, away from the near side
		vlen := math.Sqrt(s.VelX*s.VelX + s.VelY*s.VelY)
		if vlen < 1e-9 {
			continue
		}
		px, py := -s.VelY/vlen, s.VelX/vlen
		if px*rx+py*ry < 0 {
			px, py = -px, -py
		}
		weight := 1 - math.Sqrt(d2)/threatRadius
		dx += px * weight
		dy += py * weight
	}

	l := math.Sqrt(dx*dx + dy*dy)
	if l < 1e-9 {
		return 0, 0
	}
	return dx / l, dy / l
}

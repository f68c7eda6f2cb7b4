package world

import (
	"math"
	"math/rand"
)

// Obstacle layouts are generated from their own RNG stream so regenerating
// segment N always yields the same arena for a given world seed, regardless
// of how much the sim RNG has been consumed.

type layoutKind int

const (
	layoutCross layoutKind = iota
	layoutRing
	layoutLanes
	layoutCluster
	layoutSpiral
	layoutMaze
	layoutCount
)

func (w *World) regenObstacles(segment int) {
	rng := rand.New(rand.NewSource(w.rngSeed + int64(segment)*1337))
	kind := layoutKind(rng.Intn(int(layoutCount)))

	room := w.Cfg.RoomRadius
	keepout := math.Max(70, room*0.18)
	maxR := room * 0.72

	var want []Obstacle
	switch kind {
	case layoutCross:
		for _, ang := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
			for i := 1; i <= 3; i++ {
				d := keepout + (maxR-keepout)*float64(i)/3.5
				want = append(want, Obstacle{
					Pos:    vecFromAngle(ang).Mul(d),
					Radius: 18 + rng.Float64()*10,
				})
			}
		}
	case layoutRing:
		n := 8 + rng.Intn(4)
		ringR := keepout + (maxR-keepout)*0.55
		for i := range n {
			ang := float64(i)/float64(n)*2*math.Pi + rng.Float64()*0.2
			want = append(want, Obstacle{
				Pos:    vecFromAngle(ang).Mul(ringR + (rng.Float64()-0.5)*40),
				Radius: 16 + rng.Float64()*12,
			})
		}
	case layoutLanes:
		for lane := -1; lane <= 1; lane += 2 {
			y := float64(lane) * (keepout + 60)
			for i := range 4 {
				x := -maxR + (2*maxR)*float64(i)/3
				want = append(want, Obstacle{
					Pos:    Vec2{x, y + (rng.Float64()-0.5)*30},
					Radius: 17 + rng.Float64()*9,
				})
			}
		}
	case layoutCluster:
		clusters := 3 + rng.Intn(2)
		for range clusters {
			center := vecFromAngle(rng.Float64() * 2 * math.Pi).Mul(keepout + rng.Float64()*(maxR-keepout))
			for range 3 {
				off := vecFromAngle(rng.Float64() * 2 * math.Pi).Mul(20 + rng.Float64()*45)
				want = append(want, Obstacle{
					Pos:    center.Add(off),
					Radius: 14 + rng.Float64()*12,
				})
			}
		}
	case layoutSpiral:
		n := 10 + rng.Intn(4)
		for i := range n {
			frac := float64(i) / float64(n)
			ang := frac * 3.2 * math.Pi
			want = append(want, Obstacle{
				Pos:    vecFromAngle(ang).Mul(keepout + frac*(maxR-keepout)),
				Radius: 15 + rng.Float64()*10,
			})
		}
	default: // maze
		n := 12 + rng.Intn(6)
		for range n {
			want = append(want, Obstacle{
				Pos:    vecFromAngle(rng.Float64() * 2 * math.Pi).Mul(keepout + rng.Float64()*(maxR-keepout)),
				Radius: 15 + rng.Float64()*13,
			})
		}
	}

	w.Obstacles = placeObstacles(rng, want, keepout, maxR)
}

// placeObstacles enforces the center keepout, arena bound, and a minimum gap
// between obstacles. Candidates that collide are re-rolled from a shared
// retry budget; when the budget runs out the layout simply comes up short.
func placeObstacles(rng *rand.Rand, want []Obstacle, keepout, maxR float64) []Obstacle {
	const (
		minGap      = 30
		retryBudget = 600
	)

	placed := make([]Obstacle, 0, len(want))
	retries := 0

	for _, cand := range want {
		for {
			if obstacleFits(placed, cand, keepout, maxR, minGap) {
				placed = append(placed, cand)
				cand.Kind = ObstacleKind(rng.Intn(3))
				placed[len(placed)-1].Kind = cand.Kind
				break
			}
			retries++
			if retries > retryBudget {
				return placed
			}
			cand.Pos = vecFromAngle(rng.Float64() * 2 * math.Pi).Mul(keepout + rng.Float64()*(maxR-keepout))
		}
	}
	return placed
}

func obstacleFits(placed []Obstacle, cand Obstacle, keepout, maxR, minGap float64) bool {
	d := cand.Pos.Len()
	if d < keepout+cand.Radius || d > maxR {
		return false
	}
	for _, o := range placed {
		if cand.Pos.Sub(o.Pos).Len() < cand.Radius+o.Radius+minGap {
			return false
		}
	}
	return true
}

package world

import "math"

// pointSegDist returns the distance from p to segment [a, b].
func pointSegDist(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	ab2 := ab.Len2()
	if ab2 < 1e-12 {
		return p.Sub(a).Len()
	}
	t := clamp(p.Sub(a).Dot(ab)/ab2, 0, 1)
	closest := a.Add(ab.Mul(t))
	return p.Sub(closest).Len()
}

// segHitsCircle reports whether the swept segment [from, to] passes within
// radius of center. Used for projectile hits so fast shots cannot tunnel
// through a target between steps.
func segHitsCircle(from, to, center Vec2, radius float64) bool {
	return pointSegDist(center, from, to) <= radius
}

// segBlockedByObstacle returns the first obstacle the segment crosses, or -1.
func (w *World) segBlockedByObstacle(from, to Vec2) int {
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if pointSegDist(o.Pos, from, to) <= o.Radius {
			return i
		}
	}
	return -1
}

// beamHitsCircle is the lenient segment test used by lasers and thunder
// strikes: the effective band is thinner than the visual and only a slice of
// the target radius counts, so grazes feel fair.
func beamHitsCircle(from, to, center Vec2, thickness, targetR float64) bool {
	return pointSegDist(center, from, to) <= thickness*0.6+targetR*0.35
}

// resolveCircleObstacles pushes a circle at pos out of any overlapping
// obstacle. A few iterations settle corner cases where pushing out of one
// obstacle lands inside another.
func (w *World) resolveCircleObstacles(pos Vec2, r float64) Vec2 {
	for range 4 {
		moved := false
		for i := range w.Obstacles {
			o := &w.Obstacles[i]
			d := pos.Sub(o.Pos)
			l := d.Len()
			rr := o.Radius + r
			if l >= rr {
				continue
			}
			if l < 1e-6 {
				// degenerate overlap, pick a fixed axis
				d = Vec2{1, 0}
				l = 1
			}
			pos = pos.Add(d.Mul((rr - l) / l))
			moved = true
		}
		if !moved {
			break
		}
	}
	return pos
}

// clampToRoom keeps pos within factor * RoomRadius of the arena center.
func (w *World) clampToRoom(pos Vec2, factor float64) Vec2 {
	limit := w.Cfg.RoomRadius * factor
	l := pos.Len()
	if l <= limit || l < 1e-9 {
		return pos
	}
	return pos.Mul(limit / l)
}

func circlesOverlap(a Vec2, ar float64, b Vec2, br float64) bool {
	rr := ar + br
	return dist2(a, b) < rr*rr
}

func angleOf(v Vec2) float64 { return math.Atan2(v.Y, v.X) }

package jobs

import (
	"math"
	"testing"
	"time"
)

func TestComputeSteeringPushesCrowdedUnitsApart(t *testing.T) {
	req := SteeringRequest{
		Tick: 3,
		Units: []UnitSnapshot{
			{UnitID: 1, X: 0, Y: 0, SepRadius: 44},
			{UnitID: 2, X: 20, Y: 0, SepRadius: 44},
		},
	}

	res := ComputeSteering(req)
	if res.Tick != 3 {
		t.Fatalf("tick should pass through, got %d", res.Tick)
	}
	if len(res.Items) != 2 {
		t.Fatalf("want one item per unit, got %d", len(res.Items))
	}

	left, right := res.Items[0], res.Items[1]
	if left.SepX >= 0 || right.SepX <= 0 {
		t.Fatalf("units should push away from each other: %.3f / %.3f", left.SepX, right.SepX)
	}
	if left.Neighbors != 1 || right.Neighbors != 1 {
		t.Fatalf("each unit has exactly one crowding neighbor: %d / %d", left.Neighbors, right.Neighbors)
	}
	if math.Abs(left.SepX+right.SepX) > 1e-9 {
		t.Fatal("pair separation should be symmetric")
	}
}

func TestComputeSteeringIgnoresDistantUnits(t *testing.T) {
	req := SteeringRequest{
		Units: []UnitSnapshot{
			{UnitID: 1, X: 0, Y: 0, SepRadius: 44},
			{UnitID: 2, X: 300, Y: 0, SepRadius: 44},
		},
	}

	res := ComputeSteering(req)
	for _, it := range res.Items {
		if it.SepX != 0 || it.SepY != 0 || it.Neighbors != 0 {
			t.Fatalf("distant units must not interact: %+v", it)
		}
	}
}

func TestDodgeOnlyForIncomingShots(t *testing.T) {
	unit := UnitSnapshot{UnitID: 1, X: 0, Y: 0, Dodges: true}

	incoming := []ShotSnapshot{{X: -50, Y: 0, VelX: 360, VelY: 0}}
	dx, dy := dodgeVector(unit, incoming)
	if dx == 0 && dy == 0 {
		t.Fatal("incoming shot should produce a dodge")
	}
	if math.Abs(dx) > 1e-6 {
		t.Fatalf("escape from a horizontal shot should be vertical, got (%.3f, %.3f)", dx, dy)
	}
	if l := math.Hypot(dx, dy); math.Abs(l-1) > 1e-6 {
		t.Fatalf("dodge should be unit length, got %.6f", l)
	}

	receding := []ShotSnapshot{{X: -50, Y: 0, VelX: -360, VelY: 0}}
	dx, dy = dodgeVector(unit, receding)
	if dx != 0 || dy != 0 {
		t.Fatal("shot flying away must not trigger a dodge")
	}

	far := []ShotSnapshot{{X: -500, Y: 0, VelX: 360, VelY: 0}}
	dx, dy = dodgeVector(unit, far)
	if dx != 0 || dy != 0 {
		t.Fatal("shot outside the threat radius must not trigger a dodge")
	}
}

func TestComputeSteeringSkipsDodgeForNonDodgers(t *testing.T) {
	req := SteeringRequest{
		Units: []UnitSnapshot{{UnitID: 1, X: 0, Y: 0}},
		Shots: []ShotSnapshot{{X: -30, Y: 0, VelX: 360, VelY: 0}},
	}

	res := ComputeSteering(req)
	if res.Items[0].DodgeX != 0 || res.Items[0].DodgeY != 0 {
		t.Fatal("units without the dodge flag must ignore shots")
	}
}

func TestPoolDeliversResult(t *testing.T) {
	p := NewSteeringPool(2, 4)
	defer p.Close()

	req := SteeringRequest{
		Tick: 7,
		Units: []UnitSnapshot{
			{UnitID: 1, X: 0, Y: 0, SepRadius: 44},
			{UnitID: 2, X: 10, Y: 0, SepRadius: 44},
		},
	}
	p.Req <- req

	select {
	case res := <-p.Res:
		if res.Tick != 7 {
			t.Fatalf("unexpected tick %d", res.Tick)
		}
		want := ComputeSteering(req)
		for i, it := range res.Items {
			if it != want.Items[i] {
				t.Fatalf("worker result differs from synchronous compute at %d: %+v vs %+v", i, it, want.Items[i])
			}
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for steering result")
	}
}

func TestPoolCloseIsIdempotent(t *testing.T) {
	p := NewSteeringPool(1, 1)
	p.Close()
	p.Close()
}

func TestDodgeDistShrinksThreatRadius(t *testing.T) {
	shots := []ShotSnapshot{{X: -80, Y: 0, VelX: 360, VelY: 0}}

	wide := UnitSnapshot{UnitID: 1, Dodges: true}
	dx, dy := dodgeVector(wide, shots)
	if dx == 0 && dy == 0 {
		t.Fatal("shot inside the default threat radius should produce a dodge")
	}

	tight := UnitSnapshot{UnitID: 2, Dodges: true, DodgeDist: 70}
	dx, dy = dodgeVector(tight, shots)
	if dx != 0 || dy != 0 {
		t.Fatal("shot beyond the custom threat radius must not trigger a dodge")
	}
}

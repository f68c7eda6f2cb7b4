package world

import (
	"math"
	"testing"
)

func TestRegenObstaclesIsDeterministicPerSegment(t *testing.T) {
	w1 := NewWorld(42)
	defer w1.Close()
	w2 := NewWorld(42)
	defer w2.Close()

	// burn sim rng on one world; layout must not care
	for range 100 {
		w1.randFloat()
	}

	w1.regenObstacles(3)
	w2.regenObstacles(3)

	if len(w1.Obstacles) != len(w2.Obstacles) {
		t.Fatalf("obstacle count mismatch: %d vs %d", len(w1.Obstacles), len(w2.Obstacles))
	}
	for i := range w1.Obstacles {
		a, b := w1.Obstacles[i], w2.Obstacles[i]
		if a.Pos != b.Pos || a.Radius != b.Radius || a.Kind != b.Kind {
			t.Fatalf("obstacle[%d] mismatch: %+v vs %+v", i, a, b)
		}
	}
}

func TestObstaclesRespectPlacementRules(t *testing.T) {
	w := NewWorld(99)
	defer w.Close()

	room := w.Cfg.RoomRadius
	keepout := math.Max(70, room*0.18)

	for seg := range 8 {
		w.regenObstacles(seg)
		obs := w.Obstacles

		if len(obs) == 0 {
			t.Fatalf("segment %d generated an empty arena", seg)
		}

		for i, o := range obs {
			d := o.Pos.Len()
			if d < keepout {
				t.Fatalf("segment %d obstacle %d inside keepout: %.1f < %.1f", seg, i, d, keepout)
			}
			if d > room*0.72+1e-6 {
				t.Fatalf("segment %d obstacle %d beyond bound: %.1f", seg, i, d)
			}
			for j := i + 1; j < len(obs); j++ {
				gap := o.Pos.Sub(obs[j].Pos).Len() - o.Radius - obs[j].Radius
				if gap < 30-1e-6 {
					t.Fatalf("segment %d obstacles %d/%d too close: gap %.2f", seg, i, j, gap)
				}
			}
		}
	}
}

func TestDifferentSegmentsDiffer(t *testing.T) {
	w := NewWorld(7)
	defer w.Close()

	w.regenObstacles(0)
	first := append([]Obstacle(nil), w.Obstacles...)
	w.regenObstacles(1)

	same := len(first) == len(w.Obstacles)
	if same {
		for i := range first {
			if first[i].Pos != w.Obstacles[i].Pos {
				same = false
				break
			}
		}
	}
	if same {
		t.Fatal("consecutive segments produced identical layouts")
	}
}

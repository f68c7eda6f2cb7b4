package world

import (
	"testing"
	"time"

	"arena-lab/internal/jobs"
)

func TestConsumeSteeringFallsBackToPendingRequest(t *testing.T) {
	w := NewWorld(5)
	defer w.Close()

	// Seed the pending request by hand without feeding the pool. Consume then
	// has no ready result and must compute synchronously from this snapshot.
	req := jobs.SteeringRequest{
		Tick:    1,
		PlayerX: 0,
		PlayerY: 0,
		Units: []jobs.UnitSnapshot{
			{UnitID: 1, X: 100, Y: 0, Radius: 10, SepRadius: 30, Dodges: true},
			{UnitID: 2, X: 118, Y: 0, Radius: 10, SepRadius: 30, Dodges: true},
		},
	}
	w.aiPendingRequests[1] = req

	hints := w.consumeSteeringForTick(1)
	if hints == nil {
		t.Fatal("fallback should produce hints")
	}
	want := hintsFromResult(jobs.ComputeSteering(req))
	if len(hints) != len(want) {
		t.Fatalf("hint count: got %d want %d", len(hints), len(want))
	}
	for id, h := range want {
		if hints[id] != h {
			t.Fatalf("fallback hint for %d differs: %+v vs %+v", id, hints[id], h)
		}
	}
	if _, still := w.aiPendingRequests[1]; still {
		t.Fatal("consume should clear the pending request")
	}
}

func TestConsumeSteeringPrefersWorkerResult(t *testing.T) {
	w := NewWorld(5)
	defer w.Close()

	newTestEnemy(w, BehaviorChaser, Vec2{60, 0})
	newTestEnemy(w, BehaviorChaser, Vec2{80, 0})

	w.submitSteeringJob(2)
	req := w.aiPendingRequests[2]

	// wait for the worker so consume takes the async path
	deadline := time.Now().Add(500 * time.Millisecond)
	for {
		w.drainSteeringResults()
		if _, ok := w.aiReadyResults[2]; ok {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("worker never delivered the result")
		}
		time.Sleep(time.Millisecond)
	}

	hints := w.consumeSteeringForTick(2)
	want := hintsFromResult(jobs.ComputeSteering(req))
	for id, h := range want {
		if hints[id] != h {
			t.Fatalf("worker hint for %d differs from synchronous compute: %+v vs %+v", id, hints[id], h)
		}
	}
}

func TestPruneSteeringStateDropsOldTicks(t *testing.T) {
	w := NewWorld(5)
	defer w.Close()

	w.aiPendingRequests[1] = jobs.SteeringRequest{Tick: 1}
	w.aiPendingRequests[95] = jobs.SteeringRequest{Tick: 95}
	w.aiReadyResults[2] = jobs.SteeringResult{Tick: 2}
	w.aiReadyResults[96] = jobs.SteeringResult{Tick: 96}

	w.pruneSteeringState(100)

	if _, ok := w.aiPendingRequests[1]; ok {
		t.Fatal("old pending request should be pruned")
	}
	if _, ok := w.aiReadyResults[2]; ok {
		t.Fatal("old ready result should be pruned")
	}
	if _, ok := w.aiPendingRequests[95]; !ok {
		t.Fatal("recent pending request must survive")
	}
	if _, ok := w.aiReadyResults[96]; !ok {
		t.Fatal("recent ready result must survive")
	}
}

func TestSubmitSteeringSkipsWithoutEnemies(t *testing.T) {
	w := NewWorld(5)
	defer w.Close()

	w.submitSteeringJob(1)
	if len(w.aiPendingRequests) != 0 {
		t.Fatal("no enemies means no job")
	}
}

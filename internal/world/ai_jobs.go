package world

import (
	"runtime"

	"arena-lab/internal/jobs"
)

// steerHint is the per-enemy view of a steering result.
type steerHint struct {
	Sep   Vec2
	Dodge Vec2
}

func newSteeringPool() *jobs.SteeringPool {
	workers := runtime.NumCPU() / 2
	if workers < 1 {
		workers = 1
	}
	if workers > 4 {
		workers = 4
	}

	return jobs.NewSteeringPool(workers, 16)
}

func (w *World) drainSteeringResults() {
	if w.aiPool == nil {
		return
	}

	for {
		select {
		case res := <-w.aiPool.Res:
			// Drop stale results that are older than the previous tick window.
			if res.Tick+1 < w.aiTick {
				continue
			}
			w.aiReadyResults[res.Tick] = res
		default:
			return
		}
	}
}

func (w *World) consumeSteeringForTick(tick uint64) map[int]steerHint {
	w.drainSteeringResults()

	if res, ok := w.aiReadyResults[tick]; ok {
		delete(w.aiReadyResults, tick)
		delete(w.aiPendingRequests, tick)
		return hintsFromResult(res)
	}

	// Deterministic fallback: compute synchronously from the exact snapshot
	// that was submitted for this tick if workers were late.
	if req, ok := w.aiPendingRequests[tick]; ok {
		delete(w.aiPendingRequests, tick)
		return hintsFromResult(jobs.ComputeSteering(req))
	}

	return nil
}

func (w *World) submitSteeringJob(tick uint64) {
	if w.aiPool == nil || len(w.Enemies) == 0 {
		return
	}

	req := jobs.SteeringRequest{
		Tick:    tick,
		PlayerX: w.Player.Pos.X,
		PlayerY: w.Player.Pos.Y,
		Units:   make([]jobs.UnitSnapshot, len(w.Enemies)),
	}

	for i := range w.Enemies {
		e := &w.Enemies[i]
		req.Units[i] = jobs.UnitSnapshot{
			UnitID:    e.ID,
			X:         e.Pos.X,
			Y:         e.Pos.Y,
			Radius:    e.R,
			SepRadius: separationRadius(e.Behavior),
			Dodges:    e.Behavior == BehaviorSwarm || e.Behavior == BehaviorChaser,
			DodgeDist: dodgeDistance(e.Behavior),
		}
	}

	for i := range w.Projectiles {
		pr := &w.Projectiles[i]
		if pr.Owner != OwnerPlayer {
			continue
		}
		req.Shots = append(req.Shots, jobs.ShotSnapshot{
			X:    pr.Pos.X,
			Y:    pr.Pos.Y,
			VelX: pr.Vel.X,
			VelY: pr.Vel.Y,
		})
	}

	w.aiPendingRequests[tick] = req

	select {
	case w.aiPool.Req <- req:
	default:
		// Queue full: synchronous fallback at consume time will handle it.
	}

	w.pruneSteeringState(tick)
}

func (w *World) pruneSteeringState(currentTick uint64) {
	if currentTick <= 8 {
		return
	}

	cutoff := currentTick - 8
	for tick := range w.aiPendingRequests {
		if tick < cutoff {
			delete(w.aiPendingRequests, tick)
		}
	}
	for tick := range w.aiReadyResults {
		if tick < cutoff {
			delete(w.aiReadyResults, tick)
		}
	}
}

func hintsFromResult(res jobs.SteeringResult) map[int]steerHint {
	if len(res.Items) == 0 {
		return nil
	}

	out := make(map[int]steerHint, len(res.Items))
	for _, it := range res.Items {
		out[it.UnitID] = steerHint{
			Sep:   Vec2{it.SepX, it.SepY},
			Dodge: Vec2{it.DodgeX, it.DodgeY},
		}
	}
	return out
}

func separationRadius(b Behavior) float64 {
	switch b {
	case BehaviorSwarm:
		return 30
	case BehaviorCharger:
		return 60
	default:
		return 44
	}
}

// Chasers flinch later than swarm units so they still press the player.
func dodgeDistance(b Behavior) float64 {
	if b == BehaviorChaser {
		return 70
	}
	return 90
}

package game

import (
	"time"

	"arena-lab/internal/assets"
	"arena-lab/internal/telemetry"
	"arena-lab/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Game struct {
	w    *world.World
	snap world.Snapshot

	difficulty world.Difficulty

	// fixed tick
	accum     time.Duration
	last      time.Time
	fixedStep time.Duration

	// asset loader
	loader *assets.Loader
	assets *AssetManager

	// telemetry sink
	telemetry *telemetry.Sink

	// run results land in the highscore file once per run
	runRecorded bool
	scorePath   string
}

func New() *Game {
	g := &Game{
		w:          world.NewWorld(time.Now().UnixNano()),
		difficulty: world.DifficultyNormal,
		last:       time.Now(),
		fixedStep:  time.Second / 60,
		scorePath:  "highscores.json",
	}
	g.loader = assets.NewLoader()
	g.assets = NewAssetManager(g.loader)
	g.telemetry = telemetry.NewSink()

	// schedule loads early
	g.assets.Request("player", "assets/player.png")
	g.assets.Request("floor", "assets/floor.png")

	g.snap = g.w.BuildSnapshot()
	return g
}

func (g *Game) Update() error {
	now := time.Now()
	g.assets.Poll()

	frameDt := now.Sub(g.last)
	g.last = now

	// avoid spiral of death on long pauses
	if frameDt > 250*time.Millisecond {
		frameDt = 250 * time.Millisecond
	}
	g.sendTelemetry(telemetry.Event{
		Kind: "frame",
		F:    float32(frameDt.Seconds()),
		At:   now,
	})

	g.accum += frameDt

	in := ReadIntent()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.w.Enqueue(world.MsgRestart{Difficulty: g.difficulty})
		g.runRecorded = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.w.Enqueue(world.MsgTogglePause{})
	}
	g.readDifficultySelect()

	// fixed-step simulation; edge-triggered actions only count once per frame
	first := true
	for g.accum >= g.fixedStep {
		step := in
		if !first {
			step.Dash = false
			step.Ultra = false
		}
		first = false

		evs := g.w.Update(g.fixedStep.Seconds(), step)
		g.handleEvents(evs, now)

		g.accum -= g.fixedStep
	}

	g.snap = g.w.BuildSnapshot()
	return nil
}

// Difficulty keys only apply on the end screen so a stray keypress cannot
// flip a live run.
func (g *Game) readDifficultySelect() {
	if !g.snap.GameOver {
		return
	}

	pick := func(d world.Difficulty) {
		g.difficulty = d
		g.w.Enqueue(world.MsgRestart{Difficulty: d})
		g.runRecorded = false
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key1) || inpututil.IsKeyJustPressed(ebiten.KeyKP1):
		pick(world.DifficultyEasy)
	case inpututil.IsKeyJustPressed(ebiten.Key2) || inpututil.IsKeyJustPressed(ebiten.KeyKP2):
		pick(world.DifficultyNormal)
	case inpututil.IsKeyJustPressed(ebiten.Key3) || inpututil.IsKeyJustPressed(ebiten.KeyKP3):
		pick(world.DifficultyHard)
	}
}

func (g *Game) handleEvents(evs []world.Event, at time.Time) {
	for _, ev := range evs {
		switch ev.Kind {
		case world.EventEnemyKilled:
			g.sendTelemetry(telemetry.Event{Kind: "kill", I: 1, At: at})

		case world.EventPlayerHit:
			g.sendTelemetry(telemetry.Event{Kind: "damage", F: float32(ev.Amount), At: at})

		case world.EventWaveCleared:
			g.sendTelemetry(telemetry.Event{Kind: "wave", I: ev.Wave, At: at})

		case world.EventPowerUpCollected:
			g.sendTelemetry(telemetry.Event{Kind: "powerup", I: 1, At: at})

		case world.EventRunEnded:
			if !g.runRecorded {
				g.runRecorded = true
				g.recordRun(g.w.BuildSnapshot(), at)
			}
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawWorld(screen, g.snap, g.assets)
}

func (g *Game) Layout(outsideW, outsideH int) (int, int) {
	return outsideW, outsideH
}

func (g *Game) Close() {
	if g.loader != nil {
		g.loader.Close()
		g.loader = nil
	}
	if g.telemetry != nil {
		g.telemetry.Close()
		g.telemetry = nil
	}
	if g.w != nil {
		g.w.Close()
		g.w = nil
	}
}

func (g *Game) sendTelemetry(ev telemetry.Event) {
	if g.telemetry == nil {
		return
	}

	select {
	case g.telemetry.In <- ev:
	default:
		// Drop on backpressure to avoid stalling the fixed-step loop.
	}
}

package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"arena-lab/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var enemyColors = map[world.Behavior]color.RGBA{
	world.BehaviorChaser:   {220, 80, 80, 255},
	world.BehaviorRanged:   {230, 150, 70, 255},
	world.BehaviorSwarm:    {190, 90, 190, 255},
	world.BehaviorCharger:  {240, 110, 60, 255},
	world.BehaviorTank:     {150, 110, 90, 255},
	world.BehaviorSpitter:  {120, 190, 80, 255},
	world.BehaviorFlyer:    {90, 170, 230, 255},
	world.BehaviorEngineer: {200, 200, 110, 255},
	world.BehaviorBomber:   {230, 90, 140, 255},
}

var projectileColors = map[world.ProjectileKind]color.RGBA{
	world.ProjBullet:  {255, 240, 160, 255},
	world.ProjSpread:  {255, 200, 120, 255},
	world.ProjPlasma:  {140, 220, 255, 255},
	world.ProjMissile: {255, 140, 90, 255},
	world.ProjBomb:    {255, 90, 90, 255},
}

var powerUpColors = map[world.PowerUpKind]color.RGBA{
	world.PowerHeal:     {110, 230, 120, 255},
	world.PowerDamage:   {240, 120, 90, 255},
	world.PowerSpeed:    {120, 200, 255, 255},
	world.PowerFireRate: {255, 220, 110, 255},
	world.PowerShield:   {150, 160, 255, 255},
	world.PowerLaser:    {255, 110, 110, 255},
	world.PowerVortex:   {200, 120, 255, 255},
	world.PowerWeapon:   {255, 255, 255, 255},
	world.PowerUltra:    {255, 200, 255, 255},
}

func drawWorld(screen *ebiten.Image, s world.Snapshot, am *AssetManager) {
	screen.Fill(color.RGBA{15, 15, 18, 255})

	// camera centered on the player, jittered by screen shake
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	shakeX := s.Shake * math.Sin(s.Time*73)
	shakeY := s.Shake * math.Cos(s.Time*91)
	camX := float32(float64(sw)/2 - s.Player.Pos.X + shakeX)
	camY := float32(float64(sh)/2 - s.Player.Pos.Y + shakeY)

	wx := func(v world.Vec2) (float32, float32) {
		return camX + float32(v.X), camY + float32(v.Y)
	}

	// arena floor
	vector.FillCircle(screen, camX, camY, float32(s.RoomRadius), color.RGBA{30, 30, 36, 255}, false)
	vector.StrokeCircle(screen, camX, camY, float32(s.RoomRadius), 3, color.RGBA{70, 70, 84, 255}, false)

	for _, o := range s.Obstacles {
		clr := color.RGBA{90, 90, 104, 255}
		switch o.Kind {
		case world.ObstacleCrystal:
			clr = color.RGBA{110, 140, 170, 255}
		case world.ObstacleCrate:
			clr = color.RGBA{130, 110, 80, 255}
		}
		x, y := wx(o.Pos)
		vector.FillCircle(screen, x, y, float32(o.Radius), clr, false)
	}

	for _, tr := range s.Traps {
		x, y := wx(tr.Pos)
		if tr.Warn {
			vector.StrokeCircle(screen, x, y, float32(tr.Radius), 2, color.RGBA{255, 120, 60, 170}, false)
			continue
		}
		clr := color.RGBA{255, 170, 60, 120}
		if tr.T >= tr.ArmedDelay {
			clr = color.RGBA{255, 90, 40, 200}
		}
		vector.StrokeCircle(screen, x, y, float32(tr.Radius), 2, clr, false)
		vector.FillCircle(screen, x, y, 4, clr, false)
	}

	for _, th := range s.Thunders {
		x0, y0 := wx(th.Start)
		x1, y1 := wx(th.End)
		if th.T < th.Warn {
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, color.RGBA{255, 255, 140, 110}, false)
		} else {
			vector.StrokeLine(screen, x0, y0, x1, y1, float32(th.Thickness), color.RGBA{255, 255, 190, 230}, false)
		}
	}

	for _, l := range s.Lasers {
		x0, y0 := wx(l.Start)
		x1, y1 := wx(l.End)
		clr := color.RGBA{l.Color[0], l.Color[1], l.Color[2], 255}
		if l.T < l.Warn {
			clr.A = 90
			vector.StrokeLine(screen, x0, y0, x1, y1, 2, clr, false)
		} else {
			vector.StrokeLine(screen, x0, y0, x1, y1, float32(l.Thickness), clr, false)
		}
	}

	for _, pu := range s.PowerUps {
		x, y := wx(pu.Pos)
		r := float32(7)
		if pu.Kind == world.PowerWeapon || pu.Kind == world.PowerUltra {
			r = 10
		}
		vector.FillCircle(screen, x, y, r, powerUpColors[pu.Kind], false)
	}

	for _, e := range s.Enemies {
		x, y := wx(e.Pos)
		clr, ok := enemyColors[e.Behavior]
		if !ok {
			clr = color.RGBA{180, 60, 200, 255} // bosses
		}
		if e.HitT > 0 {
			clr = color.RGBA{255, 230, 230, 255}
		}
		vector.FillCircle(screen, x, y, float32(e.R), clr, false)

		if e.Behavior.IsBoss() {
			vector.StrokeCircle(screen, x, y, float32(e.R)+4, 2, color.RGBA{255, 210, 90, 255}, false)
			drawBar(screen, x-30, y-float32(e.R)-12, 60, 5, e.HP/e.MaxHP, color.RGBA{230, 70, 70, 255})
		}
	}

	for _, pr := range s.Projectiles {
		x, y := wx(pr.Pos)
		r := float32(3)
		if pr.Kind == world.ProjBomb || pr.Kind == world.ProjMissile {
			r = 5
		}
		clr := projectileColors[pr.Kind]
		if pr.Owner == world.OwnerEnemy {
			clr = color.RGBA{255, 110, 110, 255}
		}
		vector.FillCircle(screen, x, y, r, clr, false)
	}

	drawPlayer(screen, s, am, camX, camY)
	drawHUD(screen, s, sw, sh)
}

func drawPlayer(screen *ebiten.Image, s world.Snapshot, am *AssetManager, camX, camY float32) {
	x, y := camX+float32(s.Player.Pos.X), camY+float32(s.Player.Pos.Y)

	if img := am.Get("player"); img != nil {
		op := &ebiten.DrawImageOptions{}
		b := img.Bounds()
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Translate(float64(x), float64(y))
		screen.DrawImage(img, op)
	} else {
		clr := color.RGBA{80, 200, 120, 255}
		if s.Player.HurtTimer > 0 {
			clr = color.RGBA{220, 250, 220, 255}
		}
		if s.Player.Dash.Active {
			clr = color.RGBA{150, 240, 255, 255}
		}
		vector.FillCircle(screen, x, y, 14, clr, false)
	}

	// aim tick
	ax := x + float32(s.Player.AimDir.X*20)
	ay := y + float32(s.Player.AimDir.Y*20)
	vector.StrokeLine(screen, x, y, ax, ay, 2, color.RGBA{220, 220, 220, 180}, false)

	if s.Time < s.Player.VortexUntil {
		vector.StrokeCircle(screen, x, y, 110, 1, color.RGBA{200, 120, 255, 120}, false)
	}
}

func drawBar(screen *ebiten.Image, x, y, w, h float32, frac float64, clr color.RGBA) {
	frac = math.Max(0, math.Min(1, frac))
	vector.FillRect(screen, x, y, w, h, color.RGBA{40, 40, 48, 220}, false)
	vector.FillRect(screen, x, y, w*float32(frac), h, clr, false)
}

func drawHUD(screen *ebiten.Image, s world.Snapshot, sw, sh int) {
	ultra := "charging"
	if s.UltraReady() {
		ultra = "READY (Q)"
	} else if s.Player.UltraCharges == 0 {
		ultra = "none"
	}

	hud := fmt.Sprintf(
		"HP: %.0f/%.0f  Shield: %.0f  Dash: %d\nWave: %d  Enemies: %d\nScore: %.0f  x%.2f (best x%.2f)\nKills: %d  Weapon: %s\nUltra: %s\nDifficulty: %s  Time: %.1fs",
		s.Player.HP, s.Player.MaxHP, s.Player.Shield, s.Player.Dash.Charges,
		s.Wave, len(s.Enemies),
		s.Score.Score, s.Score.Combo, s.Score.BestCombo,
		s.Score.Kills, s.Player.Weapon,
		ultra,
		s.Difficulty, s.Time,
	)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	if s.WaveActive && s.WaveCombo != "" {
		combo := fmt.Sprintf("Incoming: %s (threat %.0f)", s.WaveCombo, s.WaveThreat)
		ebitenutil.DebugPrintAt(screen, combo, 8, sh-20)
	}

	drawBar(screen, 8, 96, 120, 6, s.Player.HP/s.Player.MaxHP, color.RGBA{90, 210, 120, 255})
	if s.Player.Shield > 0 {
		drawBar(screen, 8, 104, 120, 4, s.Player.Shield/50, color.RGBA{150, 160, 255, 255})
	}

	// ---- modal overlays ----
	if s.GameOver {
		vector.FillRect(screen, 0, 0, float32(sw), float32(sh), color.RGBA{0, 0, 0, 150}, false)
		lines := []string{
			"RUN OVER",
			fmt.Sprintf("Score: %.0f", s.Score.Score),
			fmt.Sprintf("Wave: %d  Kills: %d", s.Wave, s.Score.Kills),
			fmt.Sprintf("Best combo: x%.2f", s.Score.BestCombo),
			fmt.Sprintf("Time: %.1fs", s.Time),
			"",
			"R: restart   1/2/3: easy/normal/hard",
		}
		ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), sw/2-100, sh/2-60)
		return
	}

	if s.Paused {
		vector.FillRect(screen, 0, 0, float32(sw), float32(sh), color.RGBA{0, 0, 0, 110}, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED\nEsc/P: resume   R: restart", sw/2-80, sh/2-10)
	}
}

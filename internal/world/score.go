package world

// ScoreState tracks run score with a decaying kill-combo multiplier.
type ScoreState struct {
	Score      float64
	Kills      int
	Combo      float64
	BestCombo  float64
	comboTimer float64
}

func newScoreState() ScoreState {
	return ScoreState{Combo: 1}
}

func (w *World) scoreKill(b Behavior) {
	s := &w.Score
	s.Kills++
	s.Combo += w.Cfg.ComboStep
	if s.Combo > w.Cfg.ComboMax {
		s.Combo = w.Cfg.ComboMax
	}
	if s.Combo > s.BestCombo {
		s.BestCombo = s.Combo
	}
	s.comboTimer = w.Cfg.ComboHold

	pts := killPoints[b]
	if pts == 0 {
		pts = 100
	}
	s.Score += pts * s.Combo
}

func (w *World) scoreWaveClear(wave int, boss bool) {
	bonus := 500 + float64(wave)*150
	if boss {
		bonus += 3000
	}
	w.Score.Score += bonus * w.Score.Combo
}

// taking a hit drops the combo back to baseline
func (w *World) scorePlayerHit() {
	w.Score.Combo = 1
	w.Score.comboTimer = 0
}

func (w *World) updateScore(dt float64) {
	s := &w.Score
	if s.comboTimer > 0 {
		s.comboTimer -= dt
		return
	}
	if s.Combo > 1 {
		s.Combo -= w.Cfg.ComboDecay * dt
		if s.Combo < 1 {
			s.Combo = 1
		}
	}
}

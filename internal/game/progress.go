package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"arena-lab/internal/commons/logger_config"
	"arena-lab/internal/world"
)

const highscoreVersion = 1

const highscoresPerDifficulty = 5

type HighscoreEntry struct {
	At        time.Time `json:"at"`
	Score     int       `json:"score"`
	Wave      int       `json:"wave"`
	Kills     int       `json:"kills"`
	BestCombo float64   `json:"best_combo"`
	Time      float64   `json:"time_survived"`
}

type HighscoreFile struct {
	Version int `json:"version"`

	// keyed by difficulty name so tables stay separate
	Tables map[string][]HighscoreEntry `json:"tables"`
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func saveJSONAtomic(path string, v any) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	if err := ensureParentDir(path); err != nil {
		return fmt.Errorf("ensure parent dir: %w", err)
	}
	blob, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func loadHighscores(path string) (HighscoreFile, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return HighscoreFile{}, err
	}
	var hs HighscoreFile
	if err := json.Unmarshal(blob, &hs); err != nil {
		return HighscoreFile{}, err
	}
	if hs.Version == 0 {
		hs.Version = highscoreVersion
	}
	return hs, nil
}

func saveHighscores(path string, hs HighscoreFile) error {
	hs.Version = highscoreVersion
	return saveJSONAtomic(path, hs)
}

// addHighscore inserts the entry into its difficulty table, keeping the table
// sorted and capped.
func addHighscore(hs *HighscoreFile, difficulty string, e HighscoreEntry) {
	if hs.Tables == nil {
		hs.Tables = map[string][]HighscoreEntry{}
	}

	table := append(hs.Tables[difficulty], e)
	sortHighscores(table)
	if len(table) > highscoresPerDifficulty {
		table = table[:highscoresPerDifficulty]
	}
	hs.Tables[difficulty] = table
}

func sortHighscores(entries []HighscoreEntry) {
	slices.SortFunc(entries, func(a, b HighscoreEntry) int {
		if a.Score != b.Score {
			if a.Score > b.Score {
				return -1
			}
			return 1
		}
		if a.Wave != b.Wave {
			if a.Wave > b.Wave {
				return -1
			}
			return 1
		}
		if a.Kills != b.Kills {
			if a.Kills > b.Kills {
				return -1
			}
			return 1
		}
		return 0
	})
}

func (g *Game) recordRun(s world.Snapshot, at time.Time) {
	hs, err := loadHighscores(g.scorePath)
	if err != nil && !os.IsNotExist(err) {
		logger_config.Warnf("[progress] load highscores: %v", err)
	}

	addHighscore(&hs, s.Difficulty.String(), HighscoreEntry{
		At:        at,
		Score:     int(s.Score.Score),
		Wave:      s.Wave,
		Kills:     s.Score.Kills,
		BestCombo: s.Score.BestCombo,
		Time:      s.Time,
	})

	if err := saveHighscores(g.scorePath, hs); err != nil {
		logger_config.Warnf("[progress] save highscores: %v", err)
	}
}

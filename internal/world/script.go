package world

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"arena-lab/internal/shared/input"
)

// A Script is a recorded input track. Playing one against a fresh world with
// the same seed and step size must reproduce the run exactly; the soak tests
// lean on this to pin down determinism regressions.

const ScriptVersion = 1

type ScriptHeader struct {
	Version          int     `json:"version"`
	FixedStepSeconds float64 `json:"fixed_step_seconds"`
	Seed             int64   `json:"seed"`
	Difficulty       int     `json:"difficulty"`
	ConfigHash       string  `json:"config_hash"`
}

type ScriptFrame struct {
	Tick    uint64       `json:"tick"`
	Input   input.Intent `json:"input"`
	Restart bool         `json:"restart"`
	Pause   bool         `json:"pause"`
}

type ScriptFile struct {
	Header ScriptHeader  `json:"header"`
	Frames []ScriptFrame `json:"frames"`
}

func BuildScriptHeader(seed int64, d Difficulty, fixedStepSeconds float64) (ScriptHeader, error) {
	cfgBlob, err := json.Marshal(DefaultConfig())
	if err != nil {
		return ScriptHeader{}, fmt.Errorf("marshal script config: %w", err)
	}
	sum := sha256.Sum256(cfgBlob)
	return ScriptHeader{
		Version:          ScriptVersion,
		FixedStepSeconds: fixedStepSeconds,
		Seed:             seed,
		Difficulty:       int(d),
		ConfigHash:       hex.EncodeToString(sum[:]),
	}, nil
}

// PlayScript steps a fresh world through the script and returns it.
func PlayScript(sc ScriptFile) (*World, error) {
	if sc.Header.Version != ScriptVersion {
		return nil, fmt.Errorf("unsupported script version: got %d want %d", sc.Header.Version, ScriptVersion)
	}
	if sc.Header.FixedStepSeconds <= 0 {
		return nil, fmt.Errorf("invalid fixed step: %.6f", sc.Header.FixedStepSeconds)
	}

	w := NewWorldWithDifficulty(sc.Header.Seed, Difficulty(sc.Header.Difficulty))
	dt := sc.Header.FixedStepSeconds

	frameIdx := 0
	var tick uint64
	for frameIdx < len(sc.Frames) {
		fr := sc.Frames[frameIdx]
		var in input.Intent
		if fr.Tick == tick {
			in = fr.Input
			if fr.Restart {
				w.Enqueue(MsgRestart{Difficulty: Difficulty(sc.Header.Difficulty)})
			}
			if fr.Pause {
				w.Enqueue(MsgTogglePause{})
			}
			frameIdx++
		}
		w.Update(dt, in)
		tick++
	}
	return w, nil
}

func SaveScriptFile(path string, sc ScriptFile) error {
	if path == "" {
		return fmt.Errorf("script path is empty")
	}
	if sc.Header.Version != ScriptVersion {
		return fmt.Errorf("unsupported script version: got %d want %d", sc.Header.Version, ScriptVersion)
	}
	blob, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal script: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure script dir: %w", err)
		}
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, blob, 0o644); err != nil {
		return fmt.Errorf("write script temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename script temp file: %w", err)
	}
	return nil
}

func LoadScriptFile(path string) (ScriptFile, error) {
	if path == "" {
		return ScriptFile{}, fmt.Errorf("script path is empty")
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return ScriptFile{}, fmt.Errorf("read script file: %w", err)
	}

	var sc ScriptFile
	if err := json.Unmarshal(blob, &sc); err != nil {
		return ScriptFile{}, fmt.Errorf("decode script file: %w", err)
	}
	if sc.Header.Version != ScriptVersion {
		return ScriptFile{}, fmt.Errorf("unsupported script version: got %d want %d", sc.Header.Version, ScriptVersion)
	}
	return sc, nil
}

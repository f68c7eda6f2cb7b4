package world

import (
	"path/filepath"
	"testing"

	"arena-lab/internal/shared/input"
)

func TestScriptRoundTripReproducesRun(t *testing.T) {
	header, err := BuildScriptHeader(42, DifficultyHard, testStep)
	if err != nil {
		t.Fatalf("build header: %v", err)
	}

	sc := ScriptFile{
		Header: header,
		Frames: []ScriptFrame{
			{Tick: 0, Input: input.Intent{MoveX: 1}},
			{Tick: 30, Input: input.Intent{MoveX: 1, MoveY: -1, Firing: true, AimX: 200}},
			{Tick: 31, Input: input.Intent{Firing: true, AimX: 200}},
			{Tick: 120, Input: input.Intent{Dash: true, MoveY: 1}},
			{Tick: 240, Input: input.Intent{MoveX: -1, Firing: true, AimX: -150, AimY: 40}},
		},
	}

	path := filepath.Join(t.TempDir(), "run.script.json")
	if err := SaveScriptFile(path, sc); err != nil {
		t.Fatalf("save script: %v", err)
	}
	loaded, err := LoadScriptFile(path)
	if err != nil {
		t.Fatalf("load script: %v", err)
	}
	if len(loaded.Frames) != len(sc.Frames) {
		t.Fatalf("frame count changed: got %d want %d", len(loaded.Frames), len(sc.Frames))
	}
	if loaded.Header.ConfigHash != header.ConfigHash {
		t.Fatal("config hash changed across save/load")
	}

	played, err := PlayScript(loaded)
	if err != nil {
		t.Fatalf("play script: %v", err)
	}
	defer played.Close()

	// replay the same track by hand against a second world
	direct := NewWorldWithDifficulty(42, DifficultyHard)
	defer direct.Close()
	byTick := map[uint64]input.Intent{}
	for _, fr := range sc.Frames {
		byTick[fr.Tick] = fr.Input
	}
	last := sc.Frames[len(sc.Frames)-1].Tick
	for tick := uint64(0); tick <= last; tick++ {
		direct.Update(testStep, byTick[tick])
	}

	assertWorldEquivalent(t, played, direct)
}

func TestPlayScriptRejectsBadHeader(t *testing.T) {
	sc := ScriptFile{Header: ScriptHeader{Version: ScriptVersion + 1, FixedStepSeconds: testStep}}
	if _, err := PlayScript(sc); err == nil {
		t.Fatal("expected version mismatch error")
	}

	sc = ScriptFile{Header: ScriptHeader{Version: ScriptVersion}}
	if _, err := PlayScript(sc); err == nil {
		t.Fatal("expected invalid step error")
	}
}

func TestLoadScriptFileRejectsGarbage(t *testing.T) {
	if _, err := LoadScriptFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if err := SaveScriptFile("", ScriptFile{Header: ScriptHeader{Version: ScriptVersion}}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

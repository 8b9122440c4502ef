package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func autopilot(g *breakout.Game) breakout.InputSnapshot {
	x := g.Ball().Pos.X
	return breakout.InputSnapshot{PointerX: &x}
}

func TestResumeFromMatchesContinuousRun(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	field := core.Bounds{Width: 800, Height: 460}

	whole := breakout.Create(cfg, field, 7)
	for range 900 {
		whole.Update(autopilot(whole))
	}

	first := breakout.Create(cfg, field, 7)
	for range 400 {
		first.Update(autopilot(first))
	}
	snap := first.Snapshot()
	data, err := snap.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "half.msgpack")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	resumed := breakout.Create(cfg, core.Bounds{Width: 400, Height: 300}, 99)
	if err := resumeFrom(resumed, path); err != nil {
		t.Fatalf("resumeFrom() error: %v", err)
	}
	for range 500 {
		resumed.Update(autopilot(resumed))
	}

	want, got := whole.Snapshot(), resumed.Snapshot()
	if got.Hash() != want.Hash() {
		t.Errorf("resumed run diverged: %+v vs %+v", got, want)
	}
}

func TestResumeFromRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()
	game := breakout.Create(config.DefaultBreakoutConfig(), core.Bounds{Width: 800, Height: 460}, 1)

	if err := resumeFrom(game, filepath.Join(dir, "missing.msgpack")); err == nil {
		t.Error("missing file should fail")
	}

	garbage := filepath.Join(dir, "garbage.msgpack")
	if err := os.WriteFile(garbage, []byte{0xc1}, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := resumeFrom(game, garbage); err == nil {
		t.Error("undecodable file should fail")
	}

	snap := game.Snapshot()
	snap.Lives = 99
	data, err := snap.Encode()
	if err != nil {
		t.Fatal(err)
	}
	tampered := filepath.Join(dir, "tampered.msgpack")
	if err := os.WriteFile(tampered, data, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := resumeFrom(game, tampered); err == nil {
		t.Error("snapshot with impossible lives should fail")
	}
}

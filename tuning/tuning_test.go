package tuning

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	tu := Default()
	if tu.Player.Gravity != 0.45 {
		t.Fatalf("expected gravity 0.45, got %v", tu.Player.Gravity)
	}
	if tu.Player.JumpForce != -9 {
		t.Fatalf("expected jump force -9, got %v", tu.Player.JumpForce)
	}
	if tu.Player.MaxHealth != 5 {
		t.Fatalf("expected max health 5, got %d", tu.Player.MaxHealth)
	}
	if tu.Trap.CaptureFrames != 120 {
		t.Fatalf("expected trap countdown 120, got %d", tu.Trap.CaptureFrames)
	}

	// Default hands out copies
	tu.Player.Gravity = 99
	if Default().Player.Gravity != 0.45 {
		t.Fatalf("mutating a default copy leaked into the embedded tuning")
	}
}

func TestDifficultyScaling(t *testing.T) {
	e := Default().Enemy
	cases := []struct {
		level int
		hp    int
		scale float64
	}{
		{0, 4, 1},
		{2, 6, 1.3},
		{4, 8, 1.6},
	}
	for _, c := range cases {
		if got := e.HP(c.level); got != c.hp {
			t.Fatalf("level %d: expected hp %d, got %d", c.level, c.hp, got)
		}
		if got := e.SizeScale(c.level); got < c.scale-1e-9 || got > c.scale+1e-9 {
			t.Fatalf("level %d: expected scale %v, got %v", c.level, c.scale, got)
		}
	}
}

func TestParseOverlay(t *testing.T) {
	tu, err := Parse([]byte("player:\n  speed: 5\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tu.Player.Speed != 5 {
		t.Fatalf("expected overridden speed 5, got %v", tu.Player.Speed)
	}
	if tu.Player.Gravity != 0.45 {
		t.Fatalf("expected untouched gravity, got %v", tu.Player.Gravity)
	}

	if _, err := Parse([]byte("player:\n  start_health: 9\n")); err == nil {
		t.Fatalf("expected start_health above max to be rejected")
	}
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, File)
	if err := os.WriteFile(path, []byte("player:\n  speed: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-w.Events:
		if filepath.Base(got) != File {
			t.Fatalf("expected %s event, got %s", File, got)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

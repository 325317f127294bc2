package progress

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "progress.db")

	s, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	n, err := s.Load(ctx)
	if err != nil || n != DefaultUnlocked {
		t.Fatalf("expected default %d, got %d err=%v", DefaultUnlocked, n, err)
	}
	if err := s.Save(ctx, 3); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(ctx, 4); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()
	for i := 0; i < 2; i++ {
		n, err := s.Load(ctx)
		if err != nil || n != 4 {
			t.Fatalf("read %d: expected 4, got %d err=%v", i, n, err)
		}
	}
}

func TestSQLiteBadValue(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "progress.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()
	if _, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, Key, "NaN"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	n, err := s.Load(ctx)
	if err == nil || n != DefaultUnlocked {
		t.Fatalf("expected default with error, got %d err=%v", n, err)
	}
}

func TestTrackerComplete(t *testing.T) {
	tests := []struct {
		name         string
		stored       int
		index        int
		wantNext     int
		wantVictory  bool
		wantUnlocked int
	}{
		{"first_clear", 1, 0, 1, false, 2},
		{"replay_keeps_count", 4, 0, 1, false, 4},
		{"extends_count", 3, 2, 3, false, 4},
		{"last_level", 5, 4, 0, true, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewMemoryStore()
			_ = store.Save(ctx, tc.stored)

			tr := NewTracker(ctx, store, 5)
			next, victory, err := tr.Complete(ctx, tc.index)
			if err != nil {
				t.Fatalf("Complete failed: %v", err)
			}
			if next != tc.wantNext || victory != tc.wantVictory {
				t.Fatalf("expected next=%d victory=%v, got %d %v", tc.wantNext, tc.wantVictory, next, victory)
			}
			if tr.Unlocked() != tc.wantUnlocked {
				t.Fatalf("expected unlocked %d, got %d", tc.wantUnlocked, tr.Unlocked())
			}
			if got, _ := store.Load(ctx); got != tc.wantUnlocked {
				t.Fatalf("expected stored %d, got %d", tc.wantUnlocked, got)
			}
		})
	}
}

func TestTrackerIsUnlocked(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Save(ctx, 2)
	tr := NewTracker(ctx, store, 5)

	for i, want := range []bool{true, true, false, false, false} {
		if got := tr.IsUnlocked(i); got != want {
			t.Fatalf("level %d: expected %v, got %v", i, want, got)
		}
	}
	if tr.IsUnlocked(-1) || tr.IsUnlocked(5) {
		t.Fatalf("out of range levels must be locked")
	}
}

func TestTrackerSetLevels(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	_ = store.Save(ctx, 5)
	tr := NewTracker(ctx, store, 5)

	t.Run("grow", func(t *testing.T) {
		tr.SetLevels(6)
		if tr.IsUnlocked(5) {
			t.Fatalf("new level should start locked")
		}
		next, victory, err := tr.Complete(ctx, 4)
		if err != nil {
			t.Fatalf("Complete failed: %v", err)
		}
		if victory || next != 5 {
			t.Fatalf("expected next=5 without victory, got %d %v", next, victory)
		}
		if !tr.IsUnlocked(5) {
			t.Fatalf("expected level 6 unlocked")
		}
	})

	t.Run("shrink", func(t *testing.T) {
		tr.SetLevels(3)
		if tr.IsUnlocked(3) {
			t.Fatalf("levels past the catalog must be locked")
		}
		if _, victory, _ := tr.Complete(ctx, 2); !victory {
			t.Fatalf("expected victory on the new last level")
		}
		if tr.Unlocked() != 6 {
			t.Fatalf("stored count should be kept, got %d", tr.Unlocked())
		}
	})
}

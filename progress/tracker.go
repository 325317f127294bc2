package progress

import (
	"context"
	"log"
)

// Tracker owns the unlocked-level count for a session. It reads the store
// once and writes only when the count grows.
type Tracker struct {
	store    Store
	levels   int
	unlocked int
}

// NewTracker loads the stored count. A failed read logs and starts from
// DefaultUnlocked.
func NewTracker(ctx context.Context, store Store, levels int) *Tracker {
	if store == nil {
		store = NewMemoryStore()
	}
	n, err := store.Load(ctx)
	if err != nil {
		log.Printf("progress: %v", err)
	}
	if n < DefaultUnlocked {
		n = DefaultUnlocked
	}
	return &Tracker{store: store, levels: levels, unlocked: n}
}

func (t *Tracker) Unlocked() int { return t.unlocked }

// SetLevels updates the catalog size after the level list changes. The
// unlocked count is kept as stored.
func (t *Tracker) SetLevels(n int) {
	if n < 0 {
		n = 0
	}
	t.levels = n
}

// IsUnlocked reports whether the zero-based level index can be played.
func (t *Tracker) IsUnlocked(index int) bool {
	return index >= 0 && index < t.levels && index+1 <= t.unlocked
}

// Complete records clearing level index. It returns the next index to play,
// or victory when index was the last level. Clearing a level unlocks the one
// after it.
func (t *Tracker) Complete(ctx context.Context, index int) (next int, victory bool, err error) {
	if index+1 >= t.levels {
		return 0, true, nil
	}
	if unlock := index + 2; unlock > t.unlocked {
		t.unlocked = unlock
		err = t.store.Save(ctx, unlock)
	}
	return index + 1, false, err
}

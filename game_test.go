package main

import (
	"testing"
	"time"

	"github.com/milk9111/forestsurvivor/tuning"
)

func TestReloadReturnsAfterWatcherErrorsClose(t *testing.T) {
	errs := make(chan error)
	close(errs)
	g := &Game{watcher: &tuning.Watcher{Events: make(chan string), Errors: errs}}

	done := make(chan struct{})
	go func() {
		g.reload()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("reload kept polling a closed error channel")
	}
	if g.watcher == nil || g.watcher.Errors != nil {
		t.Fatalf("expected watcher kept with errors detached")
	}
}

func TestReloadDropsClosedWatcher(t *testing.T) {
	events := make(chan string)
	close(events)
	g := &Game{watcher: &tuning.Watcher{Events: events, Errors: make(chan error)}}

	g.reload()

	if g.watcher != nil {
		t.Fatalf("expected watcher dropped once events close")
	}
}

package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, func() { changed <- struct{}{} })
	}()

	// Give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	l := NewList()
	l.Add("watched", 1)
	if _, err := NewFileStore(dir).Save(ctx, l); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("Expected change notification after saving a task")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil error after cancel, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	err := Watch(context.Background(), "/nonexistent/tisk/dir", func() {})
	if err == nil {
		t.Error("Expected error watching a missing directory")
	}
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: "/p/.tisk/1.yaml", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "/p/.tisk/1.yaml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/p/.tisk/.checkout", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "/p/.tisk/tasks.db", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/p/.tisk/1.yaml.tmp", Op: fsnotify.Create}, false},
		{fsnotify.Event{Name: "/p/.tisk/config.yaml", Op: fsnotify.Write}, false},
		{fsnotify.Event{Name: "/p/.tisk/1.yaml", Op: fsnotify.Chmod}, false},
	}
	for _, tt := range tests {
		if got := relevant(tt.event); got != tt.want {
			t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
		}
	}
}

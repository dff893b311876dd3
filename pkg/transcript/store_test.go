package transcript

import (
	"path/filepath"
	"testing"
)

func TestAppendAndReadBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	turns := []Turn{
		{Number: 1, Actor: 9, Input: "look", Response: "The Living Room"},
		{Number: 2, Actor: 9, Input: "west", Response: "The Garden"},
		{Number: 3, Actor: 9, Input: "take shovel", Response: "Taken."},
	}
	for _, turn := range turns {
		if err := store.Append(turn); err != nil {
			t.Fatalf("Append turn %d: %v", turn.Number, err)
		}
	}

	got, err := store.Turns(store.Session())
	if err != nil {
		t.Fatalf("Turns: %v", err)
	}
	if len(got) != len(turns) {
		t.Fatalf("read back %d turns, want %d", len(got), len(turns))
	}
	for i, want := range turns {
		if got[i] != want {
			t.Errorf("turn %d = %+v, want %+v", i, got[i], want)
		}
	}
}

func TestSessionsAccumulate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	firstSession := first.Session()
	if err := first.Append(Turn{Number: 1, Input: "look", Response: "ok"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// Reopening starts a fresh session but keeps the old one.
	second, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	sessions, err := second.Sessions()
	if err != nil {
		t.Fatalf("Sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2: %v", len(sessions), sessions)
	}

	old, err := second.Turns(firstSession)
	if err != nil {
		t.Fatalf("Turns(old session): %v", err)
	}
	if len(old) != 1 || old[0].Input != "look" {
		t.Errorf("old session turns = %+v", old)
	}

	if _, err := second.Turns("never-happened"); err == nil {
		t.Error("Turns of unknown session succeeded, want error")
	}
}

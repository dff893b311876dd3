package game

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/willowmere/gofiction/pkg/content"
	"github.com/willowmere/gofiction/pkg/mecs"
	"github.com/willowmere/gofiction/pkg/transcript"
	"github.com/willowmere/gofiction/pkg/world"
)

func TestRunUntilEOF(t *testing.T) {
	sc := mecs.NewScene()
	if _, err := content.Build(sc, content.Default()); err != nil {
		t.Fatalf("building demo world: %v", err)
	}
	console := &scriptConsole{lines: []string{"west", "inventory"}}
	g := NewGame(sc, console, quietLogger())

	g.Run()

	if !g.Done() {
		t.Error("Run returned but Done() = false")
	}
	if len(console.out) != 3 {
		t.Fatalf("got %d responses, want 3 (opening look + 2 turns): %q", len(console.out), console.out)
	}
	if !strings.HasPrefix(console.out[0], "The Living Room") {
		t.Errorf("opening response = %q, want the starting room", console.out[0])
	}
	if !strings.HasPrefix(console.out[1], "The Garden") {
		t.Errorf("west response = %q, want The Garden", console.out[1])
	}
	if console.out[2] != "You are carrying nothing." {
		t.Errorf("inventory response = %q", console.out[2])
	}
}

func TestRunSkipsEmptyLines(t *testing.T) {
	sc := mecs.NewScene()
	if _, err := content.Build(sc, content.Default()); err != nil {
		t.Fatalf("building demo world: %v", err)
	}
	console := &scriptConsole{lines: []string{"", "   ", "inventory"}}
	g := NewGame(sc, console, quietLogger())

	g.Run()

	if len(console.out) != 2 {
		t.Fatalf("got %d responses, want 2 (opening look + inventory): %q", len(console.out), console.out)
	}
}

func TestRunServesEveryPlayer(t *testing.T) {
	sc := mecs.NewScene()
	first, err := content.Build(sc, content.Default())
	if err != nil {
		t.Fatalf("building demo world: %v", err)
	}
	room := world.LocationOf(sc, first).Container
	second := sc.New(
		&world.Player{},
		&world.Name{Name: "Watcher"},
		&world.Container{},
	)
	world.Move(sc, second, room)

	// One tick serves both players in store order: first gets "take book",
	// second gets "take marble".
	console := &scriptConsole{lines: []string{"take book", "take marble"}}
	g := NewGame(sc, console, quietLogger())
	g.Run()

	if members := world.ContainerOf(sc, first).Members; len(members) != 1 {
		t.Errorf("first player carries %d things, want 1", len(members))
	}
	if members := world.ContainerOf(sc, second).Members; len(members) != 1 {
		t.Errorf("second player carries %d things, want 1", len(members))
	}
	// Start showed the room once per player.
	if len(console.out) != 4 {
		t.Fatalf("got %d responses, want 4 (2 opening looks + 2 turns): %q", len(console.out), console.out)
	}
}

func TestRunRecordsTranscript(t *testing.T) {
	store, err := transcript.Open(filepath.Join(t.TempDir(), "transcript.db"))
	if err != nil {
		t.Fatalf("opening transcript: %v", err)
	}
	defer store.Close()

	sc := mecs.NewScene()
	if _, err := content.Build(sc, content.Default()); err != nil {
		t.Fatalf("building demo world: %v", err)
	}
	console := &scriptConsole{lines: []string{"take book", "dance"}}
	g := NewGame(sc, console, quietLogger())
	g.Recorder = store
	g.Run()

	turns, err := store.Turns(store.Session())
	if err != nil {
		t.Fatalf("reading transcript: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("recorded %d turns, want 2", len(turns))
	}
	if turns[0].Number != 1 || turns[0].Input != "take book" || turns[0].Response != "Taken." {
		t.Errorf("first turn = %+v", turns[0])
	}
	if turns[1].Input != "dance" || turns[1].Response != UnknownCommand {
		t.Errorf("second turn = %+v", turns[1])
	}
}

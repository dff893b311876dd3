package world

import (
	"testing"

	"github.com/willowmere/gofiction/pkg/mecs"
)

func newRoom(sc *mecs.Scene, name string) mecs.Entity {
	return sc.New(
		&Name{Name: name},
		&Description{Text: name + " description"},
		&Container{},
		NewMap(),
	)
}

func TestMapLinkSymmetry(t *testing.T) {
	for _, dir := range Directions {
		sc := mecs.NewScene()
		a := newRoom(sc, "a")
		b := newRoom(sc, "b")

		MapLink(sc, a, dir, b)

		if got := MapOf(sc, a).Edges[dir]; got != b {
			t.Errorf("%s: forward edge = %d, want %d", dir, got, b)
		}
		reverse, _ := Opposite(dir)
		if got := MapOf(sc, b).Edges[reverse]; got != a {
			t.Errorf("%s: reverse edge (%s) = %d, want %d", dir, reverse, got, a)
		}
	}
}

func TestMapLinkUnknownDirection(t *testing.T) {
	sc := mecs.NewScene()
	a := newRoom(sc, "a")
	b := newRoom(sc, "b")

	defer func() {
		if recover() == nil {
			t.Error("MapLink with unknown direction did not panic")
		}
	}()
	MapLink(sc, a, "sideways", b)
}

func TestMapLinkMissingMap(t *testing.T) {
	sc := mecs.NewScene()
	a := newRoom(sc, "a")
	b := sc.New(&Name{Name: "b"}, &Container{})

	defer func() {
		if recover() == nil {
			t.Error("MapLink onto a map-less entity did not panic")
		}
	}()
	MapLink(sc, a, "north", b)
}

func TestMoveMaintainsInvariant(t *testing.T) {
	sc := mecs.NewScene()
	room1 := newRoom(sc, "room1")
	room2 := newRoom(sc, "room2")
	thing := sc.New(&Name{Name: "thing", Article: "a"})

	// First placement: no prior Location.
	Move(sc, thing, room1)
	if got := LocationOf(sc, thing).Container; got != room1 {
		t.Fatalf("Location after first move = %d, want %d", got, room1)
	}
	if members := ContainerOf(sc, room1).Members; len(members) != 1 || members[0] != thing {
		t.Fatalf("room1 members = %v, want [%d]", members, thing)
	}

	// Relocation: removed from the old container.
	Move(sc, thing, room2)
	if got := LocationOf(sc, thing).Container; got != room2 {
		t.Errorf("Location after second move = %d, want %d", got, room2)
	}
	if members := ContainerOf(sc, room1).Members; len(members) != 0 {
		t.Errorf("room1 still holds %v after move away", members)
	}
	if members := ContainerOf(sc, room2).Members; len(members) != 1 || members[0] != thing {
		t.Errorf("room2 members = %v, want [%d]", members, thing)
	}
}

func TestMovePreservesOrder(t *testing.T) {
	sc := mecs.NewScene()
	room := newRoom(sc, "room")
	a := sc.New(&Name{Name: "a"})
	b := sc.New(&Name{Name: "b"})
	c := sc.New(&Name{Name: "c"})
	for _, e := range []mecs.Entity{a, b, c} {
		Move(sc, e, room)
	}

	other := newRoom(sc, "other")
	Move(sc, b, other)

	members := ContainerOf(sc, room).Members
	if len(members) != 2 || members[0] != a || members[1] != c {
		t.Errorf("room members after removal = %v, want [%d %d]", members, a, c)
	}
}

func TestMoveIntoNonContainer(t *testing.T) {
	sc := mecs.NewScene()
	thing := sc.New(&Name{Name: "thing"})
	target := sc.New(&Name{Name: "target"})

	defer func() {
		if recover() == nil {
			t.Error("Move into a container-less entity did not panic")
		}
	}()
	Move(sc, thing, target)
}

func TestFindByName(t *testing.T) {
	sc := mecs.NewScene()
	unnamed := sc.New()
	first := sc.New(&Name{Name: "coin", Article: "a"})
	second := sc.New(&Name{Name: "coin", Article: "a"})
	other := sc.New(&Name{Name: "lamp", Article: "a"})
	candidates := []mecs.Entity{unnamed, first, second, other}

	// First match by candidate order, never the second duplicate.
	if got, ok := FindByName(sc, "coin", candidates); !ok || got != first {
		t.Errorf("FindByName(coin) = %d/%v, want %d/true", got, ok, first)
	}
	// Case-insensitive exact match.
	if got, ok := FindByName(sc, "LAMP", candidates); !ok || got != other {
		t.Errorf("FindByName(LAMP) = %d/%v, want %d/true", got, ok, other)
	}
	if _, ok := FindByName(sc, "lam", candidates); ok {
		t.Error("FindByName matched a prefix, want exact match only")
	}
	if _, ok := FindByName(sc, "sword", candidates); ok {
		t.Error("FindByName found a thing that is not there")
	}
}

func TestListJoin(t *testing.T) {
	tests := []struct {
		items     []string
		connector string
		want      string
	}{
		{nil, "and", ""},
		{[]string{"x"}, "and", "x"},
		{[]string{"x", "y"}, "and", "x and y"},
		{[]string{"x", "y", "z"}, "and", "x, y and z"},
		{[]string{"north", "west"}, "or", "north or west"},
	}
	for _, tt := range tests {
		if got := ListJoin(tt.items, tt.connector); got != tt.want {
			t.Errorf("ListJoin(%v, %q) = %q, want %q", tt.items, tt.connector, got, tt.want)
		}
	}
}

func TestNameDisplayAndMatch(t *testing.T) {
	withArticle := &Name{Name: "box", Article: "a"}
	if got := withArticle.Display(false); got != "a box" {
		t.Errorf("indefinite = %q, want %q", got, "a box")
	}
	if got := withArticle.Display(true); got != "the box" {
		t.Errorf("definite = %q, want %q", got, "the box")
	}

	bare := &Name{Name: "The Garden"}
	if got := bare.Display(true); got != "The Garden" {
		t.Errorf("article-less definite = %q, want %q", got, "The Garden")
	}

	if !withArticle.Match("BOX") || !withArticle.Match("box") {
		t.Error("Match is not case-insensitive")
	}
	if withArticle.Match("bo") {
		t.Error("Match accepted a prefix")
	}
}

func TestExpandDirection(t *testing.T) {
	tests := []struct{ in, want string }{
		{"n", "north"}, {"s", "south"}, {"w", "west"}, {"e", "east"},
		{"nw", "northwest"}, {"ne", "northeast"}, {"sw", "southwest"}, {"se", "southeast"},
		{"u", "up"}, {"d", "down"},
		{"north", "north"}, {"sideways", "sideways"},
	}
	for _, tt := range tests {
		if got := ExpandDirection(tt.in); got != tt.want {
			t.Errorf("ExpandDirection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapDirectionsCanonicalOrder(t *testing.T) {
	sc := mecs.NewScene()
	center := newRoom(sc, "center")
	// Link in scrambled order; the listing must come back canonical.
	for _, dir := range []string{"down", "east", "north"} {
		MapLink(sc, center, dir, newRoom(sc, dir))
	}

	got := MapOf(sc, center).Directions()
	want := []string{"north", "east", "down"}
	if len(got) != len(want) {
		t.Fatalf("Directions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Directions() = %v, want %v", got, want)
		}
	}
}

package world

import (
	"fmt"
	"strings"

	"github.com/willowmere/gofiction/pkg/mecs"
)

// Directions is the canonical direction order used for listings.
var Directions = []string{
	"north", "south", "west", "east",
	"northwest", "northeast", "southwest", "southeast",
	"up", "down",
}

// opposites pairs every direction with its reverse.
var opposites = map[string]string{
	"north": "south", "south": "north",
	"west": "east", "east": "west",
	"northeast": "southwest", "southwest": "northeast",
	"southeast": "northwest", "northwest": "southeast",
	"up": "down", "down": "up",
}

// abbreviations maps the short direction forms to their full names.
var abbreviations = map[string]string{
	"n": "north", "s": "south", "w": "west", "e": "east",
	"nw": "northwest", "ne": "northeast", "sw": "southwest", "se": "southeast",
	"u": "up", "d": "down",
}

// Opposite returns the reverse of a direction, and whether the direction
// is one of the ten recognized ones.
func Opposite(direction string) (string, bool) {
	rev, ok := opposites[direction]
	return rev, ok
}

// ExpandDirection resolves a short direction form ("n", "sw") to its full
// name. Anything else is returned unchanged.
func ExpandDirection(s string) string {
	if full, ok := abbreviations[s]; ok {
		return full
	}
	return s
}

// MapLink registers the edge source --direction--> destination together
// with the reverse edge on the destination. World-build only: both
// endpoints must already carry a Map, and the direction must be one of the
// ten recognized ones; anything else is malformed world data and panics.
func MapLink(sc *mecs.Scene, source mecs.Entity, direction string, destination mecs.Entity) {
	reverse, ok := opposites[direction]
	if !ok {
		panic(fmt.Sprintf("world: maplink: unknown direction %q", direction))
	}
	src := MapOf(sc, source)
	if src == nil {
		panic("world: maplink: the source room is missing a Map component")
	}
	dst := MapOf(sc, destination)
	if dst == nil {
		panic("world: maplink: the destination room is missing a Map component")
	}
	src.Edges[direction] = destination
	dst.Edges[reverse] = source
}

// Move relocates entity into the given container, detaching it from its
// previous container first. This is the only writer of the
// Location/Container pair: after it returns, the entity's Location names
// the destination and the entity appears in exactly that container's
// members. A destination without a Container component, or a stale
// Location pointing at a non-container, is a consistency violation and
// panics.
func Move(sc *mecs.Scene, entity, container mecs.Entity) {
	dest := ContainerOf(sc, container)
	if dest == nil {
		panic("world: move: the container is missing a Container component")
	}
	if loc := LocationOf(sc, entity); loc != nil {
		old := ContainerOf(sc, loc.Container)
		if old == nil {
			panic("world: move: the location of the entity is missing a Container component")
		}
		old.remove(entity)
	}
	sc.Set(entity, &Location{Container: container})
	dest.Members = append(dest.Members, entity)
}

// FindByName returns the first entity in candidates whose Name matches
// name case-insensitively. Entities without a Name are skipped. Candidate
// order decides precedence between duplicate names, so call sites control
// it (room contents before inventory, and so on).
func FindByName(sc *mecs.Scene, name string, candidates []mecs.Entity) (mecs.Entity, bool) {
	for _, e := range candidates {
		if n := NameOf(sc, e); n != nil && n.Match(name) {
			return e, true
		}
	}
	return 0, false
}

// ListJoin renders items as prose: "", "x", "x and y", "x, y and z". The
// connector sits before the last item.
func ListJoin(items []string, connector string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return fmt.Sprintf("%s %s %s",
		strings.Join(items[:len(items)-1], ", "), connector, items[len(items)-1])
}

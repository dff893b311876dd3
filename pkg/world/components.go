// Package world defines the component vocabulary of the fiction engine and
// the helpers that mutate the world graph: bidirectional map linking,
// container transfer, and name resolution. Components are plain records;
// all behavior lives in the helpers and in the command interpreter.
package world

import (
	"strings"

	"github.com/willowmere/gofiction/pkg/mecs"
)

// Component kinds. The scene stores components keyed by these values.
const (
	KindPlayer mecs.Kind = iota
	KindName
	KindDescription
	KindInscription
	KindLocation
	KindContainer
	KindMap
	KindEnvironment
)

// Player tags an entity as player-controlled. The turn loop solicits one
// command per tick from every entity carrying this tag.
type Player struct{}

func (*Player) Kind() mecs.Kind { return KindPlayer }

// Name gives an entity a display identity. Article is optional; rooms and
// the player go without one.
type Name struct {
	Name    string
	Article string
}

func (*Name) Kind() mecs.Kind { return KindName }

// Match reports whether s names this entity, ignoring case.
func (n *Name) Match(s string) bool {
	return strings.EqualFold(s, n.Name)
}

// Display renders the name for prose. With an article set, the definite
// form is "the <name>" and the indefinite form is "<article> <name>".
func (n *Name) Display(definite bool) string {
	if n.Article == "" {
		return n.Name
	}
	if definite {
		return "the " + n.Name
	}
	return n.Article + " " + n.Name
}

// Description is static flavor text shown when looking at an entity.
type Description struct {
	Text string
}

func (*Description) Kind() mecs.Kind { return KindDescription }

// Inscription is readable text, distinct from the description. Books and
// signs carry one.
type Inscription struct {
	Text string
}

func (*Inscription) Kind() mecs.Kind { return KindInscription }

// Location points a portable entity at the container currently holding it.
// Only Move writes this; it is kept in sync with the container's members.
type Location struct {
	Container mecs.Entity
}

func (*Location) Kind() mecs.Kind { return KindLocation }

// Container holds the entities currently inside this one, in insertion
// order. Membership is mutated only through Move.
type Container struct {
	Members []mecs.Entity
}

func (*Container) Kind() mecs.Kind { return KindContainer }

// remove drops e from the member list, preserving order.
func (c *Container) remove(e mecs.Entity) {
	for i, m := range c.Members {
		if m == e {
			c.Members = append(c.Members[:i], c.Members[i+1:]...)
			return
		}
	}
}

// Map holds the direction-labeled edges leading out of a location. Edges
// are written only by MapLink, never directly.
type Map struct {
	Edges map[string]mecs.Entity
}

func (*Map) Kind() mecs.Kind { return KindMap }

// NewMap returns an empty Map ready for linking.
func NewMap() *Map {
	return &Map{Edges: make(map[string]mecs.Entity)}
}

// Directions lists the edges present, in the canonical direction order,
// so the listing is stable across calls.
func (m *Map) Directions() []string {
	var out []string
	for _, dir := range Directions {
		if _, ok := m.Edges[dir]; ok {
			out = append(out, dir)
		}
	}
	return out
}

// Environment marks an entity as ambient scenery. Scenery is excluded from
// "things present" listings; its text, when non-empty, is woven into the
// room description instead.
type Environment struct {
	Text string
}

func (*Environment) Kind() mecs.Kind { return KindEnvironment }

// Typed accessors. Each returns the component or nil when absent, sparing
// callers the type assertion.

func NameOf(sc *mecs.Scene, e mecs.Entity) *Name {
	if c := sc.Get(e, KindName); c != nil {
		return c.(*Name)
	}
	return nil
}

func DescriptionOf(sc *mecs.Scene, e mecs.Entity) *Description {
	if c := sc.Get(e, KindDescription); c != nil {
		return c.(*Description)
	}
	return nil
}

func InscriptionOf(sc *mecs.Scene, e mecs.Entity) *Inscription {
	if c := sc.Get(e, KindInscription); c != nil {
		return c.(*Inscription)
	}
	return nil
}

func LocationOf(sc *mecs.Scene, e mecs.Entity) *Location {
	if c := sc.Get(e, KindLocation); c != nil {
		return c.(*Location)
	}
	return nil
}

func ContainerOf(sc *mecs.Scene, e mecs.Entity) *Container {
	if c := sc.Get(e, KindContainer); c != nil {
		return c.(*Container)
	}
	return nil
}

func MapOf(sc *mecs.Scene, e mecs.Entity) *Map {
	if c := sc.Get(e, KindMap); c != nil {
		return c.(*Map)
	}
	return nil
}

func EnvironmentOf(sc *mecs.Scene, e mecs.Entity) *Environment {
	if c := sc.Get(e, KindEnvironment); c != nil {
		return c.(*Environment)
	}
	return nil
}

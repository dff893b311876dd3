// Package content turns world-definition data into a live scene. Worlds
// are authored as YAML (rooms, their contents, map links, player start);
// the builder instantiates entities and wires them exclusively through
// world.Move and world.MapLink, so built worlds satisfy the same
// invariants as hand-built ones.
package content

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/willowmere/gofiction/pkg/mecs"
	"github.com/willowmere/gofiction/pkg/world"
)

// ErrNoPlayer is returned by Build when the definition has no player
// start.
var ErrNoPlayer = errors.New("content: world defines no player start")

// ThingDef describes one object, possibly a container with nested
// contents. Environment is a pointer so scenery with empty flavor text is
// still marked as scenery.
type ThingDef struct {
	Name        string     `yaml:"name"`
	Article     string     `yaml:"article,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Inscription string     `yaml:"inscription,omitempty"`
	Environment *string    `yaml:"environment,omitempty"`
	Container   bool       `yaml:"container,omitempty"`
	Contents    []ThingDef `yaml:"contents,omitempty"`
}

// RoomDef describes one location.
type RoomDef struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Contents    []ThingDef `yaml:"contents,omitempty"`
}

// LinkDef describes one bidirectional map link; the reverse edge is
// implied.
type LinkDef struct {
	From      string `yaml:"from"`
	Direction string `yaml:"direction"`
	To        string `yaml:"to"`
}

// PlayerDef describes the player entity and its starting room.
type PlayerDef struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Start       string `yaml:"start"`
}

// Definition is a complete world description.
type Definition struct {
	Rooms  []RoomDef `yaml:"rooms"`
	Links  []LinkDef `yaml:"links,omitempty"`
	Player PlayerDef `yaml:"player"`
}

// Parse decodes a YAML world definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("content: parse world definition: %w", err)
	}
	return &def, nil
}

// Load reads and decodes a world-definition file.
func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

// Build instantiates the definition into the scene and returns the player
// entity. Definition errors (duplicate room names, dangling links,
// unknown directions, missing player start) are reported, not panicked:
// they come from data files, not code.
func Build(sc *mecs.Scene, def *Definition) (mecs.Entity, error) {
	if len(def.Rooms) == 0 {
		return 0, errors.New("content: world defines no rooms")
	}

	rooms := make(map[string]mecs.Entity, len(def.Rooms))
	for _, r := range def.Rooms {
		if r.Name == "" {
			return 0, errors.New("content: room without a name")
		}
		if _, dup := rooms[r.Name]; dup {
			return 0, fmt.Errorf("content: duplicate room name %q", r.Name)
		}
		room := sc.New(
			&world.Name{Name: r.Name},
			&world.Description{Text: r.Description},
			&world.Container{},
			world.NewMap(),
		)
		rooms[r.Name] = room
		for _, t := range r.Contents {
			if err := buildThing(sc, &t, room); err != nil {
				return 0, err
			}
		}
	}

	for _, l := range def.Links {
		if _, ok := world.Opposite(l.Direction); !ok {
			return 0, fmt.Errorf("content: link %q -> %q: unknown direction %q", l.From, l.To, l.Direction)
		}
		from, ok := rooms[l.From]
		if !ok {
			return 0, fmt.Errorf("content: link from unknown room %q", l.From)
		}
		to, ok := rooms[l.To]
		if !ok {
			return 0, fmt.Errorf("content: link to unknown room %q", l.To)
		}
		world.MapLink(sc, from, l.Direction, to)
	}

	if def.Player.Start == "" {
		return 0, ErrNoPlayer
	}
	start, ok := rooms[def.Player.Start]
	if !ok {
		return 0, fmt.Errorf("content: player starts in unknown room %q", def.Player.Start)
	}
	name := def.Player.Name
	if name == "" {
		name = "Player"
	}
	player := sc.New(
		&world.Player{},
		&world.Name{Name: name},
		&world.Description{Text: def.Player.Description},
		&world.Container{},
	)
	world.Move(sc, player, start)

	return player, nil
}

// buildThing creates one thing and its nested contents, placing it in
// parent.
func buildThing(sc *mecs.Scene, def *ThingDef, parent mecs.Entity) error {
	if def.Name == "" {
		return errors.New("content: thing without a name")
	}

	comps := []mecs.Component{&world.Name{Name: def.Name, Article: def.Article}}
	if def.Description != "" {
		comps = append(comps, &world.Description{Text: def.Description})
	}
	if def.Inscription != "" {
		comps = append(comps, &world.Inscription{Text: def.Inscription})
	}
	if def.Environment != nil {
		comps = append(comps, &world.Environment{Text: *def.Environment})
	}
	if def.Container || len(def.Contents) > 0 {
		comps = append(comps, &world.Container{})
	}

	thing := sc.New(comps...)
	world.Move(sc, thing, parent)

	for _, inner := range def.Contents {
		if err := buildThing(sc, &inner, thing); err != nil {
			return err
		}
	}
	return nil
}

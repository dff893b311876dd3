// Package mecs is a minimal entity-component scene. Entities are plain
// integer ids; all state lives in components attached to them. The scene
// offers O(1) attach/lookup/replace per component kind and a deterministic
// Select for iteration, plus a small start/update scheduler that game
// systems plug into.
package mecs

import "sort"

// Entity identifies an entity. Ids are issued sequentially starting at 0
// and are never reused.
type Entity int

// Kind discriminates component types. Each component type declares its own
// Kind value; kinds are assigned by the package that defines the components.
type Kind uint8

// Component is a typed data record attachable to an entity.
type Component interface {
	Kind() Kind
}

// Scene owns all entities and their components.
type Scene struct {
	next       Entity
	components map[Entity]map[Kind]Component
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{components: make(map[Entity]map[Kind]Component)}
}

// New allocates a fresh entity id and attaches the given components.
func (s *Scene) New(comps ...Component) Entity {
	e := s.next
	s.next++
	s.components[e] = make(map[Kind]Component, len(comps))
	for _, c := range comps {
		s.components[e][c.Kind()] = c
	}
	return e
}

// Has reports whether the entity carries every one of the given kinds.
func (s *Scene) Has(e Entity, kinds ...Kind) bool {
	m, ok := s.components[e]
	if !ok {
		return false
	}
	for _, k := range kinds {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	return true
}

// Get returns the entity's component of the given kind, or nil if the
// entity does not carry one.
func (s *Scene) Get(e Entity, k Kind) Component {
	m, ok := s.components[e]
	if !ok {
		return nil
	}
	return m[k]
}

// Set attaches the component to the entity, replacing any existing
// component of the same kind. Setting on an unknown entity id is a no-op
// for ids never issued; for issued ids the component map always exists.
func (s *Scene) Set(e Entity, c Component) {
	m, ok := s.components[e]
	if !ok {
		return
	}
	m[c.Kind()] = c
}

// Remove detaches the component of the given kind from the entity, if
// present.
func (s *Scene) Remove(e Entity, k Kind) {
	if m, ok := s.components[e]; ok {
		delete(m, k)
	}
}

// Select returns every entity carrying the given kind, in ascending id
// order. The order is therefore stable across calls within one process.
func (s *Scene) Select(k Kind) []Entity {
	var out []Entity
	for e, m := range s.components {
		if _, ok := m[k]; ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

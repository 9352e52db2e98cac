// Package scene is the runtime entity registry: every spawned object (wall,
// door, pickup, hostile, player, floor, light) is a scene entity addressed by
// a handle. Entities carry string tags; the level code tags everything it
// spawns as level geometry so a whole level can be enumerated and deleted as
// a batch.
package scene

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"gridfall/pkg/engine/geom"
)

// Handle identifies a scene entity. The zero handle is never allocated.
type Handle uint64

// Kind classifies a scene entity.
type Kind int

// Entity kinds.
const (
	KindWall Kind = iota
	KindFloor
	KindLight
	KindDoor
	KindPickup
	KindHostile
	KindPlayer
)

// Entity is one spawned object.
type Entity struct {
	Handle Handle
	Kind   Kind
	Pos    geom.Vec3

	// Data holds the owning subsystem's per-entity state (door state
	// machine, hostile stats, ...).
	Data any
}

// HandleSet is a set of entity handles.
type HandleSet = mapset.Set[Handle]

// Scene owns all live entities and the tag index.
type Scene struct {
	next     Handle
	entities map[Handle]*Entity
	tags     map[string]HandleSet
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		entities: make(map[Handle]*Entity),
		tags:     make(map[string]HandleSet),
	}
}

// Spawn creates an entity and returns its handle.
func (s *Scene) Spawn(kind Kind, pos geom.Vec3) Handle {
	s.next++
	h := s.next
	s.entities[h] = &Entity{Handle: h, Kind: kind, Pos: pos}
	return h
}

// Get returns the entity for a handle, or nil if it no longer exists.
func (s *Scene) Get(h Handle) *Entity {
	return s.entities[h]
}

// Despawn removes an entity and drops it from every tag set. Despawning a
// handle that no longer exists is a silent no-op.
func (s *Scene) Despawn(h Handle) {
	if _, ok := s.entities[h]; !ok {
		return
	}
	delete(s.entities, h)
	for _, set := range s.tags {
		set.Remove(h)
	}
}

// Tag adds a tag to an entity. Tagging a dead handle is a no-op.
func (s *Scene) Tag(h Handle, tag string) {
	if _, ok := s.entities[h]; !ok {
		return
	}
	set, ok := s.tags[tag]
	if !ok {
		set = mapset.New[Handle]()
		s.tags[tag] = set
	}
	set.Put(h)
}

// Untag removes a tag from an entity.
func (s *Scene) Untag(h Handle, tag string) {
	if set, ok := s.tags[tag]; ok {
		set.Remove(h)
	}
}

// Tagged returns the handles carrying a tag, sorted for determinism.
func (s *Scene) Tagged(tag string) []Handle {
	set, ok := s.tags[tag]
	if !ok {
		return nil
	}
	out := make([]Handle, 0, set.Size())
	set.Each(func(h Handle) {
		out = append(out, h)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CountTagged returns the number of entities carrying a tag.
func (s *Scene) CountTagged(tag string) int {
	set, ok := s.tags[tag]
	if !ok {
		return 0
	}
	return set.Size()
}

// Each visits every live entity in handle order.
func (s *Scene) Each(fn func(e *Entity)) {
	handles := make([]Handle, 0, len(s.entities))
	for h := range s.entities {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	for _, h := range handles {
		fn(s.entities[h])
	}
}

// CountKind returns the number of live entities of a kind.
func (s *Scene) CountKind(k Kind) int {
	n := 0
	for _, e := range s.entities {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

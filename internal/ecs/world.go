package ecs

import (
	"slices"

	"github.com/kamstrup/intmap"
)

type store = intmap.Map[EntityID, Component]

// World is the central entity registry and component store.
// It is the only owner of entity lifetime; systems reach game state through it.
type World struct {
	nextID     EntityID
	order      []EntityID // live entities in creation order
	alive      *intmap.Map[EntityID, struct{}]
	components map[ComponentType]*store
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      intmap.New[EntityID, struct{}](64),
		components: make(map[ComponentType]*store),
	}
}

// Create mints a new entity ID. IDs are never reused, not even after Clear.
func (w *World) Create() EntityID {
	id := w.nextID
	w.nextID++
	w.alive.Put(id, struct{}{})
	w.order = append(w.order, id)
	return id
}

// Alive reports whether the entity exists.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.alive.Get(id)
	return ok
}

// Add attaches components to an entity. Either all of them are attached or none:
// a kind the entity already holds, or a kind repeated in the call, fails with
// a *DuplicateComponentError. Use Set to overwrite.
func (w *World) Add(id EntityID, comps ...Component) error {
	if !w.Alive(id) {
		return ErrNoEntity
	}
	seen := make(map[ComponentType]bool, len(comps))
	for _, c := range comps {
		t := c.Type()
		if seen[t] || w.Has(id, t) {
			return &DuplicateComponentError{Entity: id, Type: t}
		}
		seen[t] = true
	}
	for _, c := range comps {
		w.put(id, c)
	}
	return nil
}

// Set attaches c to the entity, replacing any component of the same kind.
func (w *World) Set(id EntityID, c Component) error {
	if !w.Alive(id) {
		return ErrNoEntity
	}
	w.put(id, c)
	return nil
}

func (w *World) put(id EntityID, c Component) {
	t := c.Type()
	s := w.components[t]
	if s == nil {
		s = intmap.New[EntityID, Component](16)
		w.components[t] = s
	}
	s.Put(id, c)
}

// Component returns the stored component of the given type for entity id, or
// nil. Slices inside it alias the world; use Get for a detached copy.
func (w *World) Component(id EntityID, t ComponentType) Component {
	s := w.components[t]
	if s == nil {
		return nil
	}
	c, _ := s.Get(id)
	return c
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Component(id, t) != nil
}

// Get returns a snapshot of the entity's component set.
// A missing entity is an expected condition and yields false.
func (w *World) Get(id EntityID) (Entity, bool) {
	if !w.Alive(id) {
		return Entity{}, false
	}
	return w.snapshot(id), true
}

func (w *World) snapshot(id EntityID) Entity {
	e := Entity{ID: id, components: make(map[ComponentType]Component, 4)}
	for t, s := range w.components {
		if c, ok := s.Get(id); ok {
			if cl, ok := c.(Cloner); ok {
				c = cl.CloneComponent()
			}
			e.components[t] = c
		}
	}
	return e
}

// Detach removes a single component from an entity.
func (w *World) Detach(id EntityID, t ComponentType) {
	if s := w.components[t]; s != nil {
		s.Del(id)
	}
}

// Remove deletes the entity and all of its components.
// Removing a nonexistent entity is a no-op.
func (w *World) Remove(id EntityID) {
	if !w.Alive(id) {
		return
	}
	w.alive.Del(id)
	for _, s := range w.components {
		s.Del(id)
	}
	if i := slices.Index(w.order, id); i >= 0 {
		w.order = slices.Delete(w.order, i, i+1)
	}
}

// Clear removes every entity. The ID counter keeps running.
func (w *World) Clear() {
	for _, id := range slices.Clone(w.order) {
		w.Remove(id)
	}
}

// Len returns the number of live entities.
func (w *World) Len() int { return w.alive.Len() }

// Query returns the IDs of all live entities that have every listed component
// type, in creation order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	for _, t := range types {
		if s := w.components[t]; s == nil || s.Len() == 0 {
			return nil
		}
	}
	var result []EntityID
	for _, id := range w.order {
		match := true
		for _, t := range types {
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}

// QueryByComponent returns snapshots of all entities holding every listed
// component type, in creation order.
func (w *World) QueryByComponent(types ...ComponentType) []Entity {
	ids := w.Query(types...)
	result := make([]Entity, 0, len(ids))
	for _, id := range ids {
		result = append(result, w.snapshot(id))
	}
	return result
}

// QueryByTag returns snapshots of all entities carrying tag, in creation order.
func (w *World) QueryByTag(tag Tag) []Entity {
	var result []Entity
	for _, id := range w.TaggedIDs(tag) {
		result = append(result, w.snapshot(id))
	}
	return result
}

// TaggedIDs returns the IDs of all entities carrying tag, in creation order.
func (w *World) TaggedIDs(tag Tag) []EntityID {
	var result []EntityID
	for _, id := range w.Query(CTagged) {
		if w.Component(id, CTagged).(Tagged).Tag == tag {
			result = append(result, id)
		}
	}
	return result
}

// CountByTag returns the number of entities carrying tag.
func (w *World) CountByTag(tag Tag) int {
	return len(w.TaggedIDs(tag))
}

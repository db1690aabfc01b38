package ecs

import (
	"errors"
	"fmt"
)

// EntityID uniquely identifies an entity in the world.
type EntityID uint64

// NilEntity is the zero value; no valid entity has this ID.
const NilEntity EntityID = 0

// ComponentType is a small integer key used to store/retrieve components.
type ComponentType uint8

// Component is implemented by every data struct stored in the world.
type Component interface {
	Type() ComponentType
}

// Cloner is implemented by components holding slices or maps. Snapshots
// store the clone so they share no memory with the world.
type Cloner interface {
	CloneComponent() Component
}

// Tag is the semantic role of an entity (snake, apple, obstacle, ...).
type Tag string

// CTagged is reserved by the world for the Tagged component.
const CTagged ComponentType = 0

// Tagged attaches a Tag to an entity so it can be found with QueryByTag.
type Tagged struct {
	Tag Tag
}

func (Tagged) Type() ComponentType { return CTagged }

var (
	// ErrNoEntity is returned when an operation names an entity that does not exist.
	ErrNoEntity = errors.New("ecs: no such entity")
	// ErrDuplicateComponent matches every *DuplicateComponentError via errors.Is.
	ErrDuplicateComponent = errors.New("ecs: duplicate component")
)

// DuplicateComponentError reports an Add of a component kind the entity already holds.
type DuplicateComponentError struct {
	Entity EntityID
	Type   ComponentType
}

func (e *DuplicateComponentError) Error() string {
	return fmt.Sprintf("ecs: entity %d already has component %d", e.Entity, e.Type)
}

func (e *DuplicateComponentError) Is(target error) bool {
	return target == ErrDuplicateComponent
}

// Entity is a snapshot of one entity's component set.
// It is detached from the world: later mutations of the world do not show up here.
type Entity struct {
	ID         EntityID
	components map[ComponentType]Component
}

// Get returns the component of type t, or nil.
func (e Entity) Get(t ComponentType) Component {
	return e.components[t]
}

// Has reports whether the snapshot holds a component of type t.
func (e Entity) Has(t ComponentType) bool {
	_, ok := e.components[t]
	return ok
}

// Tag returns the entity's semantic tag, or "" when untagged.
func (e Entity) Tag() Tag {
	if c, ok := e.components[CTagged].(Tagged); ok {
		return c.Tag
	}
	return ""
}

// Len returns the number of components in the snapshot.
func (e Entity) Len() int { return len(e.components) }

package ecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stub component used only in tests
type testComp struct{ val int }

func (testComp) Type() ComponentType { return 1 }

type otherComp struct{}

type sliceComp struct{ cells []int }

func (sliceComp) Type() ComponentType { return 3 }

func (c sliceComp) CloneComponent() Component {
	return sliceComp{cells: append([]int(nil), c.cells...)}
}

func (otherComp) Type() ComponentType { return 2 }

func TestCreateEntity(t *testing.T) {
	w := NewWorld()
	id := w.Create()
	require.NotEqual(t, NilEntity, id)
	require.True(t, w.Alive(id))
	assert.Equal(t, 1, w.Len())
}

func TestIDsAreNeverReused(t *testing.T) {
	w := NewWorld()
	a := w.Create()
	w.Remove(a)
	b := w.Create()
	w.Clear()
	c := w.Create()

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, b, c)
	assert.NotEqual(t, a, c)
}

func TestAddAndGetComponent(t *testing.T) {
	w := NewWorld()
	id := w.Create()
	require.NoError(t, w.Add(id, testComp{val: 42}))

	tc, ok := w.Component(id, ComponentType(1)).(testComp)
	require.True(t, ok, "wrong component type returned")
	assert.Equal(t, 42, tc.val)

	e, ok := w.Get(id)
	require.True(t, ok)
	assert.Equal(t, id, e.ID)
	assert.True(t, e.Has(ComponentType(1)))
	assert.False(t, e.Has(ComponentType(2)))
}

func TestAddDuplicateFails(t *testing.T) {
	w := NewWorld()
	id := w.Create()
	require.NoError(t, w.Add(id, testComp{val: 1}))

	err := w.Add(id, otherComp{}, testComp{val: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateComponent))

	var dup *DuplicateComponentError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, id, dup.Entity)
	assert.Equal(t, ComponentType(1), dup.Type)

	// All-or-nothing: otherComp must not have been attached.
	assert.False(t, w.Has(id, ComponentType(2)))
	assert.Equal(t, 1, w.Component(id, ComponentType(1)).(testComp).val)
}

func TestAddRepeatedKindInOneCall(t *testing.T) {
	w := NewWorld()
	id := w.Create()
	err := w.Add(id, testComp{val: 1}, testComp{val: 2})
	require.ErrorIs(t, err, ErrDuplicateComponent)
	assert.False(t, w.Has(id, ComponentType(1)))
}

func TestAddToMissingEntity(t *testing.T) {
	w := NewWorld()
	require.ErrorIs(t, w.Add(EntityID(99), testComp{}), ErrNoEntity)
	require.ErrorIs(t, w.Set(EntityID(99), testComp{}), ErrNoEntity)
}

func TestSetOverwrites(t *testing.T) {
	w := NewWorld()
	id := w.Create()
	require.NoError(t, w.Set(id, testComp{val: 1}))
	require.NoError(t, w.Set(id, testComp{val: 2}))
	assert.Equal(t, 2, w.Component(id, ComponentType(1)).(testComp).val)
}

func TestRemoveEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	id := w.Create()
	require.NoError(t, w.Add(id, testComp{val: 7}, Tagged{Tag: "apple"}))
	w.Remove(id)

	assert.False(t, w.Alive(id))
	assert.Nil(t, w.Component(id, ComponentType(1)))
	_, ok := w.Get(id)
	assert.False(t, ok)
	assert.Empty(t, w.Query(ComponentType(1)))
	assert.Empty(t, w.QueryByComponent(ComponentType(1)))
	assert.Empty(t, w.QueryByTag("apple"))
	assert.Zero(t, w.Len())
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := NewWorld()
	id := w.Create()
	w.Remove(EntityID(99))
	w.Remove(id)
	w.Remove(id)
	assert.Zero(t, w.Len())
}

func TestDetachComponent(t *testing.T) {
	w := NewWorld()
	id := w.Create()
	require.NoError(t, w.Add(id, testComp{val: 5}))

	w.Detach(id, ComponentType(1))
	assert.False(t, w.Has(id, ComponentType(1)))
	assert.True(t, w.Alive(id))

	// Detaching a kind that was never added must not panic.
	w.Detach(id, ComponentType(99))
}

func TestQueryFiltersAndKeepsInsertionOrder(t *testing.T) {
	w := NewWorld()
	var both []EntityID
	for i := range 5 {
		id := w.Create()
		require.NoError(t, w.Add(id, testComp{val: i}))
		if i%2 == 0 {
			require.NoError(t, w.Add(id, otherComp{}))
			both = append(both, id)
		}
	}

	assert.Equal(t, both, w.Query(ComponentType(1), ComponentType(2)))

	snap := w.QueryByComponent(ComponentType(1), ComponentType(2))
	require.Len(t, snap, len(both))
	for i, e := range snap {
		assert.Equal(t, both[i], e.ID)
	}
	assert.Nil(t, w.Query())
}

func TestQuerySnapshotIsDetached(t *testing.T) {
	w := NewWorld()
	id := w.Create()
	require.NoError(t, w.Add(id, testComp{val: 1}))

	snap := w.QueryByComponent(ComponentType(1))
	require.NoError(t, w.Set(id, testComp{val: 2}))
	extra := w.Create()
	require.NoError(t, w.Add(extra, testComp{val: 3}))
	w.Remove(id)

	require.Len(t, snap, 1)
	assert.Equal(t, 1, snap[0].Get(ComponentType(1)).(testComp).val)
}

func TestSnapshotClonesSlices(t *testing.T) {
	w := NewWorld()
	id := w.Create()
	require.NoError(t, w.Add(id, sliceComp{cells: []int{1, 2, 3}}))

	e, ok := w.Get(id)
	require.True(t, ok)
	e.Get(ComponentType(3)).(sliceComp).cells[0] = 99
	w.QueryByComponent(ComponentType(3))[0].Get(ComponentType(3)).(sliceComp).cells[1] = 99

	assert.Equal(t, []int{1, 2, 3}, w.Component(id, ComponentType(3)).(sliceComp).cells)
}

func TestQueryByTag(t *testing.T) {
	w := NewWorld()
	a := w.Create()
	require.NoError(t, w.Add(a, Tagged{Tag: "apple"}))
	s := w.Create()
	require.NoError(t, w.Add(s, Tagged{Tag: "snake"}))
	b := w.Create()
	require.NoError(t, w.Add(b, Tagged{Tag: "apple"}))

	apples := w.QueryByTag("apple")
	require.Len(t, apples, 2)
	assert.Equal(t, a, apples[0].ID)
	assert.Equal(t, b, apples[1].ID)
	assert.Equal(t, Tag("apple"), apples[0].Tag())
	assert.Equal(t, 2, w.CountByTag("apple"))
	assert.Equal(t, []EntityID{s}, w.TaggedIDs("snake"))
	assert.Empty(t, w.QueryByTag("obstacle"))
}

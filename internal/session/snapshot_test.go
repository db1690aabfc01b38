package session

import (
	"testing"

	"naja/internal/factory"
	"naja/internal/grid"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotDrawsHeadOverBody(t *testing.T) {
	s := newSession(t, testConfig())
	s.Step()

	snap := s.Snapshot()
	require.NotEmpty(t, snap.Sprites)
	last := snap.Sprites[len(snap.Sprites)-1]
	assert.Equal(t, grid.Cell{X: 6, Y: 5}, last.Cell)
	assert.Equal(t, factory.Looks["green"].HeadGlyph, last.Glyph)
	assert.Equal(t, 3, snap.Length)
	assert.InDelta(t, 4.0, snap.Speed, 1e-9)

	for i := 1; i < len(snap.Sprites); i++ {
		assert.LessOrEqual(t, snap.Sprites[i-1].Order, snap.Sprites[i].Order)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s := newSession(t, testConfig())
	s.Step()
	snap := s.Snapshot()
	n := len(snap.Sprites)

	s.Step()
	assert.Len(t, snap.Sprites, n)
}

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieArcs(t *testing.T) {
	shares := []Share{
		{Category: "housing", Total: 75, Percentage: 75},
		{Category: "food", Total: 25, Percentage: 25},
	}

	arcs := PieArcs(shares, 50, 50, 50)
	require.Len(t, arcs, 2)

	assert.Equal(t, 0.0, arcs[0].StartAngle)
	assert.Equal(t, 270.0, arcs[0].EndAngle)
	assert.True(t, arcs[0].LargeArc)
	assert.InDelta(t, 50, arcs[0].Start.X, 1e-9)
	assert.InDelta(t, 0, arcs[0].Start.Y, 1e-9)
	assert.InDelta(t, 0, arcs[0].End.X, 1e-9)
	assert.InDelta(t, 50, arcs[0].End.Y, 1e-9)

	assert.Equal(t, 270.0, arcs[1].StartAngle)
	assert.Equal(t, 360.0, arcs[1].EndAngle)
	assert.False(t, arcs[1].LargeArc)

	assert.Contains(t, arcs[0].Path, "A 50 50 0 1 0")
	assert.Contains(t, arcs[0].Path, "L 50 50 Z")
}

func TestPieArcs_FullCircleIsClamped(t *testing.T) {
	arcs := PieArcs([]Share{{Category: "food", Total: 10, Percentage: 100}}, 50, 50, 50)
	require.Len(t, arcs, 1)

	assert.Equal(t, 359.99, arcs[0].EndAngle)
	assert.True(t, arcs[0].LargeArc)
	assert.NotEqual(t, arcs[0].Start, arcs[0].End)
}

func TestPieArcs_Empty(t *testing.T) {
	assert.Empty(t, PieArcs(nil, 50, 50, 50))
}

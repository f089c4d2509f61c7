package algorithms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContainsClosedBounds(t *testing.T) {
	r := Rect{X: 1, Y: 1, Width: 2, Height: 2}

	assert.True(t, r.Contains(1, 1), "bottom-left corner")
	assert.True(t, r.Contains(3, 3), "top-right corner")
	assert.True(t, r.Contains(2, 1), "bottom edge")
	assert.True(t, r.Contains(1, 2), "left edge")
	assert.True(t, r.Contains(2, 2), "interior")
	assert.False(t, r.Contains(0.99, 2))
	assert.False(t, r.Contains(3.01, 2))
	assert.False(t, r.Contains(2, 0.99))
}

func TestGeneratePathCoversEmptyWall(t *testing.T) {
	path := GeneratePath(10, 10, nil)

	// 41 samples per row, 41 rows at step 0.25
	require.Len(t, path, 41*41)

	for _, p := range path {
		assert.GreaterOrEqual(t, p[0], 0.0)
		assert.LessOrEqual(t, p[0], 10.0)
		assert.GreaterOrEqual(t, p[1], 0.0)
		assert.LessOrEqual(t, p[1], 10.0)
	}
}

func TestGeneratePathAlternatesDirection(t *testing.T) {
	path := GeneratePath(1, 0.5, nil)

	// 1x0.5 wall: three rows of five points, sweeping right, left, right
	require.Len(t, path, 15)
	assert.Equal(t, []float64{0, 0}, path[0])
	assert.Equal(t, []float64{1, 0}, path[4])
	assert.Equal(t, []float64{1, 0.25}, path[5])
	assert.Equal(t, []float64{0, 0.25}, path[9])
	assert.Equal(t, []float64{0, 0.5}, path[10])
	assert.Equal(t, []float64{1, 0.5}, path[14])
}

func TestGeneratePathSkipsObstaclePoints(t *testing.T) {
	obstacle := Rect{X: 4, Y: 4, Width: 2, Height: 2}
	path := GeneratePath(10, 10, []Rect{obstacle})

	require.NotEmpty(t, path)
	for _, p := range path {
		assert.False(t, obstacle.Contains(p[0], p[1]),
			"point (%v, %v) lies on the obstacle", p[0], p[1])
	}

	// 9x9 samples fall on the closed rectangle; they are dropped, not detoured
	assert.Len(t, path, 41*41-81)
}

func TestGeneratePathMultipleObstacles(t *testing.T) {
	obstacles := []Rect{
		{X: 2, Y: 2, Width: 3, Height: 3},
		{X: 10, Y: 10, Width: 2, Height: 2},
		{X: 7, Y: 12, Width: 1, Height: 1},
	}
	path := GeneratePath(15, 15, obstacles)

	require.NotEmpty(t, path)
	for _, p := range path {
		assert.False(t, collides(p[0], p[1], obstacles))
	}
}

func TestGeneratePathTinyWallEmitsBoundaryPoint(t *testing.T) {
	// wall smaller than one step still yields the origin sample
	path := GeneratePath(0.1, 0.1, nil)
	assert.Equal(t, [][]float64{{0, 0}}, path)
}

func TestGeneratePathIgnoresObstacleOutsideWall(t *testing.T) {
	outside := Rect{X: 20, Y: 20, Width: 2, Height: 2}
	assert.Equal(t, GeneratePath(5, 5, nil), GeneratePath(5, 5, []Rect{outside}))
}

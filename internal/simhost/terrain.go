// Package simhost is an in-memory animation host. It stands in for the
// rendering host in actorsim and in tests: it records playback requests,
// answers surface queries from a heightmap, and fires completions on demand.
package simhost

import (
	"github.com/Faultbox/byteworld/internal/grid"
)

// Terrain is a heightmap of walkable surface elevations per grid cell.
type Terrain struct {
	Origin    grid.Coordinate // Cell of Altitudes[0][0]
	Altitudes [][]float32     // [row][column] relative to Origin
	Rows      int
	Columns   int
}

// BuildTerrain creates a terrain from row-major elevations starting at origin.
// Ragged rows are allowed; missing cells have no surface.
func BuildTerrain(origin grid.Coordinate, rows [][]float32) *Terrain {
	columns := 0
	altitudes := make([][]float32, len(rows))
	for r, row := range rows {
		altitudes[r] = make([]float32, len(row))
		copy(altitudes[r], row)
		columns = max(columns, len(row))
	}

	return &Terrain{
		Origin:    origin,
		Altitudes: altitudes,
		Rows:      len(rows),
		Columns:   columns,
	}
}

// Height returns the surface elevation at c.
// A nil terrain is flat ground everywhere.
func (t *Terrain) Height(c grid.Coordinate) (float32, bool) {
	if t == nil {
		return 0, true
	}

	r := c.Row - t.Origin.Row
	col := c.Column - t.Origin.Column
	if r < 0 || r >= len(t.Altitudes) || col < 0 || col >= len(t.Altitudes[r]) {
		return 0, false
	}
	return t.Altitudes[r][col], true
}

// Surface returns the elevation at c when it is at or below probeY.
// Cells outside the map and cells taller than the probe report no surface.
func (t *Terrain) Surface(c grid.Coordinate, probeY float32) (float32, bool) {
	h, ok := t.Height(c)
	if !ok || h > probeY {
		return 0, false
	}
	return h, true
}

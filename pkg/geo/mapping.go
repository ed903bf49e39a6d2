package geo

import (
	da "github.com/bagas-w/gridway/pkg/datastructure"
	"github.com/bagas-w/gridway/pkg/util"
	"github.com/golang/geo/s2"
)

// GridMapper anchors the grid over a geographic bounding box and converts
// between lat/lon and cell coordinates. Row 0 is the northern edge so the
// grid reads like a screen: row grows southward, col grows eastward.
type GridMapper struct {
	bounds s2.Rect
	rows   int
	cols   int
}

func NewGridMapper(minLat, minLon, maxLat, maxLon float64, rows, cols int) (*GridMapper, error) {
	if minLat >= maxLat || minLon >= maxLon {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"invalid bounding box (%f,%f)-(%f,%f)", minLat, minLon, maxLat, maxLon)
	}
	if rows <= 0 || cols <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"grid dimensions must be positive, got %dx%d", rows, cols)
	}

	bounds := s2.EmptyRect()
	bounds = bounds.AddPoint(s2.LatLngFromDegrees(minLat, minLon))
	bounds = bounds.AddPoint(s2.LatLngFromDegrees(maxLat, maxLon))

	return &GridMapper{
		bounds: bounds,
		rows:   rows,
		cols:   cols,
	}, nil
}

func (m *GridMapper) Rows() int {
	return m.rows
}

func (m *GridMapper) Cols() int {
	return m.cols
}

func (m *GridMapper) minLat() float64 { return m.bounds.Lo().Lat.Degrees() }
func (m *GridMapper) maxLat() float64 { return m.bounds.Hi().Lat.Degrees() }
func (m *GridMapper) minLon() float64 { return m.bounds.Lo().Lng.Degrees() }
func (m *GridMapper) maxLon() float64 { return m.bounds.Hi().Lng.Degrees() }

func (m *GridMapper) latStep() float64 {
	return (m.maxLat() - m.minLat()) / float64(m.rows)
}

func (m *GridMapper) lonStep() float64 {
	return (m.maxLon() - m.minLon()) / float64(m.cols)
}

// CellForPoint maps a real-world coordinate to its containing cell. The
// second return is false when the point lies outside the anchored box.
func (m *GridMapper) CellForPoint(lat, lon float64) (da.CellPosition, bool) {
	ll := s2.LatLngFromDegrees(lat, lon)
	if !m.bounds.ContainsLatLng(ll) {
		return da.CellPosition{}, false
	}

	row := int((m.maxLat() - lat) / m.latStep())
	col := int((lon - m.minLon()) / m.lonStep())
	if row >= m.rows {
		row = m.rows - 1
	}
	if col >= m.cols {
		col = m.cols - 1
	}
	return da.NewCellPosition(row, col), true
}

// CellCenter returns the geographic midpoint of a cell.
func (m *GridMapper) CellCenter(pos da.CellPosition) Coordinate {
	lat := m.maxLat() - (float64(pos.Row)+0.5)*m.latStep()
	lon := m.minLon() + (float64(pos.Col)+0.5)*m.lonStep()
	return NewCoordinate(lat, lon)
}

// CellBounds returns the cell's bounding box as (minLat, minLon, maxLat, maxLon).
func (m *GridMapper) CellBounds(pos da.CellPosition) (float64, float64, float64, float64) {
	maxLat := m.maxLat() - float64(pos.Row)*m.latStep()
	minLat := maxLat - m.latStep()
	minLon := m.minLon() + float64(pos.Col)*m.lonStep()
	maxLon := minLon + m.lonStep()
	return minLat, minLon, maxLat, maxLon
}

// PathCoordinates maps a cell path to the centers of its cells, for polyline
// encoding in API responses.
func (m *GridMapper) PathCoordinates(path []da.CellPosition) []Coordinate {
	coords := make([]Coordinate, len(path))
	for i, pos := range path {
		coords[i] = m.CellCenter(pos)
	}
	return coords
}

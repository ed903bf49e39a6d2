package spatialindex

import (
	"math"

	"github.com/bagas-w/gridway/pkg"
	"github.com/bagas-w/gridway/pkg/concurrent"
	"github.com/bagas-w/gridway/pkg/costfunction"
	da "github.com/bagas-w/gridway/pkg/datastructure"
	"github.com/bagas-w/gridway/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

const annotateWorkers = 4

type terrainEntry struct {
	class  pkg.RoadClass
	area   da.TerrainArea
	isArea bool
}

// TerrainIndex is an r-tree over classified road segments and terrain areas,
// used to answer "which features touch this cell" when annotating the grid.
// Boxes are stored (lon, lat) like the rest of the codebase's spatial lookups.
type TerrainIndex struct {
	tr *rtree.RTreeG[terrainEntry]
}

func NewTerrainIndex() *TerrainIndex {
	var tr rtree.RTreeG[terrainEntry]
	return &TerrainIndex{
		tr: &tr,
	}
}

// Build inserts every segment and area of the parsed terrain data. Each
// segment box is padded by boundingBoxRadius (in km) so a road carries its
// physical width: a way hugging a cell border still prices the adjacent cell.
func (ti *TerrainIndex) Build(data *da.TerrainData, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("building terrain r-tree index...")

	for _, seg := range data.Segments {
		lowerFromLat, lowerFromLon := geo.GetDestinationPoint(seg.FromLat, seg.FromLon, 225, boundingBoxRadius)
		upperFromLat, upperFromLon := geo.GetDestinationPoint(seg.FromLat, seg.FromLon, 45, boundingBoxRadius)

		lowerToLat, lowerToLon := geo.GetDestinationPoint(seg.ToLat, seg.ToLon, 225, boundingBoxRadius)
		upperToLat, upperToLon := geo.GetDestinationPoint(seg.ToLat, seg.ToLon, 45, boundingBoxRadius)

		minLat := math.Min(lowerFromLat, lowerToLat)
		maxLat := math.Max(upperFromLat, upperToLat)
		minLon := math.Min(lowerFromLon, lowerToLon)
		maxLon := math.Max(upperFromLon, upperToLon)

		ti.tr.Insert([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
			terrainEntry{class: seg.Class})
	}

	for _, area := range data.Areas {
		ti.tr.Insert([2]float64{area.MinLon, area.MinLat}, [2]float64{area.MaxLon, area.MaxLat},
			terrainEntry{class: area.Class, area: area, isArea: true})
	}

	log.Info("terrain r-tree index built",
		zap.Int("segments", len(data.Segments)),
		zap.Int("areas", len(data.Areas)))
}

func (ti *TerrainIndex) search(minLat, minLon, maxLat, maxLon float64) []terrainEntry {
	results := make([]terrainEntry, 0, 8)
	ti.tr.Search([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
		func(min, max [2]float64, data terrainEntry) bool {
			results = append(results, data)
			return true
		})
	return results
}

// AnnotateGrid writes a weight or wall flag into every grid cell from the
// indexed terrain. A road touching the cell wins with its best (cheapest)
// class; otherwise a building footprint covering the cell center makes it a
// wall; otherwise a park area prices the cell as park; cells with no feature
// get the worst passable weight.
func (ti *TerrainIndex) AnnotateGrid(grid *da.Grid, mapper *geo.GridMapper,
	cf costfunction.CostFunction, log *zap.Logger) error {
	pool := concurrent.NewWorkerPool[int, error](annotateWorkers, grid.Rows())
	pool.Start(func(row int) error {
		return ti.annotateRow(grid, mapper, cf, row)
	})
	for row := 0; row < grid.Rows(); row++ {
		pool.AddJob(row)
	}
	pool.Close()
	pool.Wait()

	for err := range pool.CollectResults() {
		if err != nil {
			return err
		}
	}

	log.Info("grid annotated from terrain data",
		zap.Int("rows", grid.Rows()), zap.Int("cols", grid.Cols()))
	return nil
}

// annotateRow fills one row; rows are disjoint so workers never touch the
// same cell.
func (ti *TerrainIndex) annotateRow(grid *da.Grid, mapper *geo.GridMapper,
	cf costfunction.CostFunction, row int) error {
	for col := 0; col < grid.Cols(); col++ {
		pos := da.NewCellPosition(row, col)
		minLat, minLon, maxLat, maxLon := mapper.CellBounds(pos)
		center := mapper.CellCenter(pos)

		bestWeight := math.Inf(1)
		hasRoad := false
		coveredByBuilding := false
		inPark := false

		for _, entry := range ti.search(minLat, minLon, maxLat, maxLon) {
			switch {
			case !entry.isArea:
				hasRoad = true
				if w := cf.GetWeight(entry.class); w < bestWeight {
					bestWeight = w
				}
			case cf.IsImpassable(entry.class):
				if entry.area.ContainsPoint(center.GetLat(), center.GetLon()) {
					coveredByBuilding = true
				}
			default:
				inPark = true
			}
		}

		var err error
		switch {
		case hasRoad:
			err = grid.SetWeight(pos, bestWeight)
		case coveredByBuilding:
			err = grid.SetWall(pos, true)
		case inPark:
			err = grid.SetWeight(pos, cf.GetWeight(pkg.PARK))
		default:
			err = grid.SetWeight(pos, cf.GetWeight(pkg.UNKNOWN))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"context"
	"flag"

	"github.com/bagas-w/gridway/pkg/costfunction"
	"github.com/bagas-w/gridway/pkg/datastructure"
	"github.com/bagas-w/gridway/pkg/engine/routing"
	"github.com/bagas-w/gridway/pkg/geo"
	"github.com/bagas-w/gridway/pkg/http"
	"github.com/bagas-w/gridway/pkg/http/usecases"
	"github.com/bagas-w/gridway/pkg/logger"
	"github.com/bagas-w/gridway/pkg/osmparser"
	"github.com/bagas-w/gridway/pkg/spatialindex"
	"github.com/bagas-w/gridway/pkg/util"
	"go.uber.org/zap"
)

var (
	rows    = flag.Int("rows", 64, "number of grid rows")
	cols    = flag.Int("cols", 64, "number of grid columns")
	mapFile = flag.String("map_file", "", "openstreetmap pbf file to derive cell weights from (empty = uniform grid)")

	roadBoundingBoxRadius = flag.Float64("road_bounding_box_radius", 0.05, "road segment (r-tree) bounding box padding radius in km")
	minLat                = flag.Float64("min_lat", -7.8320, "south edge of the mapped area")
	minLon                = flag.Float64("min_lon", 110.3550, "west edge of the mapped area")
	maxLat                = flag.Float64("max_lat", -7.7560, "north edge of the mapped area")
	maxLon                = flag.Float64("max_lon", 110.4350, "east edge of the mapped area")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		logger.Warn("no config file found, using defaults", zap.Error(err))
	}

	grid, err := datastructure.NewGrid(*rows, *cols)
	if err != nil {
		panic(err)
	}

	var mapper *geo.GridMapper
	if *mapFile != "" {
		mapper, err = geo.NewGridMapper(*minLat, *minLon, *maxLat, *maxLon, *rows, *cols)
		if err != nil {
			panic(err)
		}

		terrain, err := osmParse(*mapFile, logger)
		if err != nil {
			panic(err)
		}

		index := spatialindex.NewTerrainIndex()
		index.Build(terrain, *roadBoundingBoxRadius, logger)

		costFunction := costfunction.NewRoadClassCostFunction()
		if err := index.AnnotateGrid(grid, mapper, costFunction, logger); err != nil {
			panic(err)
		}
	}

	searchEngine, err := routing.NewGridSearchEngine(grid, logger)
	if err != nil {
		panic(err)
	}

	api := http.NewServer(logger)

	pathfinderService := usecases.NewPathfinderService(logger, searchEngine, mapper)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	api.Use(ctx,
		logger, false, pathfinderService)

	signal := http.GracefulShutdown()

	logger.Info("Gridway Pathfinding Engine Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

func osmParse(mapFile string, logger *zap.Logger) (*datastructure.TerrainData, error) {
	parser := osmparser.NewOsmParser(logger)
	return parser.Parse(mapFile)
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lintang-b-s/location-index/pkg/concurrent"
	"github.com/lintang-b-s/location-index/pkg/di"
	"github.com/lintang-b-s/location-index/pkg/geo"
	"github.com/lintang-b-s/location-index/pkg/locationindex"

	"github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"
)

var (
	numPoints = flag.Int("n", 100000, "number of random Dhaka points to index when -f is empty")
	mapFile   = flag.String("f", "", "optional .osm.pbf file, its named places are indexed instead of random points")
	queryLat  = flag.Float64("lat", 23.8103, "radius query center latitude")
	queryLon  = flag.Float64("lon", 90.4125, "radius query center longitude")
	radius    = flag.Float64("radius", 5, "radius query distance in km")
	workers   = flag.Int("workers", 0, "insert and query goroutines, 0 uses BENCH_WORKERS from config")
)

// workerCount prefers the -workers flag over the configured count.
func workerCount(flagWorkers, configured int) int {
	if flagWorkers > 0 {
		return flagWorkers
	}
	if configured > 0 {
		return configured
	}
	return 1
}

// queryConcurrently runs one radius query per center on the given number of
// goroutines and returns the total number of results.
func queryConcurrently(ctx context.Context, index locationindex.LocationService[geo.Place],
	centers [][2]float64, radius float64, workers int) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var total atomic.Int64
	for _, center := range centers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			total.Add(int64(len(index.QueryRadius(center[0], center[1], radius))))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(total.Load()), nil
}

func randomDhakaPoints(n int) []geo.Point[geo.Place] {
	rd := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	points := make([]geo.Point[geo.Place], 0, n)
	for i := 0; i < n; i++ {
		lat := 23.7 + rd.Float64()*0.2
		lon := 90.3 + rd.Float64()*0.2
		points = append(points, geo.NewPoint(geo.NewPointOptions(lat, lon, geo.NewPlace(int64(i), "", "Dhaka", ""))))
	}
	return points
}

func loadPoints(ctx context.Context) ([]geo.Point[geo.Place], error) {
	if *mapFile == "" {
		return randomDhakaPoints(*numPoints), nil
	}

	nodes, err := geo.ParseOSMPlaces(ctx, *mapFile)
	if err != nil {
		return nil, err
	}
	points := make([]geo.Point[geo.Place], 0, len(nodes))
	for _, node := range nodes {
		points = append(points, node.ToPlacePoint())
	}
	return points, nil
}

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := di.InitializePlaceIndexApp()
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	points, err := loadPoints(ctx)
	if err != nil {
		app.Log.Fatal("failed to load points", zap.Error(err))
	}

	index := app.PlaceIndex
	benchWorkers := workerCount(*workers, app.Config.BenchWorkers)

	bar := progressbar.NewOptions(len(points),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]Indexing points..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	insertWorker := concurrent.NewBackgroundWorker[geo.Point[geo.Place], struct{}](benchWorkers, 1024,
		func(p geo.Point[geo.Place]) struct{} {
			index.Insert(p)
			bar.Add(1)
			return struct{}{}
		})

	start := time.Now()
	insertWorker.Start()
	for _, p := range points {
		if ctx.Err() != nil {
			break
		}
		insertWorker.TriggerProcessing(p)
	}
	insertWorker.Close()
	_ = bar.Finish()

	app.Log.Info("points indexed",
		zap.Int("points", index.Size()),
		zap.Int("workers", benchWorkers),
		zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	result := index.QueryRadius(*queryLat, *queryLon, *radius)
	app.Log.Info("radius query",
		zap.Float64("lat", *queryLat), zap.Float64("lon", *queryLon), zap.Float64("radius_km", *radius),
		zap.Int("results", len(result)),
		zap.Duration("elapsed", time.Since(start)))

	centers := make([][2]float64, 0, 1000)
	for i := 0; i < 1000 && i < len(points); i++ {
		centers = append(centers, [2]float64{points[i].Latitude(), points[i].Longitude()})
	}
	start = time.Now()
	concurrentResults, err := queryConcurrently(ctx, index, centers, *radius, benchWorkers)
	if err != nil {
		app.Log.Fatal("concurrent radius queries interrupted", zap.Error(err))
	}
	app.Log.Info("concurrent radius queries",
		zap.Int("queries", len(centers)),
		zap.Int("results", concurrentResults),
		zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	rangeResult, err := index.QueryRangeBounds(*queryLat-0.02, *queryLon-0.02, *queryLat+0.02, *queryLon+0.02)
	if err != nil {
		app.Log.Fatal("invalid range query", zap.Error(err))
	}
	app.Log.Info("range query",
		zap.Int("results", len(rangeResult)),
		zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	for _, p := range result {
		index.Delete(p)
	}
	app.Log.Info("deleted radius query results",
		zap.Int("deleted", len(result)),
		zap.Int("remaining", index.Size()),
		zap.Duration("elapsed", time.Since(start)))

	index.ClearAll()
}

package geo

import (
	"context"
	"os"
	"runtime"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/schollz/progressbar/v3"
)

// tags that make a named osm node worth indexing. The first one found is the place type.
var typeTags = []string{
	"amenity",
	"shop",
	"tourism",
	"leisure",
	"historic",
	"building",
	"office",
	"healthcare",
	"public_transport",
	"railway",
	"aeroway",
	"place",
}

func isIndexedNode(tags osm.Tags) bool {
	if tags.Find("name") == "" {
		return false
	}
	for _, key := range typeTags {
		if tags.HasTag(key) {
			return true
		}
	}
	return false
}

// ParseOSMPlaces reads every named, typed node of an .osm.pbf file.
func ParseOSMPlaces(ctx context.Context, mapfile string) ([]OSMNode, error) {
	f, err := os.Open(mapfile)
	if err != nil {
		return []OSMNode{}, err
	}
	defer f.Close()

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan]Parsing osm nodes..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	defer bar.Finish()

	scanner := osmpbf.New(ctx, f, runtime.GOMAXPROCS(-1))
	defer scanner.Close()
	scanner.SkipWays = true
	scanner.SkipRelations = true

	nodes := []OSMNode{}
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok || !isIndexedNode(node.Tags) {
			continue
		}
		nodes = append(nodes, NewOSMNode(int64(node.ID), node.Lat, node.Lon, node.Tags.Map()))
		bar.Add(1)
	}

	if err := scanner.Err(); err != nil {
		return []OSMNode{}, err
	}
	return nodes, nil
}

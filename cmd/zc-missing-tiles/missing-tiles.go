package main

import (
	"bufio"
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"zcops/go/pkg/cmd"
	"zcops/go/pkg/coord"
	"zcops/go/pkg/coord/cmp"
	"zcops/go/pkg/coord/gen"
	"zcops/go/pkg/coord/morton"
)

func mustOpenForWriting(path string) io.WriteCloser {
	result, err := os.Create(path)
	if err != nil {
		log.Fatalf("Error opening %#v for writing: %s", path, err)
	}
	return result
}

func mustClose(wr io.Closer) {
	err := wr.Close()
	if err != nil {
		log.Fatalf("Unable to close: %s", err.Error())
	}
}

// readTiles reads z/x/y lines, keeping the distinct coordinates at the
// wanted zoom. Lines at other zooms are reported and skipped.
func readTiles(rd io.Reader, zoom uint) []coord.Coord {
	seen := coord.NewCoordSet()
	var tiles []coord.Coord
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := scanner.Text()
		c, err := coord.Decode(line)
		if err != nil {
			log.Fatalf("Failed to read coord from %#v: %s", line, err)
		}
		if c.Z != zoom {
			fmt.Fprintf(os.Stderr, "Skipping tile %s, expecting zoom %d\n", c, zoom)
			continue
		}
		if !seen.Get(*c) {
			seen.Set(*c, true)
			tiles = append(tiles, *c)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Error reading tiles: %s", err)
	}
	return tiles
}

func main() {
	var tilesPath, outputPath string
	var zoom uint
	var isCompressed bool

	flag.StringVar(&tilesPath, "tiles-file", "", "path to tiles file to read")
	flag.StringVar(&outputPath, "output", "", "path to write missing tiles to, stdout when empty")
	flag.UintVar(&zoom, "zoom", 0, "zoom whose grid the tiles file should cover")
	flag.BoolVar(&isCompressed, "compressed", false, "Input tiles-file is a gzip compressed file.")

	flag.Parse()

	if tilesPath == "" {
		cmd.DieWithUsage()
	}
	// the dedupe set holds a full grid bitmap, which caps the zoom well
	// below what the codec itself could handle
	if zoom > coord.MAX_SET_ZOOM {
		log.Fatalf("Zoom %d exceeds maximum %d", zoom, coord.MAX_SET_ZOOM)
	}

	var tf io.ReadCloser
	tf, err := os.Open(tilesPath)
	if err != nil {
		log.Fatalf("Error opening %#v for reading: %s", tilesPath, err.Error())
	}
	defer mustClose(tf)

	if isCompressed {
		tf, err = gzip.NewReader(tf)
		if err != nil {
			log.Fatalf("Error decompressing %#v: %s", tilesPath, err.Error())
		}
	}

	present := readTiles(tf, zoom)
	fmt.Fprintf(os.Stderr, "Read %d distinct tiles at zoom %d\n", len(present), zoom)

	// diff against the full grid in curve order, so the missing tiles
	// come out sorted by key
	sort.Sort(morton.ByCurve(present))
	missing := cmp.FindMissingTiles(gen.NewCurve(zoom), gen.NewSlice(present), morton.LessCurve)

	var wr io.Writer = os.Stdout
	if outputPath != "" {
		f := mustOpenForWriting(outputPath)
		defer mustClose(f)
		wr = f
	}
	buf := bufio.NewWriter(wr)
	for _, c := range missing {
		fmt.Fprintf(buf, "%s\n", c)
	}
	if err := buf.Flush(); err != nil {
		log.Fatalf("Error flushing output: %s", err)
	}
}

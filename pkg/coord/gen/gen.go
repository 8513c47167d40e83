package gen

import (
	"fmt"

	"zcops/go/pkg/coord"
	"zcops/go/pkg/coord/morton"
)

// Generator provides an interface for yielding successive coordinates.
type Generator interface {
	Next() *coord.Coord
}

func dimRange(zoom uint) uint {
	return uint(1) << zoom
}

type zoomRangeState struct {
	next         coord.Coord
	end          uint
	curZoomRange uint
}

// NewZoomRange returns a Generator that yields all coordinates from begin zoom
// to end zoom in z/y/x grid order. The end zoom is inclusive.
func NewZoomRange(zoomBegin uint, zoomEndInclusive uint) Generator {
	return &zoomRangeState{
		next:         coord.Coord{Z: zoomBegin, X: 0, Y: 0},
		end:          zoomEndInclusive,
		curZoomRange: dimRange(zoomBegin),
	}
}

func (g *zoomRangeState) Next() *coord.Coord {
	if g.next.Z > g.end {
		return nil
	}
	result := g.next
	nextCoord := &g.next
	nextCoord.X++
	if nextCoord.X == g.curZoomRange {
		nextCoord.X = 0
		nextCoord.Y++
		if nextCoord.Y == g.curZoomRange {
			nextCoord.Y = 0
			nextCoord.Z++
			g.curZoomRange = dimRange(nextCoord.Z)
		}
	}
	return &result
}

type sliceState struct {
	idx    uint
	coords []coord.Coord
}

// NewSlice returns a Generator that yields all coordinates in the slice.
func NewSlice(coords []coord.Coord) Generator {
	return &sliceState{0, coords}
}

func (g *sliceState) Next() *coord.Coord {
	if g.idx >= uint(len(g.coords)) {
		return nil
	}
	result := g.coords[g.idx]
	g.idx++
	return &result
}

type curveState struct {
	zoom uint
	next uint64
	end  uint64
}

// NewCurve returns a Generator that yields every coordinate of the zoom's
// 2^zoom x 2^zoom grid in ascending Morton key order. Curve order is
// numeric key order, so the generator counts keys 0..4^zoom-1 and decodes
// each one rather than sorting anything; it holds no more state than the
// next key. A fresh generator always yields the same sequence.
func NewCurve(zoom uint) Generator {
	if zoom > morton.MaxZoom {
		panic(fmt.Sprintf("Zoom levels > %d are not supported by gen.NewCurve", morton.MaxZoom))
	}
	return &curveState{
		zoom: zoom,
		end:  uint64(1) << (2 * zoom),
	}
}

func (g *curveState) Next() *coord.Coord {
	if g.next == g.end {
		return nil
	}
	c, err := morton.Decode(g.next, g.zoom)
	if err != nil {
		// keys counted up to 4^zoom cannot be out of range
		panic(err)
	}
	g.next++
	return &c
}

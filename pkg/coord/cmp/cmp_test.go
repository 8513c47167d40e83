package cmp

import (
	"sort"
	"testing"

	"zcops/go/pkg/coord"
	"zcops/go/pkg/coord/gen"
	"zcops/go/pkg/coord/morton"
)

func lessZYX(a, b coord.Coord) bool {
	return a.LessZYX(b)
}

func TestFindMissingTilesZYXOrder(t *testing.T) {
	exp := gen.NewZoomRange(1, 1)
	act := gen.NewSlice([]coord.Coord{
		{Z: 1, X: 0, Y: 0},
		{Z: 1, X: 1, Y: 1},
	})
	missing := FindMissingTiles(exp, act, lessZYX)
	want := []coord.Coord{
		{Z: 1, X: 1, Y: 0},
		{Z: 1, X: 0, Y: 1},
	}
	if len(missing) != len(want) {
		t.Fatalf("Expecting %d missing tiles, got %d", len(want), len(missing))
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Errorf("Expecting missing tile %s, got %s", want[i], missing[i])
		}
	}
}

func TestFindMissingTilesCurveOrder(t *testing.T) {
	// drop two tiles from the zoom 2 grid and diff in curve order
	var present []coord.Coord
	dropped := map[coord.Coord]bool{
		{Z: 2, X: 2, Y: 1}: true,
		{Z: 2, X: 3, Y: 3}: true,
	}
	g := gen.NewCurve(2)
	for c := g.Next(); c != nil; c = g.Next() {
		if !dropped[*c] {
			present = append(present, *c)
		}
	}
	sort.Sort(morton.ByCurve(present))

	missing := FindMissingTiles(gen.NewCurve(2), gen.NewSlice(present), morton.LessCurve)
	if len(missing) != 2 {
		t.Fatalf("Expecting 2 missing tiles, got %d", len(missing))
	}
	for _, c := range missing {
		if !dropped[c] {
			t.Errorf("Unexpected missing tile %s", c)
		}
	}
}

func TestFindMissingTilesNoneMissing(t *testing.T) {
	missing := FindMissingTiles(gen.NewCurve(1), gen.NewCurve(1), morton.LessCurve)
	if len(missing) != 0 {
		t.Errorf("Expecting no missing tiles, got %d", len(missing))
	}
}

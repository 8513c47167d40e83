package cmp

import (
	"zcops/go/pkg/coord"
	"zcops/go/pkg/coord/gen"
)

// Less orders two coordinates. Both coord.Coord.LessZYX (wrapped in a
// closure) and morton.LessCurve satisfy it.
type Less func(a, b coord.Coord) bool

// FindMissingTiles compares two coordinate generators to find the missing tiles.
// It assumes that the first generator is the exhaustive list of what's
// expected, and reports the coordinates that are missing from the second
// generator. Both generators must yield tiles sorted by the given order.
func FindMissingTiles(exp gen.Generator, act gen.Generator, less Less) []coord.Coord {
	var result []coord.Coord
	expC := exp.Next()
	actC := act.Next()
	for {
		if expC == nil {
			break
		}
		if actC == nil {
			result = append(result, *expC)
			expC = exp.Next()
		} else if less(*expC, *actC) {
			result = append(result, *expC)
			expC = exp.Next()
		} else if !less(*actC, *expC) {
			expC = exp.Next()
			actC = act.Next()
		} else {
			actC = act.Next()
		}
	}
	return result
}

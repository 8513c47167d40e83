package morton

import (
	"fmt"
	"math/rand"
	"reflect"

	"zcops/go/pkg/coord"
)

// This contains test utility functions for testing in the morton package

func newValidCoordGenerator(maxZoomInclusive uint) func([]reflect.Value, *rand.Rand) {
	return func(values []reflect.Value, rand *rand.Rand) {
		if len(values) != 1 {
			panic(fmt.Errorf("unexpected number of values to gen: %d", len(values)))
		}
		zoom := uint(rand.Intn(int(maxZoomInclusive) + 1))
		c := coord.Coord{
			Z: zoom,
			X: uint(rand.Uint64() & ((1 << zoom) - 1)),
			Y: uint(rand.Uint64() & ((1 << zoom) - 1)),
		}
		values[0] = reflect.ValueOf(&c)
	}
}

package morton

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"zcops/go/pkg/coord"
)

// MaxZoom is the largest zoom that can be encoded. A key carries 2 bits
// per zoom level, so zoom 31 is the most a u64 can hold.
const MaxZoom = 31

var (
	// ErrInvalidZoom means the zoom cannot be represented by a key.
	ErrInvalidZoom = errors.New("invalid zoom")
	// ErrCoordOutOfRange means x or y is outside [0, 2^z) for the
	// coordinate's own zoom.
	ErrCoordOutOfRange = errors.New("coordinate out of range")
	// ErrInvalidKeyLength means a key's bit length is not 2*zoom.
	ErrInvalidKeyLength = errors.New("invalid key length")
)

// magic masks for spreading the bits of a u32 out over the even bit
// positions of a u64, and shift amounts paired with them
var (
	masks = [...]uint64{
		0x5555555555555555,
		0x3333333333333333,
		0x0F0F0F0F0F0F0F0F,
		0x00FF00FF00FF00FF,
		0x0000FFFF0000FFFF,
		0x00000000FFFFFFFF,
	}
	shifts = [...]uint{0, 1, 2, 4, 8, 16}
)

func spread(v uint64) uint64 {
	for i := 4; i >= 0; i-- {
		v = (v | v<<shifts[i+1]) & masks[i]
	}
	return v
}

func compact(v uint64) uint64 {
	for i := 0; i <= 5; i++ {
		v = (v | v>>shifts[i]) & masks[i]
	}
	return v
}

// interleave builds the raw key bit pattern. y takes the odd bit
// positions and x the even ones, counting from the least significant
// bit, which puts the y bit before the x bit at every level when read
// most significant first.
func interleave(x, y uint64) uint64 {
	return spread(x) | spread(y)<<1
}

// Key is the Morton (Z-order curve) key of a tile coordinate. It holds
// the interleaved bit pattern together with its zoom, so the bit length
// of a key is always exactly 2*zoom. The zero value is the zoom 0 key,
// which has no bits and denotes the single tile covering the whole grid.
type Key struct {
	val  uint64
	zoom uint
}

// Encode converts a coordinate into its curve key. The coordinate's
// zoom must not exceed MaxZoom and x, y must be within the zoom's grid;
// out of range input is an error, never clamped.
func Encode(c coord.Coord) (Key, error) {
	if c.Z > MaxZoom {
		return Key{}, fmt.Errorf("cannot encode coordinate, z=%d > %d: %w", c.Z, MaxZoom, ErrInvalidZoom)
	}
	dim := uint64(1) << c.Z
	if uint64(c.X) >= dim || uint64(c.Y) >= dim {
		return Key{}, fmt.Errorf("coordinate %s does not fit zoom %d: %w", c, c.Z, ErrCoordOutOfRange)
	}
	return Key{interleave(uint64(c.X), uint64(c.Y)), c.Z}, nil
}

// Decode converts a raw key value at a given zoom back into its tile
// coordinate. The value must fit in 2*zoom bits.
func Decode(val uint64, zoom uint) (coord.Coord, error) {
	if zoom > MaxZoom {
		return coord.Coord{}, fmt.Errorf("cannot decode key, zoom=%d > %d: %w", zoom, MaxZoom, ErrInvalidZoom)
	}
	if uint(bits.Len64(val)) > 2*zoom {
		return coord.Coord{}, fmt.Errorf("key %d needs %d bits, zoom %d holds %d: %w", val, bits.Len64(val), zoom, 2*zoom, ErrInvalidKeyLength)
	}
	return coord.Coord{Z: zoom, X: uint(compact(val)), Y: uint(compact(val >> 1))}, nil
}

// Uint64 returns the key's bit pattern as an unsigned integer.
func (k Key) Uint64() uint64 {
	return k.val
}

// Zoom returns the zoom the key was encoded at.
func (k Key) Zoom() uint {
	return k.zoom
}

// Bits returns the key's bit length, which is always 2*zoom.
func (k Key) Bits() uint {
	return 2 * k.zoom
}

// Coord returns the tile coordinate the key encodes.
func (k Key) Coord() coord.Coord {
	return coord.Coord{Z: k.zoom, X: uint(compact(k.val)), Y: uint(compact(k.val >> 1))}
}

// String renders the key in its textual form: '0'/'1' characters, most
// significant bit first, 2*zoom characters long. Zoom 0 is the empty
// string. This form is for debugging and printing; use Uint64 otherwise.
func (k Key) String() string {
	var sb strings.Builder
	for i := int(k.Bits()) - 1; i >= 0; i-- {
		if (k.val>>uint(i))&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseBitString parses the textual key form produced by Key.String.
// The string length must be even, since every zoom level contributes
// exactly two bits.
func ParseBitString(s string) (Key, error) {
	if len(s)%2 != 0 {
		return Key{}, fmt.Errorf("key %#v has %d bits, want an even count: %w", s, len(s), ErrInvalidKeyLength)
	}
	zoom := uint(len(s) / 2)
	if zoom > MaxZoom {
		return Key{}, fmt.Errorf("key %#v implies zoom %d > %d: %w", s, zoom, MaxZoom, ErrInvalidZoom)
	}
	var val uint64
	for i, ch := range s {
		switch ch {
		case '0':
			val <<= 1
		case '1':
			val = val<<1 | 1
		default:
			return Key{}, fmt.Errorf("key %#v has invalid character %#v at %d", s, string(ch), i)
		}
	}
	return Key{val, zoom}, nil
}

// LessCurve returns true if a sorts before b in curve order: first by
// zoom, then by Morton key. At equal zooms this matches comparing the
// Encode results of the two coordinates as unsigned integers.
func LessCurve(a, b coord.Coord) bool {
	if a.Z != b.Z {
		return a.Z < b.Z
	}
	return interleave(uint64(a.X), uint64(a.Y)) < interleave(uint64(b.X), uint64(b.Y))
}

// ByCurve is a wrapper type used for sorting coordinates into curve order.
type ByCurve []coord.Coord

func (a ByCurve) Len() int      { return len(a) }
func (a ByCurve) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a ByCurve) Less(i, j int) bool {
	return LessCurve(a[i], a[j])
}

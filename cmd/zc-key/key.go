package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"zcops/go/pkg/cmd"
	"zcops/go/pkg/coord"
	"zcops/go/pkg/coord/morton"
)

func main() {
	var tileStr string
	var keyStr string
	var bitStr string
	var zoom uint

	flag.StringVar(&tileStr, "tile", "", "tile coordinate z/x/y to encode")
	flag.StringVar(&keyStr, "key", "", "key value to decode, requires -zoom")
	flag.StringVar(&bitStr, "bits", "", "key bit string to decode, eg 000110")
	flag.UintVar(&zoom, "zoom", 0, "zoom for -key")

	flag.Parse()

	switch {
	case tileStr != "":
		c, err := coord.Decode(tileStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid tile %s: %s\n", tileStr, err)
			cmd.DieWithUsage()
		}
		k, err := morton.Encode(*c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot encode %s: %s\n", c, err)
			os.Exit(1)
		}
		if k.Bits() == 0 {
			fmt.Printf("%d\n", k.Uint64())
		} else {
			fmt.Printf("%d %s\n", k.Uint64(), k)
		}

	case bitStr != "":
		k, err := morton.ParseBitString(bitStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid key bits %#v: %s\n", bitStr, err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", k.Coord())

	case keyStr != "":
		val, err := strconv.ParseUint(keyStr, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid key %#v: %s\n", keyStr, err)
			cmd.DieWithUsage()
		}
		c, err := morton.Decode(val, zoom)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cannot decode key %d at zoom %d: %s\n", val, zoom, err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", c)

	default:
		cmd.DieWithUsage()
	}
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gopkg.in/yaml.v2"

	"zcops/go/pkg/cmd"
	"zcops/go/pkg/coord/gen"
	"zcops/go/pkg/coord/morton"
)

type curveConfig struct {
	Zooms     []uint `yaml:"zooms"`
	Output    string `yaml:"output"`
	WithKeys  bool   `yaml:"with-keys"`
	GridOrder bool   `yaml:"grid-order"`
}

func readConfig(yamlPath string) (*curveConfig, error) {
	yamlFile, err := os.Open(yamlPath)
	if err != nil {
		return nil, err
	}
	yamlDec := yaml.NewDecoder(yamlFile)
	var cfg curveConfig
	err = yamlDec.Decode(&cfg)
	if err != nil {
		return nil, err
	}
	err = yamlFile.Close()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func writeTiles(wr io.Writer, zoom uint, withKeys bool, gridOrder bool) error {
	var g gen.Generator
	if gridOrder {
		g = gen.NewZoomRange(zoom, zoom)
	} else {
		g = gen.NewCurve(zoom)
	}
	for c := g.Next(); c != nil; c = g.Next() {
		var err error
		if withKeys {
			k, encErr := morton.Encode(*c)
			if encErr != nil {
				return encErr
			}
			_, err = fmt.Fprintf(wr, "%d %s\n", k.Uint64(), c)
		} else {
			_, err = fmt.Fprintf(wr, "%s\n", c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var zoomFlag int
	var yamlPath string
	var outputPath string
	var withKeys bool
	var gridOrder bool

	flag.IntVar(&zoomFlag, "zoom", -1, "zoom to enumerate")
	flag.StringVar(&yamlPath, "config", "", "path to yaml config, instead of flags")
	flag.StringVar(&outputPath, "output", "", "path to write tiles to, stdout when empty")
	flag.BoolVar(&withKeys, "with-keys", false, "prefix each tile with its key value")
	flag.BoolVar(&gridOrder, "grid-order", false, "yield tiles in z/y/x grid order instead of curve order")

	flag.Parse()

	cfg := curveConfig{Output: outputPath, WithKeys: withKeys, GridOrder: gridOrder}
	if yamlPath != "" {
		parsed, err := readConfig(yamlPath)
		if err != nil {
			log.Fatalf("Error reading config %#v: %s", yamlPath, err)
		}
		cfg = *parsed
	} else if zoomFlag >= 0 {
		cfg.Zooms = []uint{uint(zoomFlag)}
	}
	if len(cfg.Zooms) == 0 {
		cmd.DieWithUsage()
	}
	for _, zoom := range cfg.Zooms {
		if zoom > morton.MaxZoom {
			log.Fatalf("Zoom %d exceeds maximum %d", zoom, morton.MaxZoom)
		}
	}

	var wr io.Writer = os.Stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			log.Fatalf("Error opening %#v for writing: %s", cfg.Output, err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Fatalf("Unable to close: %s", err)
			}
		}()
		wr = f
	}

	buf := bufio.NewWriter(wr)
	for _, zoom := range cfg.Zooms {
		if err := writeTiles(buf, zoom, cfg.WithKeys, cfg.GridOrder); err != nil {
			log.Fatalf("Error writing tiles for zoom %d: %s", zoom, err)
		}
	}
	if err := buf.Flush(); err != nil {
		log.Fatalf("Error flushing output: %s", err)
	}
}

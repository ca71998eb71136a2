// Command gridpath prints the least total cost of walking a digit grid from
// its top-left to its bottom-right cell, where entering a cell costs its
// digit. Cells marked '#' are walls.
//
// Usage:
//
//	gridpath -input map.txt [-render] [-v]
//	GRIDPATH_INPUT=map.txt gridpath
//	cat map.txt | gridpath -input -
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridkit/dijkstra"
	"github.com/katalvlaran/gridkit/geom"
	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/parse"
)

const wall = -1

type config struct {
	input   string
	render  bool
	verbose bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.WithError(err).Fatal("bad arguments")
	}
	if cfg.verbose {
		log.SetLevel(log.DebugLevel)
	}
	if err := run(cfg, os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Fatal("gridpath failed")
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.StringVar(&cfg.input, "input", "", "grid file, or - for stdin (default $GRIDPATH_INPUT)")
	fs.BoolVar(&cfg.render, "render", false, "print the grid with the chosen path marked")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.input == "" {
		cfg.input = os.Getenv("GRIDPATH_INPUT")
		log.Debugf("Defaulting input to $GRIDPATH_INPUT=%q", cfg.input)
	}
	if cfg.input == "" {
		return cfg, errors.New("no input: pass -input or set GRIDPATH_INPUT")
	}

	return cfg, nil
}

func run(cfg config, stdin io.Reader, out io.Writer) error {
	text, err := readInput(cfg.input, stdin)
	if err != nil {
		return err
	}

	g, err := grid.Parse[int](text, grid.Undelimited(), cell)
	if err != nil {
		return fmt.Errorf("parse grid: %w", err)
	}
	log.WithFields(log.Fields{"width": g.Width(), "height": g.Height()}).Info("grid loaded")

	next := dijkstra.GridNeighbors(g, func(_, _ geom.Point[int], v int) (int64, bool) {
		return int64(v), v != wall
	})
	exit := g.Bounds()
	cost, path, err := dijkstra.ShortestPath(geom.Origin[int](),
		func(p geom.Point[int]) bool { return p == exit },
		next,
		dijkstra.WithOnVisit(func(n any, d int64) {
			log.WithFields(log.Fields{"node": n, "dist": d}).Debug("visit")
		}),
	)
	if err != nil {
		return fmt.Errorf("search %v→%v: %w", geom.Origin[int](), exit, err)
	}
	log.WithFields(log.Fields{"cost": cost, "steps": len(path) - 1}).Info("path found")

	fmt.Fprintln(out, cost)
	if cfg.render {
		fmt.Fprintln(out, overlay(g, path))
	}

	return nil
}

func readInput(name string, stdin io.Reader) (string, error) {
	var (
		b   []byte
		err error
	)
	if name == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(name)
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

// cell decodes one character: a digit cost or a '#' wall.
func cell(tok string) (int, error) {
	if tok == "#" {
		return wall, nil
	}
	v, err := parse.Int[int](tok)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 9 {
		return 0, fmt.Errorf("%w: %q is not a digit", parse.ErrSyntax, tok)
	}
	return v, nil
}

// overlay renders g with every path cell replaced by '*'.
func overlay(g *grid.Grid[int, int], path []geom.Point[int]) string {
	onPath := mapset.Of(path...)
	var b strings.Builder
	g.Each(func(p geom.Point[int], v int) {
		if p.X == 0 && p.Y > 0 {
			b.WriteByte('\n')
		}
		switch {
		case onPath.Has(p):
			b.WriteByte('*')
		case v == wall:
			b.WriteByte('#')
		default:
			b.WriteByte(byte('0' + v))
		}
	})
	return b.String()
}

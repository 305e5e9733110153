package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"eca/internal/core"
	"eca/internal/render"
	"eca/internal/sims/elementary"

	"github.com/pkg/errors"
)

func main() {
	cells := flag.Int("cells", 65, "grid width and height in cells")
	from := flag.Int("from", 0, "first rule to compute")
	to := flag.Int("to", 255, "last rule to compute")
	random := flag.Bool("random", false, "start every rule from the same random first row")
	seed := flag.Int64("seed", 42, "seed for the random first row")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel rule computations")
	out := flag.String("out", "", "directory to write one PNG per rule into")
	scale := flag.Int("scale", 4, "pixels per cell in PNG output")
	show := flag.Int("show", -1, "print this rule as text and exit")
	flag.Parse()

	if *cells <= 0 {
		log.Fatalf("cells must be positive, got %d", *cells)
	}
	for _, r := range []int{*from, *to} {
		if r < 0 || r > 255 {
			log.Fatalf("rule %d out of range 0-255", r)
		}
	}

	if *show >= 0 {
		if *show > 255 {
			log.Fatalf("rule %d out of range 0-255", *show)
		}
		g := elementary.ComputeGrid(*cells, uint8(*show), *random, core.NewRNG(*seed))
		fmt.Printf("Rule %d\n", *show)
		fmt.Print(render.ASCII(g))
		return
	}

	if *out != "" {
		if err := os.MkdirAll(*out, 0o755); err != nil {
			log.Fatal(errors.Wrapf(err, "[main] failed to create output directory: %+v", *out))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := elementary.ScanOptions{
		Cells:   *cells,
		From:    uint8(*from),
		To:      uint8(*to),
		Random:  *random,
		Seed:    *seed,
		Workers: *workers,
	}
	var visit elementary.VisitFunc
	if *out != "" {
		visit = func(rule uint8, g *core.ByteGrid) error {
			return writeRule(*out, rule, g, *scale)
		}
	}

	results, err := elementary.Scan(ctx, opts, visit)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%-5s %8s %8s %10s %6s\n", "rule", "live", "density", "symmetric", "fixed")
	for _, s := range results {
		fixed := "-"
		if s.FixedFrom >= 0 {
			fixed = fmt.Sprint(s.FixedFrom)
		}
		fmt.Printf("%-5d %8d %8.3f %10t %6s\n", s.Rule, s.Live, s.Density, s.Symmetric, fixed)
	}
	if *out != "" {
		log.Printf("wrote %d images to %s", len(results), *out)
	}
}

func writeRule(dir string, rule uint8, g *core.ByteGrid, scale int) error {
	path := filepath.Join(dir, fmt.Sprintf("rule_%03d.png", rule))
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[writeRule] failed to create file: %+v", path)
	}
	if err := render.WritePNG(f, g, scale); err != nil {
		f.Close()
		return errors.Wrapf(err, "[writeRule] rule %d", rule)
	}
	return errors.Wrapf(f.Close(), "[writeRule] failed to close file: %+v", path)
}

package app

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"eca/internal/sims/elementary"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Cells     int    `json:"cells"`
	Rule      int    `json:"rule"`
	Random    bool   `json:"random"`
	Seed      int64  `json:"seed"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	TPS       int    `json:"tps"`
	Cycle     bool   `json:"cycle"`
	CycleRate int    `json:"cycle_rate"`
	Set       KVList `json:"set"`
	File      string `json:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	sim := elementary.DefaultConfig()
	return &Config{
		Cells:     sim.Cells,
		Rule:      int(sim.Rule),
		Random:    sim.Random,
		Seed:      42,
		Width:     640,
		Height:    360,
		TPS:       60,
		CycleRate: 2,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Cells, "cells", c.Cells, "grid width and height in cells")
	fs.IntVar(&c.Rule, "rule", c.Rule, "initial Wolfram rule (0-255)")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a random first row")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random first rows")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.BoolVar(&c.Cycle, "cycle", c.Cycle, "advance the rule automatically")
	fs.IntVar(&c.CycleRate, "cycle-rate", c.CycleRate, "rules per second while cycling")
	fs.Var(&c.Set, "set", "automaton override in key=value form (repeatable)")
	fs.StringVar(&c.File, "config", c.File, "JSON config file; flags given on the command line win")
}

// LoadFile merges the JSON file at path into c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to read file: %+v", path)
	}
	if err = json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadFile] failed to unmarshal data from file: %+v", path)
	}
	return nil
}

// Validate rejects settings the viewer cannot run with.
func (c *Config) Validate() error {
	if c.Cells <= 0 {
		return errors.Errorf("[Validate] cells must be positive, got %d", c.Cells)
	}
	if c.Rule < 0 || c.Rule > 255 {
		return errors.Errorf("[Validate] rule must be within 0-255, got %d", c.Rule)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return errors.Errorf("[Validate] tps must be positive, got %d", c.TPS)
	}
	if c.CycleRate <= 0 {
		return errors.Errorf("[Validate] cycle rate must be positive, got %d", c.CycleRate)
	}
	return nil
}

// Sim builds the automaton configuration. Entries from -set are applied last.
func (c *Config) Sim() elementary.Config {
	m := map[string]string{
		"cells":  strconv.Itoa(c.Cells),
		"rule":   strconv.Itoa(c.Rule),
		"random": strconv.FormatBool(c.Random),
	}
	for k, v := range c.Set.Map() {
		m[k] = v
	}
	return elementary.FromMap(m)
}

// Load parses args. When -config names a file it is loaded first and the
// command line is applied on top of it.
func Load(name string, args []string, output io.Writer) (*Config, error) {
	cfg := NewConfig()
	if err := parse(cfg, name, args, output); err != nil {
		return nil, err
	}
	if cfg.File != "" {
		path := cfg.File
		cfg = NewConfig()
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
		if err := parse(cfg, name, args, output); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parse(cfg *Config, name string, args []string, output io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "[Load] failed to parse flags")
	}
	return nil
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

// Set appends a key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return errors.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later entries win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}

package app

import (
	"flag"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/pkg/errors"

	"golife/internal/core"
)

// maxImageSide is the largest frame edge in pixels; GIF stores sides as uint16.
const maxImageSide = 65535

// defaultRecordFrames is used when -out is given without a frame count.
const defaultRecordFrames = 100

// Config represents the command-line parameters for the application.
type Config struct {
	Sim         string
	Size        int
	Probability float64
	IntervalMS  int
	Seed        int64
	Scale       int
	Frames      int
	Workers     int
	Out         string
	Chart       string
	File        string
	LogLevel    string
}

// NewConfig returns a Config populated with the defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "life",
		Size:        100,
		Probability: 0.2,
		IntervalMS:  50,
		Scale:       4,
		Workers:     1,
		LogLevel:    "info",
	}
}

// flagAliases maps short flag names to the long name they share a value with.
var flagAliases = map[string]string{
	"n": "size",
	"p": "probability",
	"f": "framerate",
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Size, "size", c.Size, "creates an N*N grid")
	fs.IntVar(&c.Size, "n", c.Size, "shorthand for -size")
	fs.Float64Var(&c.Probability, "probability", c.Probability, "probability of a cell starting alive, in [0,1)")
	fs.Float64Var(&c.Probability, "p", c.Probability, "shorthand for -probability")
	fs.IntVar(&c.IntervalMS, "framerate", c.IntervalMS, "milliseconds between generations")
	fs.IntVar(&c.IntervalMS, "f", c.IntervalMS, "shorthand for -framerate")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial grid (0 picks one from the clock)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.Frames, "frames", c.Frames, "generations to record with -out (default 100)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines computing each generation")
	fs.StringVar(&c.Out, "out", c.Out, "write an animated GIF instead of opening a window")
	fs.StringVar(&c.Chart, "chart", c.Chart, "write a population chart PNG (requires -out)")
	fs.StringVar(&c.File, "config", c.File, "run parameters file, must end in .hcl or .json")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Interval returns the delay between generations.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Validate reports the first out-of-range parameter as an InvalidArgument error.
func (c *Config) Validate() error {
	switch {
	case c.Size <= 0:
		return core.InvalidArgumentf("grid size %d must be positive", c.Size)
	case math.IsNaN(c.Probability) || c.Probability < 0 || c.Probability >= 1:
		return core.InvalidArgumentf("probability %v must be within [0, 1)", c.Probability)
	case c.IntervalMS <= 0:
		return core.InvalidArgumentf("framerate %d must be positive", c.IntervalMS)
	case c.Size > core.MaxGridSize:
		return core.InvalidArgumentf("grid size %d exceeds maximum %d", c.Size, core.MaxGridSize)
	case c.Scale <= 0:
		return core.InvalidArgumentf("scale %d must be positive", c.Scale)
	case c.Scale > maxImageSide/c.Size:
		return core.InvalidArgumentf("grid size %d at scale %d exceeds %d pixels per side", c.Size, c.Scale, maxImageSide)
	case c.Frames < 0:
		return core.InvalidArgumentf("frames %d must not be negative", c.Frames)
	case c.Workers <= 0:
		return core.InvalidArgumentf("workers %d must be positive", c.Workers)
	case c.Chart != "" && c.Out == "":
		return core.InvalidArgumentf("-chart requires -out")
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return core.InvalidArgumentf("log level %q: %v", c.LogLevel, err)
	}
	return nil
}

// fileConfig mirrors the subset of Config that may come from an HCL file.
type fileConfig struct {
	Size        *int     `hcl:"size,optional"`
	Probability *float64 `hcl:"probability,optional"`
	IntervalMS  *int     `hcl:"interval_ms,optional"`
	Seed        *int64   `hcl:"seed,optional"`
	Scale       *int     `hcl:"scale,optional"`
	Frames      *int     `hcl:"frames,optional"`
	Workers     *int     `hcl:"workers,optional"`
}

// applyFile copies values from the HCL file at path into c, skipping any
// parameter named in set.
func (c *Config) applyFile(path string, set map[string]bool) error {
	switch ext := filepath.Ext(path); ext {
	case ".hcl", ".json":
	default:
		return core.InvalidArgumentf("config file %s: extension %q not supported, use .hcl or .json", path, ext)
	}
	var fc fileConfig
	if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
		return errors.Wrapf(core.ErrInvalidArgument, "config file %s: %v", path, err)
	}
	if fc.Size != nil && !set["size"] {
		c.Size = *fc.Size
	}
	if fc.Probability != nil && !set["probability"] {
		c.Probability = *fc.Probability
	}
	if fc.IntervalMS != nil && !set["framerate"] {
		c.IntervalMS = *fc.IntervalMS
	}
	if fc.Seed != nil && !set["seed"] {
		c.Seed = *fc.Seed
	}
	if fc.Scale != nil && !set["scale"] {
		c.Scale = *fc.Scale
	}
	if fc.Frames != nil && !set["frames"] {
		c.Frames = *fc.Frames
		set["frames"] = true
	}
	if fc.Workers != nil && !set["workers"] {
		c.Workers = *fc.Workers
	}
	return nil
}

// Parse binds a fresh Config to fs, parses args, layers the optional HCL file
// under the explicitly set flags and validates the result.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, core.InvalidArgumentf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := flagAliases[name]; ok {
			name = long
		}
		set[name] = true
	})

	if c.File != "" {
		if err := c.applyFile(c.File, set); err != nil {
			return nil, err
		}
	}
	if c.Out != "" && !set["frames"] {
		c.Frames = defaultRecordFrames
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

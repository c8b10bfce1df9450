package app

import (
	"flag"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"mutalife/internal/core"
	"mutalife/internal/render"
	"mutalife/internal/sims/life"
)

// ErrInvalidConfig is returned for driver options outside their valid range.
var ErrInvalidConfig = errors.New("invalid driver configuration")

// Render modes for the headless driver.
const (
	RenderTerminal = "terminal"
	RenderNone     = "none"
)

// Config represents the runtime parameters for both drivers. Values come from
// defaults, then an optional YAML file, then LIFE_* environment variables,
// then explicitly set command-line flags.
type Config struct {
	Size         int     `yaml:"size" env:"LIFE_SIZE"`
	Seed         int64   `yaml:"seed" env:"LIFE_SEED"`
	RandomSeed   bool    `yaml:"random_seed" env:"LIFE_RANDOM_SEED"`
	MutationRate float64 `yaml:"mutation_rate" env:"LIFE_MUTATION_RATE"`
	FPS          float64 `yaml:"fps" env:"LIFE_FPS"`

	Scale int  `yaml:"scale" env:"LIFE_SCALE"`
	HUD   bool `yaml:"hud" env:"LIFE_HUD"`

	Generations int    `yaml:"generations" env:"LIFE_GENERATIONS"`
	LogEvery    int    `yaml:"log_every" env:"LIFE_LOG_EVERY"`
	Render      string `yaml:"render" env:"LIFE_RENDER"`
	Snapshot    string `yaml:"snapshot" env:"LIFE_SNAPSHOT"`

	File string `yaml:"-" env:"LIFE_CONFIG"`
}

// NewConfig returns a Config populated with the documented defaults.
func NewConfig() *Config {
	engine := life.DefaultConfig()
	return &Config{
		Size:         engine.Size,
		Seed:         *engine.Seed,
		MutationRate: engine.MutationRate,
		FPS:          core.DefaultFPS,
		Scale:        render.DefaultBlock,
		LogEvery:     100,
		Render:       RenderTerminal,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "grid is size x size cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initialization")
	fs.BoolVar(&c.RandomSeed, "random-seed", c.RandomSeed, "ignore -seed and draw one from the system entropy source")
	fs.Float64Var(&c.MutationRate, "mutation-rate", c.MutationRate, "per-cell flip probability for each mutation")
	fs.Float64Var(&c.FPS, "fps", c.FPS, "generations per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel block size per cell")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs until quit)")
	fs.IntVar(&c.LogEvery, "log-every", c.LogEvery, "log stats every n generations (0 disables)")
	fs.StringVar(&c.Render, "render", c.Render, "headless renderer: terminal or none")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "write the final frame to this .bmp or .png file")
	fs.StringVar(&c.File, "config", c.File, "YAML configuration file")
}

// Load parses args into a Config using fs, layering the YAML file and the
// environment underneath any flag the caller set explicitly.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	flagged := NewConfig()
	flagged.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, errors.Wrap(err, "[Load] failed to parse flags")
	}

	cfg := NewConfig()
	file := flagged.File
	if file == "" {
		file = os.Getenv("LIFE_CONFIG")
	}
	if file != "" {
		if err := cfg.loadFile(file); err != nil {
			return nil, err
		}
	}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "[Load] failed to parse environment")
	}

	overrides := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
	cfg.Bind(overrides)
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if setErr != nil || overrides.Lookup(f.Name) == nil {
			return
		}
		if err := overrides.Set(f.Name, f.Value.String()); err != nil {
			setErr = errors.Wrapf(err, "[Load] failed to apply flag -%s", f.Name)
		}
	})
	if setErr != nil {
		return nil, setErr
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}
	c.File = filename
	return nil
}

// Validate checks driver options and the engine configuration they produce.
func (c *Config) Validate() error {
	if err := c.Life().Validate(); err != nil {
		return err
	}
	if !(c.FPS > 0) {
		return errors.Wrapf(ErrInvalidConfig, "fps must be positive, got %v", c.FPS)
	}
	if c.Scale <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "scale must be positive, got %d", c.Scale)
	}
	if c.Generations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "generations must not be negative, got %d", c.Generations)
	}
	if c.LogEvery < 0 {
		return errors.Wrapf(ErrInvalidConfig, "log-every must not be negative, got %d", c.LogEvery)
	}
	if c.Render != RenderTerminal && c.Render != RenderNone {
		return errors.Wrapf(ErrInvalidConfig, "unknown renderer %q", c.Render)
	}
	return nil
}

// Life returns the engine configuration described by c.
func (c *Config) Life() life.Config {
	cfg := life.Config{Size: c.Size, MutationRate: c.MutationRate}
	if !c.RandomSeed {
		seed := c.Seed
		cfg.Seed = &seed
	}
	return cfg
}

// Period returns the per-frame wait derived from FPS.
func (c *Config) Period() time.Duration { return core.FramePeriod(c.FPS) }

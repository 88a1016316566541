// Package config loads tourplot settings from TOML.
//
// Values are layered: Default() first, then the file given to Load, then
// whatever the command line overrides. Validate runs on the merged result.
package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/katalvlaran/tourlab/pointgen"
	"github.com/katalvlaran/tourlab/render"
	"github.com/katalvlaran/tourlab/tsp"
)

// ErrInvalidConfig is returned for unreadable, unknown or out-of-range settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full tourplot configuration.
type Config struct {
	Problem Problem `toml:"problem"`
	Solver  Solver  `toml:"solver"`
	Render  Render  `toml:"render"`
}

// Problem describes the node set. Explicit Points win over Count.
type Problem struct {
	Points [][]float64 `toml:"points" validate:"omitempty,dive,len=2"`
	Count  int         `toml:"count" validate:"gte=0"`
	Width  float64     `toml:"width" validate:"gt=0"`
	Height float64     `toml:"height" validate:"gt=0"`
	Seed   int64       `toml:"seed"`
}

// Solver holds the local search settings.
type Solver struct {
	Init      string  `toml:"init" validate:"required"`
	Restarts  int     `toml:"restarts" validate:"gte=1"`
	MaxMoves  int     `toml:"max_moves" validate:"gte=0"`
	TimeLimit string  `toml:"time_limit"`
	Eps       float64 `toml:"eps" validate:"gte=0"`
}

// Render holds the picture settings. An empty Output disables rendering.
type Render struct {
	Output string `toml:"output"`
	Width  int    `toml:"width" validate:"gt=0"`
	Height int    `toml:"height" validate:"gt=0"`
	Labels bool   `toml:"labels"`
}

// Default is the demo setup: ten random nodes in a 100×100 square,
// nearest-neighbour start, 640×480 picture written to graph.png.
func Default() Config {
	ro := render.DefaultOptions()

	return Config{
		Problem: Problem{
			Count:  10,
			Width:  100,
			Height: 100,
			Seed:   1,
		},
		Solver: Solver{
			Init:      string(tsp.InitNearestNeighbour),
			Restarts:  1,
			TimeLimit: "0s",
		},
		Render: Render{
			Output: "graph.png",
			Width:  ro.Width,
			Height: ro.Height,
			Labels: ro.Labels,
		},
	}
}

// Load reads path on top of Default and validates the result. Keys the
// schema does not know are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks struct tags first, then the cross-field rules.
func (c *Config) Validate() error {
	v, tr := configValidator()
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		msgs := make([]string, len(verrs))
		for i, e := range verrs {
			msgs[i] = e.Translate(tr)
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	if len(c.Problem.Points) == 0 && c.Problem.Count < tsp.MinNodes {
		return fmt.Errorf("%w: problem needs points or count >= %d", ErrInvalidConfig, tsp.MinNodes)
	}
	if len(c.Problem.Points) > 0 && len(c.Problem.Points) < tsp.MinNodes {
		return fmt.Errorf("%w: problem needs at least %d points, got %d", ErrInvalidConfig, tsp.MinNodes, len(c.Problem.Points))
	}
	for i, p := range c.Problem.Points {
		if math.IsNaN(p[0]) || math.IsInf(p[0], 0) || math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
			return fmt.Errorf("%w: point %d is not finite", ErrInvalidConfig, i)
		}
	}
	if _, err := tsp.ParseInitMethod(c.Solver.Init); err != nil {
		return fmt.Errorf("%w: solver.init: %v", ErrInvalidConfig, err)
	}
	if _, err := c.timeLimit(); err != nil {
		return err
	}

	return nil
}

var (
	validatorOnce sync.Once
	validate      *validator.Validate
	trans         ut.Translator
)

// configValidator returns the shared validator, built on first use. Its
// messages use the toml key names. Validate is safe for concurrent use once
// built.
func configValidator() (*validator.Validate, ut.Translator) {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("toml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		english := en.New()
		uni := ut.New(english, english)
		tr, _ := uni.GetTranslator("en")
		if err := enTranslations.RegisterDefaultTranslations(v, tr); err != nil {
			panic(fmt.Sprintf("config: register validation messages: %v", err))
		}
		validate, trans = v, tr
	})

	return validate, trans
}

func (c *Config) timeLimit() (time.Duration, error) {
	if c.Solver.TimeLimit == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Solver.TimeLimit)
	if err != nil {
		return 0, fmt.Errorf("%w: solver.time_limit: %v", ErrInvalidConfig, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: solver.time_limit must not be negative", ErrInvalidConfig)
	}

	return d, nil
}

// SolverOptions converts the solver and seed settings into tsp.Options.
func (c *Config) SolverOptions() (tsp.Options, error) {
	method, err := tsp.ParseInitMethod(c.Solver.Init)
	if err != nil {
		return tsp.Options{}, fmt.Errorf("%w: solver.init: %v", ErrInvalidConfig, err)
	}
	limit, err := c.timeLimit()
	if err != nil {
		return tsp.Options{}, err
	}

	opts := tsp.DefaultOptions()
	opts.Init = method
	opts.Seed = c.Problem.Seed
	opts.Restarts = c.Solver.Restarts
	opts.Eps = c.Solver.Eps
	opts.MaxMoves = c.Solver.MaxMoves
	opts.TimeLimit = limit

	return opts, nil
}

// Points returns the explicit points, nil when the node set is generated.
func (c *Config) Points() []tsp.Point {
	if len(c.Problem.Points) == 0 {
		return nil
	}
	pts := make([]tsp.Point, len(c.Problem.Points))
	for i, p := range c.Problem.Points {
		pts[i] = tsp.Point{X: p[0], Y: p[1]}
	}

	return pts
}

// Rect is the sampling rectangle for generated node sets.
func (c *Config) Rect() pointgen.Rect {
	return pointgen.Default(c.Problem.Width, c.Problem.Height)
}

// RenderOptions merges the picture settings into render.DefaultOptions.
func (c *Config) RenderOptions() render.Options {
	o := render.DefaultOptions()
	o.Width = c.Render.Width
	o.Height = c.Render.Height
	o.Labels = c.Render.Labels

	return o
}

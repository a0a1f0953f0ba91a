package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/approx/internal/calculus"
	"github.com/san-kum/approx/internal/experiment"
)

const (
	DefaultMethod  = experiment.MethodEulerConstant
	DefaultProblem = "linear"
)

// Config describes one approximation run. Optional fields left out of the
// file fall back to the problem's own defaults.
type Config struct {
	Method        string   `yaml:"method"`
	Problem       string   `yaml:"problem"`
	X0            *float64 `yaml:"x0,omitempty"`
	Y0            *float64 `yaml:"y0,omitempty"`
	TargetX       *float64 `yaml:"target_x,omitempty"`
	DeltaX        float64  `yaml:"delta_x"`
	InitialX      *float64 `yaml:"initial_x,omitempty"`
	Epsilon       float64  `yaml:"epsilon"`
	MaxIterations int      `yaml:"max_iterations"`
}

func DefaultConfig() *Config {
	return &Config{
		Method:        DefaultMethod,
		Problem:       DefaultProblem,
		DeltaX:        calculus.DefaultDeltaX,
		Epsilon:       calculus.DefaultEpsilon,
		MaxIterations: calculus.DefaultMaxIterations,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Method {
	case experiment.MethodEulerConstant, experiment.MethodEulerGeneral, experiment.MethodNewton:
	default:
		return fmt.Errorf("unknown method %q", c.Method)
	}
	if c.Problem == "" {
		return fmt.Errorf("problem is required")
	}
	if (c.X0 == nil) != (c.Y0 == nil) {
		return fmt.Errorf("x0 and y0 must be set together")
	}
	return nil
}

// Experiment converts the file form into an experiment config.
func (c *Config) Experiment() experiment.Config {
	cfg := experiment.Config{
		Method:        c.Method,
		Problem:       c.Problem,
		TargetX:       c.TargetX,
		DeltaX:        c.DeltaX,
		InitialX:      c.InitialX,
		Epsilon:       c.Epsilon,
		MaxIterations: c.MaxIterations,
	}
	if c.X0 != nil && c.Y0 != nil {
		cfg.Initial = &calculus.Coordinate{X: *c.X0, Y: *c.Y0}
	}
	return cfg
}

func Float(v float64) *float64 { return &v }

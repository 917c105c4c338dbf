// Package config loads cascade job files: a probability-weighted edge list
// plus the seeds, start vertex and output location for one run.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cascade/core"
	"github.com/katalvlaran/cascade/influence"
)

// Default output settings.
const (
	DefaultOutputDir     = "out"
	DefaultDistancesFile = "distances.npy"
	DefaultOrderFile     = "order.yaml"
)

// Sentinel errors returned by Validate.
var (
	ErrNoEdges       = errors.New("config: no edges and no vertices")
	ErrEmptyEndpoint = errors.New("config: edge endpoint is empty")
)

// Edge is one directed edge of the job graph.
type Edge struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Prob float64 `yaml:"prob"`
}

// Output controls where run results are written.
type Output struct {
	Dir       string `yaml:"dir"`
	Distances string `yaml:"distances"`
	Order     string `yaml:"order"`
}

// Config is the top-level job file.
type Config struct {
	SyntheticLabel string   `yaml:"synthetic_label"`
	Seeds          []string `yaml:"seeds"`
	Start          string   `yaml:"start"`
	AllowLoops     bool     `yaml:"allow_loops"`
	// Vertices lists isolated vertices; endpoints of Edges are added implicitly.
	Vertices []string `yaml:"vertices"`
	Edges    []Edge   `yaml:"edges"`
	Output   Output   `yaml:"output"`
}

// Load reads and parses a job file, applies defaults and validates it.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes YAML job bytes, applies defaults and validates the result.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.SyntheticLabel == "" {
		c.SyntheticLabel = influence.DefaultSyntheticLabel
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Output.Distances == "" {
		c.Output.Distances = DefaultDistancesFile
	}
	if c.Output.Order == "" {
		c.Output.Order = DefaultOrderFile
	}
}

// Validate checks structural constraints that do not need the built graph.
// Probability ranges and seed membership are checked by the influence package.
func (c *Config) Validate() error {
	if len(c.Edges) == 0 && len(c.Vertices) == 0 {
		return ErrNoEdges
	}
	for i, e := range c.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edges[%d]", ErrEmptyEndpoint, i)
		}
	}

	return nil
}

// Graph builds a fresh core.Graph from the job's vertices and edges.
func (c *Config) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if c.AllowLoops {
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph(opts...)
	for _, v := range c.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("config: vertex %q: %w", v, err)
		}
	}
	for i, e := range c.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Prob); err != nil {
			return nil, fmt.Errorf("config: edges[%d] %s→%s: %w", i, e.From, e.To, err)
		}
	}

	return g, nil
}

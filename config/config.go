package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/gridlab/geom"
)

// Sentinel errors.
var (
	// ErrInvalid indicates a run file that decodes but does not make sense.
	ErrInvalid = errors.New("config: invalid run file")
	// ErrFormat indicates an unsupported file extension.
	ErrFormat = errors.New("config: unsupported file format")
)

// Puzzle kinds.
const (
	KindHeightmap = "heightmap"
	KindRope      = "rope"
	KindSand      = "sand"
	KindBeacon    = "beacon"
)

// Kinds lists every known puzzle kind.
func Kinds() []string { return []string{KindHeightmap, KindRope, KindSand, KindBeacon} }

// DefaultRow is the beacon row used when a puzzle sets none.
const DefaultRow = 2000000

// DefaultKnots returns the rope lengths used when a puzzle sets none.
func DefaultKnots() []int { return []int{2, 10} }

// DefaultSource returns the sand source used when a puzzle sets none.
func DefaultSource() Coord { return Coord{X: 500, Y: 0} }

// DefaultSearch returns the beacon search span used when a puzzle sets none.
func DefaultSearch() Range { return Range{Min: 0, Max: 4000000} }

// Config is a decoded run file.
type Config struct {
	Puzzles []Puzzle `yaml:"puzzles" hcl:"puzzle,block"`
}

// Puzzle describes one puzzle to solve.
type Puzzle struct {
	Name  string `yaml:"name" hcl:"name,label"`
	Kind  string `yaml:"kind" hcl:"kind"`
	Input string `yaml:"input" hcl:"input"`

	// Knots lists rope lengths; one answer per length.
	Knots []int `yaml:"knots,omitempty" hcl:"knots,optional"`
	// Source is where sand enters the cave.
	Source *Coord `yaml:"source,omitempty" hcl:"source,block"`
	// Row is the beacon row to count exclusions on.
	Row *int `yaml:"row,omitempty" hcl:"row,optional"`
	// Search bounds both axes of the beacon gap search.
	Search *Range `yaml:"search,omitempty" hcl:"search,block"`
}

// Coord is a config-level point.
type Coord struct {
	X int `yaml:"x" hcl:"x"`
	Y int `yaml:"y" hcl:"y"`
}

// Point converts c to a geom.Point.
func (c Coord) Point() geom.Point { return geom.Point{X: c.X, Y: c.Y} }

// Range is an inclusive [Min, Max] span.
type Range struct {
	Min int `yaml:"min" hcl:"min"`
	Max int `yaml:"max" hcl:"max"`
}

// Extent returns the square Range x Range.
func (r Range) Extent() geom.Extent {
	return geom.Extent{Min: geom.Point{X: r.Min, Y: r.Min}, Max: geom.Point{X: r.Max, Y: r.Max}}
}

// Load reads the run file at path. vars are visible to HCL expressions as
// var.<name>; values that parse as integers become numbers.
func Load(path string, vars map[string]string) (*Config, error) {
	var (
		cfg *Config
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, err = loadYAML(path)
	case ".hcl":
		cfg, err = loadHCL(path, vars)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, path)
	}
	if err != nil {
		return nil, err
	}

	cfg.resolve(filepath.Dir(path))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve fills defaults and makes input paths relative to dir absolute.
func (c *Config) resolve(dir string) {
	for i := range c.Puzzles {
		p := &c.Puzzles[i]
		p.Kind = strings.ToLower(strings.TrimSpace(p.Kind))
		if p.Input != "" && !filepath.IsAbs(p.Input) {
			p.Input = filepath.Join(dir, p.Input)
		}
		switch p.Kind {
		case KindRope:
			if len(p.Knots) == 0 {
				p.Knots = DefaultKnots()
			}
		case KindSand:
			if p.Source == nil {
				src := DefaultSource()
				p.Source = &src
			}
		case KindBeacon:
			if p.Row == nil {
				row := DefaultRow
				p.Row = &row
			}
			if p.Search == nil {
				s := DefaultSearch()
				p.Search = &s
			}
		}
	}
}

// Validate checks every puzzle and returns all problems joined.
func (c *Config) Validate() error {
	if len(c.Puzzles) == 0 {
		return fmt.Errorf("%w: no puzzles", ErrInvalid)
	}
	var errs []error
	seen := make(map[string]bool, len(c.Puzzles))
	for i, p := range c.Puzzles {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
			errs = append(errs, fmt.Errorf("%w: puzzle %s has no name", ErrInvalid, name))
		}
		if seen[p.Name] && p.Name != "" {
			errs = append(errs, fmt.Errorf("%w: duplicate puzzle %q", ErrInvalid, p.Name))
		}
		seen[p.Name] = true

		if !knownKind(p.Kind) {
			errs = append(errs, fmt.Errorf("%w: puzzle %s: unknown kind %q", ErrInvalid, name, p.Kind))
		}
		if p.Input == "" {
			errs = append(errs, fmt.Errorf("%w: puzzle %s: empty input", ErrInvalid, name))
		}
		for _, k := range p.Knots {
			if k < 1 {
				errs = append(errs, fmt.Errorf("%w: puzzle %s: knots must be >= 1, got %d", ErrInvalid, name, k))
			}
		}
		if p.Search != nil && p.Search.Min > p.Search.Max {
			errs = append(errs, fmt.Errorf("%w: puzzle %s: search min %d > max %d", ErrInvalid, name, p.Search.Min, p.Search.Max))
		}
	}
	return errors.Join(errs...)
}

// Find returns the puzzle called name.
func (c *Config) Find(name string) (Puzzle, bool) {
	for _, p := range c.Puzzles {
		if p.Name == name {
			return p, true
		}
	}
	return Puzzle{}, false
}

func knownKind(k string) bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return b, nil
}

package experiment

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/randtree"
)

// ErrInvalidConfig wraps every validation failure reported by Config.Validate.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// Defaults of the classic experiment: sizes 250..2000 step 250, 100 trials each.
const (
	DefaultMethod   = randtree.MethodRandomWalk
	DefaultTrials   = 100
	DefaultSeed     = 1
	defaultSizeFrom = 250
	defaultSizeTo   = 2000
	defaultSizeStep = 250
)

// Config describes one experiment run.
type Config struct {
	// Method is a randtree method name (randtree.Methods()).
	Method string `yaml:"method"`
	// Sizes lists the vertex counts to measure, in output order.
	Sizes []int `yaml:"sizes"`
	// Trials is the number of trees drawn per size.
	Trials int `yaml:"trials"`
	// Seed fixes every per-trial random source.
	Seed int64 `yaml:"seed"`
	// Workers bounds trial parallelism; 0 means GOMAXPROCS.
	Workers int `yaml:"workers"`
	// Output is the dump file; empty means DefaultOutput(Method).
	Output string `yaml:"output"`
}

// DefaultSizes returns 250, 500, ..., 2000.
func DefaultSizes() []int {
	sizes := make([]int, 0, defaultSizeTo/defaultSizeStep)
	for n := defaultSizeFrom; n <= defaultSizeTo; n += defaultSizeStep {
		sizes = append(sizes, n)
	}

	return sizes
}

// DefaultConfig returns the classic random-walk experiment.
func DefaultConfig() Config {
	return Config{
		Method:  DefaultMethod,
		Sizes:   DefaultSizes(),
		Trials:  DefaultTrials,
		Seed:    DefaultSeed,
		Workers: 0,
	}
}

// DefaultOutput returns the dump file name for method: the method name with
// dashes dropped plus ".txt" ("randomwalk.txt", "kruskal.txt").
func DefaultOutput(method string) string {
	return strings.ReplaceAll(method, "-", "") + ".txt"
}

// OutputPath returns c.Output, or DefaultOutput(c.Method) when it is empty.
func (c Config) OutputPath() string {
	if c.Output != "" {
		return c.Output
	}

	return DefaultOutput(c.Method)
}

// Validate checks every field and returns an ErrInvalidConfig-wrapped error
// naming the first offending one.
func (c Config) Validate() error {
	if _, err := randtree.Lookup(c.Method); err != nil {
		return fmt.Errorf("%w: method: %w", ErrInvalidConfig, err)
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: sizes: empty", ErrInvalidConfig)
	}
	seen := make(map[int]struct{}, len(c.Sizes))
	for _, n := range c.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: sizes: %d < 1", ErrInvalidConfig, n)
		}
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: sizes: %d listed twice", ErrInvalidConfig, n)
		}
		seen[n] = struct{}{}
	}
	if c.Trials < 1 {
		return fmt.Errorf("%w: trials: %d < 1", ErrInvalidConfig, c.Trials)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers: %d < 0", ErrInvalidConfig, c.Workers)
	}

	return nil
}

// ReadConfig decodes YAML from in on top of DefaultConfig, so omitted keys
// keep their defaults. Unknown keys are rejected. The result is validated.
func ReadConfig(in io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads a YAML config file; see ReadConfig.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("experiment: open config: %w", err)
	}
	defer f.Close()

	cfg, err := ReadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

package randtree

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/spantree/core"
)

// Method names accepted by Lookup.
const (
	MethodRandomWalk = "random-walk"
	MethodKruskal    = "kruskal"
)

var (
	// ErrInvalidSize is returned for n < 1.
	ErrInvalidSize = errors.New("randtree: tree size must be at least 1")

	// ErrNeedRNG is returned when rng is nil.
	ErrNeedRNG = errors.New("randtree: rng is required")

	// ErrUnknownMethod is returned by Lookup for an unregistered name.
	ErrUnknownMethod = errors.New("randtree: unknown method")
)

// Generator draws one random spanning tree on n vertices using rng.
type Generator func(n int, rng *rand.Rand) (*core.Graph, error)

var generators = map[string]Generator{
	MethodRandomWalk: RandomWalk,
	MethodKruskal:    Kruskal,
}

// Lookup returns the generator registered under method.
func Lookup(method string) (Generator, error) {
	gen, ok := generators[method]
	if !ok {
		return nil, fmt.Errorf("%w %q (want one of %v)", ErrUnknownMethod, method, Methods())
	}

	return gen, nil
}

// Methods returns the registered method names in sorted order.
func Methods() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func checkArgs(n int, rng *rand.Rand) error {
	if n < 1 {
		return fmt.Errorf("%w: n=%d", ErrInvalidSize, n)
	}
	if rng == nil {
		return ErrNeedRNG
	}

	return nil
}

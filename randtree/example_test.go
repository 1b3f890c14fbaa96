package randtree_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/spantree/randtree"
	"github.com/katalvlaran/spantree/tree"
)

// ExampleLookup draws one tree per method and checks it.
func ExampleLookup() {
	for _, method := range randtree.Methods() {
		gen, err := randtree.Lookup(method)
		if err != nil {
			fmt.Println(err)
			return
		}
		g, err := gen(100, rand.New(rand.NewSource(1)))
		if err != nil {
			fmt.Println(err)
			return
		}
		ok, _ := tree.IsTree(g)
		fmt.Println(method, g.EdgeCount(), ok)
	}
	// Output:
	// kruskal 99 true
	// random-walk 99 true
}

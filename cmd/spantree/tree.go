package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spantree/randtree"
	"github.com/katalvlaran/spantree/tree"
)

func newTreeCmd(a *app) *cobra.Command {
	var (
		method string
		n      int
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Generate one random spanning tree, print its edges and diameter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := randtree.Lookup(method)
			if err != nil {
				return err
			}
			g, err := gen(n, rand.New(rand.NewSource(seed)))
			if err != nil {
				return err
			}
			if err := tree.Validate(g); err != nil {
				return err
			}
			d, err := tree.Diameter(g)
			if err != nil {
				return err
			}
			path, err := tree.DiameterPath(g)
			if err != nil {
				return err
			}
			a.logger.Debug("tree generated", zap.String("method", method), zap.Int("n", n), zap.Int64("seed", seed))

			out := cmd.OutOrStdout()
			for _, e := range g.Edges() {
				fmt.Fprintf(out, "%d %d\n", e.From, e.To)
			}
			fmt.Fprintf(out, "diameter %d\n", d)
			fmt.Fprintf(out, "path %v\n", path)

			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", randtree.MethodRandomWalk, "tree generator: random-walk or kruskal")
	cmd.Flags().IntVarP(&n, "vertices", "n", 10, "number of vertices")
	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")

	return cmd
}

// Command spantree draws random spanning trees and measures how their
// diameter grows with the number of vertices.
//
//	spantree run --method kruskal --sizes 250,500,1000 --trials 50
//	spantree tree --method random-walk -n 12 --seed 3
package main

import (
	"context"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
		cancel()
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := newRootCmd(newLogger).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}

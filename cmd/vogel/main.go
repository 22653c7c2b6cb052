// Command vogel computes a basic feasible solution of a transportation
// problem with Vogel's Approximation Method.
//
//	vogel solve                                   # built-in sample problem
//	vogel solve plants.yaml -o json
//	vogel solve --supply "20, 30, 50" --demand "10, 40, 30, 20" \
//	    --costs $'8, 6, 10, 9\n9, 12, 13, 7\n14, 9, 16, 5'
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/chaitanyabirla/transportcost/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

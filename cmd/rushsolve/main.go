// Command rushsolve is the command-line front end for the sliding-
// vehicle solver kernel: solving puzzle files directly, serving them
// over HTTP, and managing the puzzle catalog.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "rushsolve",
		Short: "Solve, serve, and catalog sliding-vehicle board puzzles",
	}
	root.AddCommand(newSolveCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newCatalogCmd())
	return root
}

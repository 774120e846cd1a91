// Command evocover runs the evolutionary vertex-cover engine from the
// command line: list available map directories, then run the search on a
// map or on a generated random instance.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "evocover",
	Short: "Evolutionary search for small vertex covers",
	Long: `evocover searches for a small vertex cover of an undirected graph
with a population-based evolutionary algorithm: simulated-annealing
seeding, roulette-wheel selection, segmented crossover, mutation with
feasibility repair, elitism, deterministic crowding, and catastrophe
diversity injection on stagnation.`,
	SilenceUsage: true,
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

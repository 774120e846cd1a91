package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/evocover/evolution"
	"github.com/katalvlaran/evocover/statespace"
)

// runConfigFile mirrors evolution.Config for YAML run files; explicit
// flags override file values. Pointer fields distinguish an absent key
// from an explicit zero, so `mutation: 0` in a file is honored.
type runConfigFile struct {
	Generations *int     `yaml:"generations"`
	Population  *int     `yaml:"population"`
	Mutation    *float64 `yaml:"mutation"`
	Crossover   *float64 `yaml:"crossover"`
	Seed        *int64   `yaml:"seed"`
}

var runFlags struct {
	mapDir      string
	randomNodes int
	density     float64
	configPath  string
	reportEvery int

	generations int
	population  int
	mutation    float64
	crossover   float64
	seed        int64
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the evolutionary search on a map or a random instance",
	RunE:  runEvolution,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&runFlags.mapDir, "map", "", "map directory holding nodes and edges files")
	f.IntVar(&runFlags.randomNodes, "random", 0, "generate a random instance with this many nodes instead of loading a map")
	f.Float64Var(&runFlags.density, "density", 0.05, "extra-edge probability for --random instances")
	f.StringVar(&runFlags.configPath, "config", "", "YAML run config (flags override file values)")
	f.IntVar(&runFlags.reportEvery, "report-every", 100, "log progress every N generations")

	f.IntVar(&runFlags.generations, "generations", evolution.DefaultGenerations, "generation budget")
	f.IntVar(&runFlags.population, "population", evolution.DefaultPopulationSize, "population size")
	f.Float64Var(&runFlags.mutation, "mutation", evolution.DefaultMutationProbability, "per-bit mutation probability")
	f.Float64Var(&runFlags.crossover, "crossover", evolution.DefaultCrossoverProbability, "crossover probability per parent pair")
	f.Int64Var(&runFlags.seed, "seed", 0, "RNG seed (0 = fixed default)")

	rootCmd.AddCommand(runCmd)
}

func runEvolution(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sp, err := resolveGraph()
	if err != nil {
		return err
	}
	slog.Info("instance ready", "nodes", sp.NodeCount(), "edges", sp.EdgeCount())

	obs := &progressLogger{every: runFlags.reportEvery}
	handle, err := evolution.Start(cfg, sp, obs)
	if err != nil {
		return err
	}

	// SIGINT asks the engine to stop at the next generation boundary.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	go func() {
		select {
		case <-interrupt:
			slog.Info("interrupt received, finishing current generation")
			handle.Cancel()
		case <-handle.Done():
		}
	}()

	res, err := handle.Wait()
	if err != nil {
		return err
	}
	printSummary(cmd, res)
	return nil
}

// resolveConfig layers defaults, the optional YAML file, and explicit flags.
func resolveConfig(cmd *cobra.Command) (evolution.Config, error) {
	cfg := evolution.Config{
		Generations:          runFlags.generations,
		PopulationSize:       runFlags.population,
		MutationProbability:  runFlags.mutation,
		CrossoverProbability: runFlags.crossover,
		Seed:                 runFlags.seed,
	}
	if runFlags.configPath == "" {
		return cfg, cfg.Validate()
	}

	raw, err := os.ReadFile(runFlags.configPath)
	if err != nil {
		return cfg, err
	}
	var file runConfigFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", runFlags.configPath, err)
	}

	if !cmd.Flags().Changed("generations") && file.Generations != nil {
		cfg.Generations = *file.Generations
	}
	if !cmd.Flags().Changed("population") && file.Population != nil {
		cfg.PopulationSize = *file.Population
	}
	if !cmd.Flags().Changed("mutation") && file.Mutation != nil {
		cfg.MutationProbability = *file.Mutation
	}
	if !cmd.Flags().Changed("crossover") && file.Crossover != nil {
		cfg.CrossoverProbability = *file.Crossover
	}
	if !cmd.Flags().Changed("seed") && file.Seed != nil {
		cfg.Seed = *file.Seed
	}

	return cfg, cfg.Validate()
}

func resolveGraph() (*statespace.Graph, error) {
	switch {
	case runFlags.mapDir != "" && runFlags.randomNodes > 0:
		return nil, fmt.Errorf("choose one of --map and --random")
	case runFlags.mapDir != "":
		return statespace.LoadDir(filepath.Clean(runFlags.mapDir))
	case runFlags.randomNodes > 0:
		return statespace.RandomSparse(runFlags.randomNodes, runFlags.density,
			statespace.WithSeed(runFlags.seed+1))
	default:
		return nil, fmt.Errorf("either --map or --random is required")
	}
}

func printSummary(cmd *cobra.Command, res *evolution.Result) {
	out := cmd.OutOrStdout()

	state := "completed"
	if res.Interrupted {
		state = "interrupted"
	}
	fmt.Fprintf(out, "evolution %s after %d generations in %s\n", state, res.Generations, res.Elapsed)
	fmt.Fprintf(out, "avgFit  %.3f -> %.3f (%.1f%%)\n", res.StartAvg, res.FinalAvg, res.AvgGainPercent)
	fmt.Fprintf(out, "bestFit %.3f -> %.3f (%.1f%%)\n", res.StartBest, res.FinalBest, res.BestGainPercent)
	fmt.Fprintf(out, "best ever: %s, uncovered edges: %d\n", res.Best, res.UncoveredEdges)
}

// progressLogger logs generation-boundary snapshots at a fixed interval.
// Callbacks arrive on the engine goroutine; slog does not block.
type progressLogger struct {
	every int

	gen       int
	avg, best float64
}

func (p *progressLogger) OnSeedingStarted() {
	slog.Info("seeding initial population (simulated annealing)")
}

func (p *progressLogger) OnSeedingFinished() {
	slog.Info("seeding finished")
}

func (p *progressLogger) OnGenerationAdvance(generation int) {
	p.gen = generation
}

func (p *progressLogger) OnFitnessUpdate(avg, best float64, generation int) {
	p.avg, p.best = avg, best
	if p.every > 0 && generation%p.every == 0 {
		slog.Info("progress", "gen", generation, "bestFit", best, "avgFit", avg)
	}
}

func (p *progressLogger) OnCoverUpdate(totalNodes, selectedNodes int) {
	if p.every > 0 && p.gen%p.every == 0 {
		slog.Info("cover", "gen", p.gen, "selected", selectedNodes, "nodes", totalNodes)
	}
}

func (p *progressLogger) OnEdgeCoverageUpdate(totalEdges, uncoveredEdges int) {
	if p.every > 0 && p.gen%p.every == 0 && uncoveredEdges > 0 {
		slog.Warn("uncovered edges", "gen", p.gen, "uncovered", uncoveredEdges, "edges", totalEdges)
	}
}

func (p *progressLogger) OnRunFinished() {
	slog.Info("run finished", "gen", p.gen, "bestFit", p.best, "avgFit", p.avg)
}

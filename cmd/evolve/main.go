// Package main provides the galib-evolve CLI for running the genetic
// algorithm on the built-in reference problems.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Larriche/galib/evolution"
	"github.com/Larriche/galib/evolution/fitness"
	"github.com/Larriche/galib/evolution/metrics"
	"github.com/Larriche/galib/evolution/stopping"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// CLI flags
var (
	configPath     string
	problem        string
	length         int
	target         string
	generations    int
	seed           int64
	populationSize int
	mutationRate   float64
	crossoverRate  float64
	elitismCount   int
	tournamentSize int
	crossoverType  string
	mutationType   string
	adaptive       bool
	runs           int
	workers        int
	stopExpr       string
	metricsAddr    string
	outputPath     string
	verbose        bool
	showVersion    bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "TOML file with run settings (flags override it)")
	flag.StringVar(&problem, "problem", "onemax", "Problem preset ("+strings.Join(fitness.Names(), ", ")+")")
	flag.IntVar(&length, "length", 32, "Chromosome length")
	flag.StringVar(&target, "target", "", "Target genes for the target problem, e.g. 1011 or 3,1,2")
	flag.IntVar(&generations, "generations", evolution.DefaultMaxGenerations, "Generation cap (<= 0 uses the default)")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.IntVar(&populationSize, "population-size", 100, "Population size")
	flag.Float64Var(&mutationRate, "mutation-rate", 0.01, "Mutation rate")
	flag.Float64Var(&crossoverRate, "crossover-rate", 0.9, "Crossover rate")
	flag.IntVar(&elitismCount, "elitism", 2, "Elitism count")
	flag.IntVar(&tournamentSize, "tournament-size", 10, "Tournament size")
	flag.StringVar(&crossoverType, "crossover", "uniform", "Crossover type (single_point, multi_point, uniform)")
	flag.StringVar(&mutationType, "mutation", "bit_flip", "Mutation type (bit_flip, random_resetting, swap, scramble, inversion)")
	flag.BoolVar(&adaptive, "adaptive", false, "Enable adaptive mutation")
	flag.IntVar(&runs, "runs", 1, "Number of independent runs")
	flag.IntVar(&workers, "workers", 0, "Concurrent runs (0 = auto-detect CPU count)")
	flag.StringVar(&stopExpr, "stop", "", "Extra stop rule, e.g. \"best >= 0.95 || generation > 200\"")
	flag.StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	flag.StringVar(&outputPath, "output", "", "Write a JSON report of all runs to this file")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("galib-evolve %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	generations = evolution.GenerationCap(generations)

	config, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	targetGenes, err := fitness.ParseGenes(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing target: %v\n", err)
		os.Exit(1)
	}
	if len(targetGenes) > 0 && !flagSet("length") {
		length = len(targetGenes)
	}

	var rule *stopping.Rule
	if stopExpr != "" {
		rule, err = stopping.Compile(stopExpr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	jobs := make([]evolution.BatchJob, runs)
	for i := range jobs {
		algorithm, err := fitness.New(problem, length, targetGenes)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if v, ok := algorithm.(interface{ SetVerbose(bool) }); ok {
			v.SetVerbose(verbose)
		}
		if rule != nil {
			algorithm = stopping.Wrap(algorithm, rule)
		}

		runConfig := config
		if runConfig.RandomSeed != 0 {
			runConfig.RandomSeed += int64(i)
		}
		jobs[i] = evolution.BatchJob{
			Config:         runConfig,
			Algorithm:      algorithm,
			MaxGenerations: generations,
		}
	}

	printBanner(config)

	runner := evolution.NewBatchRunner(workers)
	runner.Verbose = verbose

	var collector *metrics.Collector
	if metricsAddr != "" {
		collector, err = metrics.NewCollector(prometheus.DefaultRegisterer)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error registering metrics: %v\n", err)
			os.Exit(1)
		}
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				log.Printf("metrics server stopped: %v", err)
			}
		}()
		fmt.Printf("Serving metrics on %s/metrics\n\n", metricsAddr)
	}

	// Track progress
	startTime := time.Now()
	runner.OnGenerationComplete = func(stats evolution.GenerationStats) {
		if collector != nil {
			collector.Observe(stats)
		}
		if runs == 1 {
			fmt.Printf("\rGen %4d/%d | Best: %.4f | Avg: %.4f | %s",
				stats.Generation, generations,
				stats.BestFitness, stats.AvgFitness,
				formatDuration(time.Since(startTime)))
		}
	}

	fmt.Println("Starting evolution...")
	results := runner.Run(jobs)
	totalTime := time.Since(startTime)

	failed := 0
	for _, r := range results {
		if collector != nil {
			collector.RunFinished(r.Err)
		}
		if r.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "\nRun %d failed: %v\n", r.Index+1, r.Err)
		}
	}

	printSummary(results, totalTime)

	if outputPath != "" {
		if err := evolution.WriteReport(outputPath, evolution.NewReport(config, jobs, results)); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputPath)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

// buildConfig layers DefaultConfig, the TOML file and explicitly set flags.
func buildConfig() (evolution.Config, error) {
	config := evolution.DefaultConfig()
	if configPath != "" {
		loaded, err := evolution.LoadConfig(configPath)
		if err != nil {
			return evolution.Config{}, err
		}
		config = loaded
	}

	var err error
	flag.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "seed":
			config.RandomSeed = seed
		case "population-size":
			config.PopulationSize = populationSize
		case "mutation-rate":
			config.MutationRate = mutationRate
		case "crossover-rate":
			config.CrossoverRate = crossoverRate
		case "elitism":
			config.ElitismCount = elitismCount
		case "tournament-size":
			config.TournamentSize = tournamentSize
		case "crossover":
			config.CrossoverType, err = evolution.ParseCrossoverType(crossoverType)
		case "mutation":
			config.MutationType, err = evolution.ParseMutationType(mutationType)
		case "adaptive":
			config.AdaptiveMutation = adaptive
		}
	})
	if err != nil {
		return evolution.Config{}, err
	}

	if config.TournamentSize > config.PopulationSize && !flagSet("tournament-size") {
		config.TournamentSize = config.PopulationSize
	}
	if config.ElitismCount >= config.PopulationSize && !flagSet("elitism") {
		config.ElitismCount = config.PopulationSize - 1
	}
	if runs < 1 {
		return evolution.Config{}, fmt.Errorf("runs must be >= 1 (got %d)", runs)
	}
	return config, config.Validate()
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func printBanner(config evolution.Config) {
	fmt.Println()
	fmt.Println("╔════════════════════════════════════════════════════════════╗")
	fmt.Println("║               galib Genetic Algorithm Engine               ║")
	fmt.Println("╚════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Problem:        %s (length %d)\n", problem, length)
	fmt.Printf("  Population:     %d\n", config.PopulationSize)
	fmt.Printf("  Generations:    %d\n", generations)
	fmt.Printf("  Crossover:      %s (rate %.2f)\n", config.CrossoverType, config.CrossoverRate)
	fmt.Printf("  Mutation:       %s (rate %.4f, adaptive %v)\n", config.MutationType, config.MutationRate, config.AdaptiveMutation)
	fmt.Printf("  Elitism:        %d\n", config.ElitismCount)
	fmt.Printf("  Tournament:     %d\n", config.TournamentSize)
	if runs > 1 {
		fmt.Printf("  Runs:           %d (workers %d, 0=auto)\n", runs, workers)
	}
	if stopExpr != "" {
		fmt.Printf("  Stop rule:      %s\n", stopExpr)
	}
	fmt.Println()
}

func printSummary(results []evolution.BatchResult, totalTime time.Duration) {
	fmt.Println()
	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("                      EVOLUTION SUMMARY")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("  Total Time:      %s\n", formatDuration(totalTime))

	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if len(results) > 1 {
			fmt.Printf("  Run %d (%s):\n", r.Index+1, r.Summary.RunID)
		}
		fmt.Printf("  Generations:     %d\n", r.Summary.Generations)
		fmt.Printf("  Best Fitness:    %.4f\n", r.Summary.FittestFitness)
		fmt.Printf("  Fittest:         %s\n", r.Fittest)
	}

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}

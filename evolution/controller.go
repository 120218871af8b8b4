package evolution

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gofrs/uuid"
)

// DefaultMaxGenerations caps a run when the caller does not.
const DefaultMaxGenerations = 1000

// GenerationStats holds statistics for a single generation.
type GenerationStats struct {
	RunID       string
	Generation  int
	BestFitness float64
	AvgFitness  float64
	Timestamp   time.Time
}

// GenerationCap returns the generation cap a run uses for maxGenerations:
// the value itself, or DefaultMaxGenerations when it is <= 0.
func GenerationCap(maxGenerations int) int {
	if maxGenerations <= 0 {
		return DefaultMaxGenerations
	}
	return maxGenerations
}

// Controller drives the generational loop for one run.
type Controller struct {
	Config         Config
	Algorithm      Algorithm
	MaxGenerations int

	Logger  *log.Logger
	Verbose bool

	// Callbacks for progress reporting
	OnGenerationComplete func(stats GenerationStats)

	runID        uuid.UUID
	engine       *Engine
	population   *Population
	fittest      *Individual
	generations  int
	statsHistory []GenerationStats
}

// NewController creates a controller. maxGenerations <= 0 selects
// DefaultMaxGenerations.
func NewController(config Config, algorithm Algorithm, maxGenerations int) *Controller {
	return &Controller{
		Config:         config,
		Algorithm:      algorithm,
		MaxGenerations: GenerationCap(maxGenerations),
		Logger:         log.Default(),
	}
}

// Run evolves a population until the algorithm's termination predicate
// holds or the generation cap is reached, and returns the string form of
// the fittest individual.
//
// The generation counter starts at 1, so at most MaxGenerations-1 steps run.
// The reported individual is the fittest recorded at the top of the last
// executed loop body; it lags the final evaluated population by one step.
// Population returns that final population.
func (c *Controller) Run() (string, error) {
	if c.Algorithm == nil {
		return "", errors.New("controller has no algorithm")
	}
	if err := c.Config.Validate(); err != nil {
		return "", err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("failed to create run id: %w", err)
	}
	c.runID = id
	c.statsHistory = nil

	seed := c.Config.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	c.engine = NewEngine(c.Config, c.Algorithm, rng)
	c.engine.Logger = c.Logger
	c.engine.Verbose = c.Verbose
	if aware, ok := c.Algorithm.(ScheduleAware); ok {
		aware.UseSchedule(c.engine)
	}

	c.logf("Initializing population of size %d (seed %d)", c.Config.PopulationSize, seed)
	population := c.engine.InitPopulation()
	if err := c.engine.EvaluatePopulation(population); err != nil {
		return "", err
	}

	generation := 1
	fittest, err := population.Fittest(0)
	if err != nil {
		return "", err
	}

	for !c.Algorithm.ShouldTerminate(population) && generation < c.MaxGenerations {
		fittest, err = population.Fittest(0)
		if err != nil {
			return "", err
		}
		c.record(population, fittest, generation)

		c.logf("Generation %d:", generation)
		c.Algorithm.Log("Fittest: "+fittest.String(), generation)

		population, err = c.engine.CrossoverPopulation(population)
		if err != nil {
			return "", fmt.Errorf("generation %d: %w", generation, err)
		}
		population, err = c.engine.MutatePopulation(population)
		if err != nil {
			return "", fmt.Errorf("generation %d: %w", generation, err)
		}
		if err := c.engine.EvaluatePopulation(population); err != nil {
			return "", fmt.Errorf("generation %d: %w", generation, err)
		}
		generation++
	}

	c.population = population
	c.fittest = fittest
	c.generations = generation

	c.logf("Evolution complete after %d generations. Fittest: %s", generation, fittest)
	return fittest.String(), nil
}

func (c *Controller) record(pop *Population, fittest *Individual, generation int) {
	avg, err := pop.AvgFitness()
	if err != nil {
		avg = 0
	}
	stats := GenerationStats{
		RunID:       c.runID.String(),
		Generation:  generation,
		BestFitness: fittest.fitness,
		AvgFitness:  avg,
		Timestamp:   time.Now(),
	}
	c.statsHistory = append(c.statsHistory, stats)

	if c.Verbose {
		c.logf("Best fitness: %.4f", stats.BestFitness)
		c.logf("Avg fitness: %.4f", stats.AvgFitness)
	}
	if c.OnGenerationComplete != nil {
		c.OnGenerationComplete(stats)
	}
}

func (c *Controller) logf(format string, args ...any) {
	if !c.Verbose || c.Logger == nil {
		return
	}
	c.Logger.Printf("[%s] "+format, append([]any{c.runID}, args...)...)
}

// RunID returns the id of the last run.
func (c *Controller) RunID() string {
	return c.runID.String()
}

// Fittest returns the individual reported by the last run.
func (c *Controller) Fittest() *Individual {
	return c.fittest
}

// Population returns the final evaluated population of the last run.
func (c *Controller) Population() *Population {
	return c.population
}

// Generations returns the generation counter at loop exit.
func (c *Controller) Generations() int {
	return c.generations
}

// Engine returns the engine of the last run.
func (c *Controller) Engine() *Engine {
	return c.engine
}

// GetStats returns the stats history.
func (c *Controller) GetStats() []GenerationStats {
	return c.statsHistory
}

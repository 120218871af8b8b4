package evolution

import (
	"fmt"
	"log"
	"math/rand"
)

// Engine applies evaluation, selection, crossover and mutation to
// populations. It keeps a copy of the run configuration and the run's random
// source; all other state lives in the populations it is handed.
type Engine struct {
	config    Config
	algorithm Algorithm
	rng       *rand.Rand

	// temperature is only touched through the TemperatureSchedule hook.
	temperature float64

	// Logger receives operator traces when Verbose is set.
	Logger  *log.Logger
	Verbose bool
}

// NewEngine creates an engine for one run. The config is copied.
func NewEngine(config Config, algorithm Algorithm, rng *rand.Rand) *Engine {
	return &Engine{
		config:      config,
		algorithm:   algorithm,
		rng:         rng,
		temperature: config.Temperature,
		Logger:      log.Default(),
	}
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// InitPopulation builds PopulationSize individuals through the algorithm's
// constructor.
func (e *Engine) InitPopulation() *Population {
	individuals := make([]*Individual, e.config.PopulationSize)
	for i := range individuals {
		individuals[i] = NewIndividualFrom(e.algorithm, e.rng, false)
	}
	return NewPopulation(individuals)
}

// CalculateFitness scores one individual and stores the result on it.
func (e *Engine) CalculateFitness(ind *Individual) float64 {
	fitness := e.algorithm.CalculateFitness(ind)
	ind.SetFitness(fitness)
	return fitness
}

// EvaluatePopulation scores every member and stores the aggregate fitness
// on the population.
func (e *Engine) EvaluatePopulation(pop *Population) error {
	var total float64
	for i, ind := range pop.individuals {
		if ind == nil {
			return fmt.Errorf("evaluate slot %d: %w", i, ErrUninitialized)
		}
		total += e.CalculateFitness(ind)
	}
	pop.SetTotalFitness(total)
	return nil
}

// Temperature returns the current annealing temperature.
func (e *Engine) Temperature() float64 {
	return e.temperature
}

// CoolTemperature applies one step of geometric cooling.
func (e *Engine) CoolTemperature() {
	e.temperature *= 1 - e.config.CoolingRate
}

func (e *Engine) tracef(format string, args ...any) {
	if e.Verbose && e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

// Package fitness provides reference problems for the evolution engine.
// Each problem implements evolution.Algorithm over integer chromosomes.
package fitness

import (
	"log"
	"math/rand"

	"github.com/Larriche/galib/evolution"
)

// logSink implements Algorithm.Log on top of a standard logger.
type logSink struct {
	Logger  *log.Logger
	Verbose bool
}

func (s *logSink) Log(message string, generation int) {
	if !s.Verbose || s.Logger == nil {
		return
	}
	s.Logger.Printf("gen %d: %s", generation, message)
}

// SetVerbose toggles per-generation log lines.
func (s *logSink) SetVerbose(verbose bool) {
	s.Verbose = verbose
}

// OneMax scores a bit string by the fraction of genes equal to 1 and stops
// once a perfect string appears.
type OneMax struct {
	logSink
	Length int
}

// NewOneMax creates a OneMax problem over chromosomes of the given length.
func NewOneMax(length int) *OneMax {
	return &OneMax{
		logSink: logSink{Logger: log.Default()},
		Length:  length,
	}
}

// CreateIndividual returns a uniformly random bit string.
func (o *OneMax) CreateIndividual(rng *rand.Rand) []int {
	return randomGenes(o.Length, 2, rng)
}

// CreateRandomIndividual returns a uniformly random bit string.
func (o *OneMax) CreateRandomIndividual(rng *rand.Rand) []int {
	return randomGenes(o.Length, 2, rng)
}

// CalculateFitness returns the fraction of genes equal to 1.
func (o *OneMax) CalculateFitness(ind *evolution.Individual) float64 {
	if ind.Len() == 0 {
		return 0
	}
	ones := 0
	for _, g := range ind.Chromosome() {
		if g == 1 {
			ones++
		}
	}
	return float64(ones) / float64(ind.Len())
}

// ShouldTerminate reports whether the best member is all ones.
func (o *OneMax) ShouldTerminate(pop *evolution.Population) bool {
	return bestFitness(pop) >= 1
}

func randomGenes(length, alphabet int, rng *rand.Rand) []int {
	genes := make([]int, length)
	for i := range genes {
		genes[i] = rng.Intn(alphabet)
	}
	return genes
}

// bestFitness returns the top fitness of pop, or 0 when it cannot be ranked.
func bestFitness(pop *evolution.Population) float64 {
	best, err := pop.Fittest(0)
	if err != nil {
		return 0
	}
	f, err := best.Fitness()
	if err != nil {
		return 0
	}
	return f
}

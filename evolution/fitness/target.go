package fitness

import (
	"log"
	"math/rand"

	"github.com/Larriche/galib/evolution"
)

// Target scores a chromosome by the fraction of genes matching a fixed
// target sequence over the alphabet [0, Alphabet).
type Target struct {
	logSink
	Genes    []int
	Alphabet int
}

// NewTarget creates a Target problem. alphabet must exceed every target gene.
func NewTarget(genes []int, alphabet int) *Target {
	return &Target{
		logSink:  logSink{Logger: log.Default()},
		Genes:    genes,
		Alphabet: alphabet,
	}
}

// CreateIndividual returns random genes drawn from the alphabet.
func (t *Target) CreateIndividual(rng *rand.Rand) []int {
	return randomGenes(len(t.Genes), t.Alphabet, rng)
}

// CreateRandomIndividual returns random genes drawn from the alphabet.
func (t *Target) CreateRandomIndividual(rng *rand.Rand) []int {
	return randomGenes(len(t.Genes), t.Alphabet, rng)
}

// CalculateFitness returns the fraction of genes equal to the target.
func (t *Target) CalculateFitness(ind *evolution.Individual) float64 {
	if len(t.Genes) == 0 {
		return 0
	}
	matches := 0
	for i, g := range ind.Chromosome() {
		if i < len(t.Genes) && g == t.Genes[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(t.Genes))
}

// ShouldTerminate reports whether the best member matches the target.
func (t *Target) ShouldTerminate(pop *evolution.Population) bool {
	return bestFitness(pop) >= 1
}

package evolution

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Individual is one candidate solution: a fixed-length chromosome and the
// fitness assigned to it by the last evaluation.
type Individual struct {
	chromosome []int
	fitness    float64
	evaluated  bool

	// revision increases on every fitness assignment so populations can
	// tell whether a cached ranking or aggregate is still valid.
	revision uint64
}

// NewIndividual wraps a chromosome. A nil chromosome yields an empty
// individual, used for scratch objects.
func NewIndividual(chromosome []int) *Individual {
	if chromosome == nil {
		chromosome = []int{}
	}
	return &Individual{chromosome: chromosome}
}

// NewIndividualFrom builds an individual through the algorithm's constructor,
// or its random constructor when random is set.
func NewIndividualFrom(algorithm Algorithm, rng *rand.Rand, random bool) *Individual {
	if algorithm == nil {
		return NewIndividual(nil)
	}
	if random {
		return NewIndividual(algorithm.CreateRandomIndividual(rng))
	}
	return NewIndividual(algorithm.CreateIndividual(rng))
}

// Len returns the chromosome length.
func (ind *Individual) Len() int {
	return len(ind.chromosome)
}

// Chromosome returns a copy of the gene sequence.
func (ind *Individual) Chromosome() []int {
	out := make([]int, len(ind.chromosome))
	copy(out, ind.chromosome)
	return out
}

// Gene returns the gene at index i.
func (ind *Individual) Gene(i int) (int, error) {
	if i < 0 || i >= len(ind.chromosome) {
		return 0, fmt.Errorf("gene %d of %d: %w", i, len(ind.chromosome), ErrIndexOutOfRange)
	}
	return ind.chromosome[i], nil
}

// SetGene overwrites the gene at index i.
func (ind *Individual) SetGene(i, value int) error {
	if i < 0 || i >= len(ind.chromosome) {
		return fmt.Errorf("gene %d of %d: %w", i, len(ind.chromosome), ErrIndexOutOfRange)
	}
	ind.chromosome[i] = value
	return nil
}

// Fitness returns the evaluated fitness, or ErrUninitialized if the
// individual was never evaluated.
func (ind *Individual) Fitness() (float64, error) {
	if !ind.evaluated {
		return 0, ErrUninitialized
	}
	return ind.fitness, nil
}

// SetFitness records the result of an evaluation.
func (ind *Individual) SetFitness(fitness float64) {
	ind.fitness = fitness
	ind.evaluated = true
	ind.revision++
}

// Evaluated reports whether a fitness has been assigned.
func (ind *Individual) Evaluated() bool {
	return ind.evaluated
}

// Clone creates a deep copy of the individual, fitness included.
func (ind *Individual) Clone() *Individual {
	clone := &Individual{
		chromosome: make([]int, len(ind.chromosome)),
		fitness:    ind.fitness,
		evaluated:  ind.evaluated,
		revision:   ind.revision,
	}
	copy(clone.chromosome, ind.chromosome)
	return clone
}

// ChromosomeString renders the genes as a comma separated list.
func (ind *Individual) ChromosomeString() string {
	var sb strings.Builder
	for i, g := range ind.chromosome {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(g))
	}
	return sb.String()
}

// String renders the chromosome followed by the fitness in parentheses.
// Diagnostic only.
func (ind *Individual) String() string {
	if !ind.evaluated {
		return ind.ChromosomeString() + "()"
	}
	return ind.ChromosomeString() + "(" + strconv.FormatFloat(ind.fitness, 'g', -1, 64) + ")"
}

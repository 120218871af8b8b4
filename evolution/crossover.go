// Package evolution implements a generic generational genetic algorithm over
// fixed-length integer chromosomes. Problem encoding and fitness are supplied
// by an Algorithm; the package supplies selection, crossover, mutation and
// the generational loop.
package evolution

import (
	"fmt"

	"github.com/Larriche/galib/evolution/operators"
)

// breedFunc builds one offspring chromosome from two same-length parents.
type breedFunc func(a, b []int) []int

func (e *Engine) breeder() (breedFunc, error) {
	switch e.config.CrossoverType {
	case CrossoverSinglePoint:
		return func(a, b []int) []int {
			child, point := operators.SinglePoint(a, b, e.rng)
			e.tracef("single-point crossover at %d", point)
			return child
		}, nil
	case CrossoverMultiPoint:
		return func(a, b []int) []int {
			child, lo, hi := operators.MultiPoint(a, b, e.rng)
			e.tracef("multi-point crossover over [%d, %d]", lo, hi)
			return child
		}, nil
	case CrossoverUniform:
		return func(a, b []int) []int {
			return operators.Uniform(a, b, e.rng)
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported crossover type %s", ErrInvalidConfig, e.config.CrossoverType)
	}
}

// CrossoverPopulation builds a new population of PopulationSize from pop.
//
// Slot i starts from parent A, the member of pop ranked i. Slots
// 0..ElitismCount copy parent A unchanged. Every other slot is bred with a
// tournament-selected parent B when a uniform draw falls below
// CrossoverRate, and copies parent A otherwise. Parent B is drawn from a
// clone of pop so the tournament shuffle does not disturb the ranking.
func (e *Engine) CrossoverPopulation(pop *Population) (*Population, error) {
	breed, err := e.breeder()
	if err != nil {
		return nil, err
	}

	next := newEmptyPopulation(e.config.PopulationSize)
	next.Generation = pop.Generation + 1

	for i := 0; i < e.config.PopulationSize; i++ {
		parentA, err := pop.Fittest(i)
		if err != nil {
			return nil, fmt.Errorf("crossover slot %d: %w", i, err)
		}

		if i <= e.config.ElitismCount || e.rng.Float64() >= e.config.CrossoverRate {
			next.individuals[i] = parentA.Clone()
			continue
		}

		parentB, err := e.SelectParent(pop.Clone())
		if err != nil {
			return nil, fmt.Errorf("crossover slot %d: %w", i, err)
		}
		if parentA.Len() != parentB.Len() {
			return nil, fmt.Errorf("crossover slot %d: parent lengths %d and %d: %w",
				i, parentA.Len(), parentB.Len(), ErrIndexOutOfRange)
		}

		child := breed(parentA.chromosome, parentB.chromosome)
		next.individuals[i] = NewIndividual(child)
		e.tracef("slot %d: %s x %s -> %s", i, parentA, parentB, next.individuals[i])
	}

	return next, nil
}

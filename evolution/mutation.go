package evolution

import (
	"fmt"

	"github.com/Larriche/galib/evolution/operators"
)

// mutateFunc perturbs one individual in place at the given rate.
type mutateFunc func(ind *Individual, rate float64) error

func (e *Engine) mutator() (mutateFunc, error) {
	switch e.config.MutationType {
	case MutationBitFlip:
		return func(ind *Individual, rate float64) error {
			operators.BitFlip(ind.chromosome, rate, e.rng)
			return nil
		}, nil
	case MutationRandomResetting:
		return func(ind *Individual, rate float64) error {
			donor := NewIndividualFrom(e.algorithm, e.rng, true)
			if donor.Len() != ind.Len() {
				return fmt.Errorf("random individual has %d genes, want %d: %w",
					donor.Len(), ind.Len(), ErrIndexOutOfRange)
			}
			operators.RandomReset(ind.chromosome, donor.chromosome, rate, e.rng)
			return nil
		}, nil
	case MutationSwap:
		return func(ind *Individual, rate float64) error {
			operators.Swap(ind.chromosome, rate, e.rng)
			return nil
		}, nil
	case MutationScramble:
		return func(ind *Individual, rate float64) error {
			operators.Scramble(ind.chromosome, rate, e.rng)
			return nil
		}, nil
	case MutationInversion:
		return func(ind *Individual, rate float64) error {
			operators.Inversion(ind.chromosome, rate, e.rng)
			return nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported mutation type %s", ErrInvalidConfig, e.config.MutationType)
	}
}

// MutatePopulation perturbs the members of pop in place, walking slot
// order, and returns pop. Slots 0..ElitismCount are exempt.
func (e *Engine) MutatePopulation(pop *Population) (*Population, error) {
	mutate, err := e.mutator()
	if err != nil {
		return nil, err
	}

	best, avg, haveStats := e.adaptiveBaseline(pop)

	for i, ind := range pop.individuals {
		if i <= e.config.ElitismCount {
			continue
		}
		if ind == nil {
			return nil, fmt.Errorf("mutate slot %d: %w", i, ErrUninitialized)
		}
		rate := e.config.MutationRate
		if haveStats {
			rate = e.MutationRateFor(ind, best, avg)
		}
		if err := mutate(ind, rate); err != nil {
			return nil, fmt.Errorf("mutate slot %d: %w", i, err)
		}
	}
	return pop, nil
}

// adaptiveBaseline returns the best and average fitness used to scale
// mutation rates. A fully evaluated population uses its aggregate average;
// a freshly crossed-over one, holding unevaluated offspring, falls back to
// its evaluated members.
func (e *Engine) adaptiveBaseline(pop *Population) (best, avg float64, ok bool) {
	if !e.config.AdaptiveMutation {
		return 0, 0, false
	}
	best, avg, ok = pop.evaluatedStats()
	if !ok {
		return 0, 0, false
	}
	if full, err := pop.AvgFitness(); err == nil {
		avg = full
	}
	return best, avg, true
}

// MutationRateFor returns the effective mutation rate for ind given the
// population's best and average fitness.
//
// With adaptive mutation on, an evaluated individual above the average
// mutates at MutationRate * (best - fitness) / (best - avg). When best equals
// avg the ratio is undefined and the base rate is used. Everything else uses
// the base rate.
func (e *Engine) MutationRateFor(ind *Individual, best, avg float64) float64 {
	base := e.config.MutationRate
	if !e.config.AdaptiveMutation || !ind.evaluated {
		return base
	}
	if ind.fitness <= avg || best == avg {
		return base
	}
	return base * (best - ind.fitness) / (best - avg)
}

package evolution

import "fmt"

// TournamentSelect shuffles pop, copies its first TournamentSize members
// into a temporary population and returns that population's fittest.
// The shuffle reorders pop in place.
func (e *Engine) TournamentSelect(pop *Population) (*Individual, error) {
	pop.Shuffle(e.rng)

	tournament := newEmptyPopulation(e.config.TournamentSize)
	for i := 0; i < e.config.TournamentSize; i++ {
		participant, err := pop.Individual(i)
		if err != nil {
			return nil, fmt.Errorf("tournament of %d: %w", e.config.TournamentSize, err)
		}
		if err := tournament.SetIndividual(i, participant); err != nil {
			return nil, err
		}
	}
	return tournament.Fittest(0)
}

// SelectParent picks a crossover mate. Tournament selection is the only
// strategy.
func (e *Engine) SelectParent(pop *Population) (*Individual, error) {
	return e.TournamentSelect(pop)
}

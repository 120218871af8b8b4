package evolution

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Population is an ordered collection of individuals.
//
// Ranked reads sort the members in place. The ranking and the aggregate
// fitness are cached and invalidated whenever membership, order, or any
// member's fitness changes. A Population must not be mutated concurrently.
type Population struct {
	individuals []*Individual
	Generation  int

	ranked    bool
	rankedRev uint64

	totalFitness float64
	hasTotal     bool
	totalRev     uint64
}

// NewPopulation creates a population over the given individuals.
func NewPopulation(individuals []*Individual) *Population {
	return &Population{individuals: individuals}
}

// newEmptyPopulation creates a population with size unset slots.
func newEmptyPopulation(size int) *Population {
	return &Population{individuals: make([]*Individual, size)}
}

// Size returns the number of slots in the population.
func (p *Population) Size() int {
	return len(p.individuals)
}

// Individual returns the member stored at slot i.
func (p *Population) Individual(i int) (*Individual, error) {
	if i < 0 || i >= len(p.individuals) {
		return nil, fmt.Errorf("individual %d of %d: %w", i, len(p.individuals), ErrIndexOutOfRange)
	}
	return p.individuals[i], nil
}

// SetIndividual stores ind at slot i.
func (p *Population) SetIndividual(i int, ind *Individual) error {
	if i < 0 || i >= len(p.individuals) {
		return fmt.Errorf("individual %d of %d: %w", i, len(p.individuals), ErrIndexOutOfRange)
	}
	p.individuals[i] = ind
	p.invalidate()
	return nil
}

// Individuals returns the members in their current order. The returned slice
// is a copy; the individuals are shared.
func (p *Population) Individuals() []*Individual {
	out := make([]*Individual, len(p.individuals))
	copy(out, p.individuals)
	return out
}

// Fittest sorts the population by fitness (descending) and returns the
// member ranked k, with 0 being the best. The sort is stable and is skipped
// when nothing affecting the order changed since the previous ranked read.
func (p *Population) Fittest(k int) (*Individual, error) {
	if len(p.individuals) == 0 {
		return nil, ErrEmptyPopulation
	}
	if k < 0 || k >= len(p.individuals) {
		return nil, fmt.Errorf("rank %d of %d: %w", k, len(p.individuals), ErrIndexOutOfRange)
	}
	if err := p.rank(); err != nil {
		return nil, err
	}
	return p.individuals[k], nil
}

func (p *Population) rank() error {
	rev, err := p.revision()
	if err != nil {
		return err
	}
	if p.ranked && p.rankedRev == rev {
		return nil
	}
	sort.SliceStable(p.individuals, func(i, j int) bool {
		return p.individuals[i].fitness > p.individuals[j].fitness
	})
	p.ranked = true
	p.rankedRev = rev
	return nil
}

// revision sums member revisions. Revisions only grow, so any fitness
// reassignment changes the sum. Every member must be evaluated.
func (p *Population) revision() (uint64, error) {
	var rev uint64
	for i, ind := range p.individuals {
		if ind == nil || !ind.evaluated {
			return 0, fmt.Errorf("individual %d: %w", i, ErrUninitialized)
		}
		rev += ind.revision
	}
	return rev, nil
}

// Shuffle permutes the members uniformly at random.
func (p *Population) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(p.individuals), func(i, j int) {
		p.individuals[i], p.individuals[j] = p.individuals[j], p.individuals[i]
	})
	p.ranked = false
}

// SetTotalFitness stores the aggregate fitness computed by an evaluation.
func (p *Population) SetTotalFitness(total float64) {
	p.totalFitness = total
	p.hasTotal = true
	p.totalRev, _ = p.revision()
}

// TotalFitness returns the sum of member fitness values, computing and
// caching it if no valid aggregate is stored.
func (p *Population) TotalFitness() (float64, error) {
	rev, err := p.revision()
	if err != nil {
		return 0, err
	}
	if p.hasTotal && p.totalRev == rev {
		return p.totalFitness, nil
	}
	var total float64
	for _, ind := range p.individuals {
		total += ind.fitness
	}
	p.totalFitness = total
	p.hasTotal = true
	p.totalRev = rev
	return total, nil
}

// AvgFitness returns the mean member fitness.
func (p *Population) AvgFitness() (float64, error) {
	if len(p.individuals) == 0 {
		return 0, ErrEmptyPopulation
	}
	total, err := p.TotalFitness()
	if err != nil {
		return 0, err
	}
	return total / float64(len(p.individuals)), nil
}

// evaluatedStats returns the best and mean fitness over evaluated members
// only. ok is false when no member is evaluated.
func (p *Population) evaluatedStats() (best, avg float64, ok bool) {
	var sum float64
	var n int
	for _, ind := range p.individuals {
		if ind == nil || !ind.evaluated {
			continue
		}
		if n == 0 || ind.fitness > best {
			best = ind.fitness
		}
		sum += ind.fitness
		n++
	}
	if n == 0 {
		return 0, 0, false
	}
	return best, sum / float64(n), true
}

// Clone returns a population with its own slot order over the same
// individuals, so shuffling the clone leaves the original order intact.
func (p *Population) Clone() *Population {
	clone := &Population{
		individuals: make([]*Individual, len(p.individuals)),
		Generation:  p.Generation,
	}
	copy(clone.individuals, p.individuals)
	return clone
}

func (p *Population) invalidate() {
	p.ranked = false
	p.hasTotal = false
}

// String lists the members in slot order.
func (p *Population) String() string {
	var sb strings.Builder
	for i, ind := range p.individuals {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if ind == nil {
			sb.WriteString("<nil>")
			continue
		}
		sb.WriteString(ind.String())
	}
	return sb.String()
}

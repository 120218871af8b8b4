package evolution

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestNewPopulation(t *testing.T) {
	pop := NewPopulation([]*Individual{evaluated(0.1, 0), evaluated(0.2, 1)})

	if pop.Size() != 2 {
		t.Errorf("Expected size 2, got %d", pop.Size())
	}
	if pop.Generation != 0 {
		t.Errorf("Expected generation 0, got %d", pop.Generation)
	}
}

func TestPopulationIndividualAccess(t *testing.T) {
	pop := newEmptyPopulation(2)
	a := evaluated(0.5, 1)

	if err := pop.SetIndividual(1, a); err != nil {
		t.Fatalf("SetIndividual failed: %v", err)
	}
	got, err := pop.Individual(1)
	if err != nil || got != a {
		t.Errorf("Individual(1) = %v, %v", got, err)
	}
	if _, err := pop.Individual(2); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
	if err := pop.SetIndividual(-1, a); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestPopulationFittest(t *testing.T) {
	pop := NewPopulation([]*Individual{
		evaluated(0.3, 0),
		evaluated(0.9, 1),
		evaluated(0.5, 2),
	})

	best, err := pop.Fittest(0)
	if err != nil {
		t.Fatalf("Fittest failed: %v", err)
	}
	if f, _ := best.Fitness(); f != 0.9 {
		t.Errorf("Expected best fitness 0.9, got %f", f)
	}

	// Ranked reads sort the stored order
	for i, want := range []float64{0.9, 0.5, 0.3} {
		ind, _ := pop.Individual(i)
		if ind.fitness != want {
			t.Errorf("slot %d fitness = %f, want %f", i, ind.fitness, want)
		}
	}

	worst, _ := pop.Fittest(2)
	if worst.fitness != 0.3 {
		t.Errorf("Expected rank 2 fitness 0.3, got %f", worst.fitness)
	}
}

func TestPopulationFittestErrors(t *testing.T) {
	if _, err := NewPopulation(nil).Fittest(0); !errors.Is(err, ErrEmptyPopulation) {
		t.Errorf("Expected ErrEmptyPopulation, got %v", err)
	}

	pop := NewPopulation([]*Individual{evaluated(1, 0)})
	if _, err := pop.Fittest(1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}

	partial := NewPopulation([]*Individual{evaluated(1, 0), NewIndividual([]int{1})})
	if _, err := partial.Fittest(0); !errors.Is(err, ErrUninitialized) {
		t.Errorf("Expected ErrUninitialized, got %v", err)
	}

	withNil := newEmptyPopulation(2)
	if _, err := withNil.Fittest(0); !errors.Is(err, ErrUninitialized) {
		t.Errorf("Expected ErrUninitialized for empty slot, got %v", err)
	}
}

func TestPopulationRankInvalidatedByFitness(t *testing.T) {
	a := evaluated(0.9, 0)
	b := evaluated(0.1, 1)
	pop := NewPopulation([]*Individual{a, b})

	if best, _ := pop.Fittest(0); best != a {
		t.Fatal("Expected a to rank first")
	}

	b.SetFitness(1.0)
	if best, _ := pop.Fittest(0); best != b {
		t.Error("Expected ranking to refresh after fitness reassignment")
	}
}

func TestPopulationAvgFitness(t *testing.T) {
	pop := NewPopulation([]*Individual{
		evaluated(0.2, 0),
		evaluated(0.4, 1),
		evaluated(0.6, 2),
	})

	avg, err := pop.AvgFitness()
	if err != nil {
		t.Fatalf("AvgFitness failed: %v", err)
	}
	total, _ := pop.TotalFitness()
	if avg != total/3 {
		t.Errorf("avg %f != total/size %f", avg, total/3)
	}
	if math.Abs(avg-0.4) > 1e-9 {
		t.Errorf("Expected average fitness ~0.4, got %f", avg)
	}

	if _, err := NewPopulation(nil).AvgFitness(); !errors.Is(err, ErrEmptyPopulation) {
		t.Errorf("Expected ErrEmptyPopulation, got %v", err)
	}
}

func TestPopulationTotalFitnessCache(t *testing.T) {
	a := evaluated(1, 0)
	pop := NewPopulation([]*Individual{a, evaluated(2, 1)})

	// A stored aggregate is used while no fitness changes
	pop.SetTotalFitness(10)
	if total, _ := pop.TotalFitness(); total != 10 {
		t.Errorf("Expected cached total 10, got %f", total)
	}

	// Reassigning any fitness invalidates it
	a.SetFitness(5)
	if total, _ := pop.TotalFitness(); total != 7 {
		t.Errorf("Expected recomputed total 7, got %f", total)
	}

	// Replacing a member invalidates it too
	pop.SetIndividual(0, evaluated(0, 0))
	if total, _ := pop.TotalFitness(); total != 2 {
		t.Errorf("Expected recomputed total 2, got %f", total)
	}
}

func TestPopulationShuffleAndClone(t *testing.T) {
	individuals := make([]*Individual, 20)
	for i := range individuals {
		individuals[i] = evaluated(float64(i), i)
	}
	pop := NewPopulation(individuals)
	clone := pop.Clone()

	clone.Shuffle(rand.New(rand.NewSource(42)))

	moved := false
	for i := 0; i < pop.Size(); i++ {
		orig, _ := pop.Individual(i)
		if orig.chromosome[0] != i {
			t.Fatal("shuffling the clone reordered the original")
		}
		c, _ := clone.Individual(i)
		if c != orig {
			moved = true
		}
	}
	if !moved {
		t.Error("Expected shuffle to reorder the clone")
	}
}

func TestPopulationIndividualsIsCopy(t *testing.T) {
	pop := NewPopulation([]*Individual{evaluated(1, 0), evaluated(2, 1)})
	members := pop.Individuals()
	members[0] = nil
	if ind, _ := pop.Individual(0); ind == nil {
		t.Error("modifying Individuals() result changed the population")
	}
}

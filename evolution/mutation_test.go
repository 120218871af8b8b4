package evolution

import (
	"errors"
	"math/rand"
	"testing"
)

func TestMutationRateForAdaptive(t *testing.T) {
	config := testConfig()
	config.MutationRate = 0.1
	config.AdaptiveMutation = true
	e := NewEngine(config, newBitsAlgorithm(4), rand.New(rand.NewSource(1)))

	tests := []struct {
		name      string
		ind       *Individual
		best, avg float64
		want      float64
	}{
		{"above average scales down", evaluated(0.75, 0), 1, 0.5, 0.05},
		{"best gets zero", evaluated(1, 0), 1, 0.5, 0},
		{"at average uses base", evaluated(0.5, 0), 1, 0.5, 0.1},
		{"below average uses base", evaluated(0.2, 0), 1, 0.5, 0.1},
		{"best equals avg uses base", evaluated(0.5, 0), 0.5, 0.5, 0.1},
		{"unevaluated uses base", NewIndividual([]int{0}), 1, 0.5, 0.1},
	}
	for _, tt := range tests {
		if got := e.MutationRateFor(tt.ind, tt.best, tt.avg); got != tt.want {
			t.Errorf("%s: rate = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestMutationRateForNonAdaptive(t *testing.T) {
	config := testConfig()
	config.MutationRate = 0.1
	e := NewEngine(config, newBitsAlgorithm(4), rand.New(rand.NewSource(1)))

	if got := e.MutationRateFor(evaluated(0.75, 0), 1, 0.5); got != 0.1 {
		t.Errorf("Expected base rate without adaptive mutation, got %v", got)
	}
}

func TestMutatePopulationRateZero(t *testing.T) {
	for _, mt := range []MutationType{MutationBitFlip, MutationRandomResetting, MutationSwap, MutationScramble, MutationInversion} {
		config := testConfig()
		config.MutationRate = 0
		config.MutationType = mt
		e := NewEngine(config, newBitsAlgorithm(8), rand.New(rand.NewSource(42)))

		pop := evaluatedPopulation(t, e)
		before := make([]*Individual, pop.Size())
		for i, ind := range pop.individuals {
			before[i] = ind.Clone()
		}
		if _, err := e.MutatePopulation(pop); err != nil {
			t.Fatalf("%s: MutatePopulation failed: %v", mt, err)
		}
		for i, ind := range pop.individuals {
			if !sameGenes(ind, before[i]) {
				t.Errorf("%s: slot %d changed at rate 0", mt, i)
			}
		}
	}
}

func TestMutatePopulationBitFlipAll(t *testing.T) {
	config := testConfig()
	config.MutationRate = 1
	config.ElitismCount = 0
	e := NewEngine(config, newBitsAlgorithm(8), rand.New(rand.NewSource(42)))

	pop := evaluatedPopulation(t, e)
	before := make([]*Individual, pop.Size())
	for i, ind := range pop.individuals {
		before[i] = ind.Clone()
	}
	if _, err := e.MutatePopulation(pop); err != nil {
		t.Fatalf("MutatePopulation failed: %v", err)
	}
	for i := 1; i < pop.Size(); i++ {
		for j, g := range pop.individuals[i].chromosome {
			if g != 1-before[i].chromosome[j] {
				t.Fatalf("slot %d gene %d not flipped", i, j)
			}
		}
	}
	if !sameGenes(pop.individuals[0], before[0]) {
		t.Error("slot 0 mutated with elitism_count 0")
	}
}

func TestMutatePopulationRandomResettingLengthMismatch(t *testing.T) {
	config := testConfig()
	config.MutationType = MutationRandomResetting
	alg := newBitsAlgorithm(8)
	alg.randomLen = 4
	e := NewEngine(config, alg, rand.New(rand.NewSource(1)))

	if _, err := e.MutatePopulation(evaluatedPopulation(t, e)); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestMutatePopulationInvalidType(t *testing.T) {
	config := testConfig()
	config.MutationType = MutationType(42)
	e := NewEngine(config, newBitsAlgorithm(4), rand.New(rand.NewSource(1)))

	if _, err := e.MutatePopulation(NewPopulation(nil)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

func TestMutatePopulationAdaptiveSparesBest(t *testing.T) {
	config := testConfig()
	config.MutationRate = 1
	config.AdaptiveMutation = true
	config.ElitismCount = 0

	alg := newBitsAlgorithm(6)
	e := NewEngine(config, alg, rand.New(rand.NewSource(9)))

	// Slot 1 holds the unique best; at rate 0 it must survive mutation
	pop := NewPopulation([]*Individual{
		evaluated(0.1, 0, 0, 0, 0, 0, 0),
		evaluated(1.0, 1, 1, 1, 1, 1, 1),
		evaluated(0.2, 0, 0, 0, 0, 0, 1),
	})
	if _, err := e.MutatePopulation(pop); err != nil {
		t.Fatalf("MutatePopulation failed: %v", err)
	}
	for _, g := range pop.individuals[1].chromosome {
		if g != 1 {
			t.Fatalf("best individual mutated: %s", pop.individuals[1])
		}
	}
}

package evolution

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestInitPopulation(t *testing.T) {
	config := testConfig()
	e := NewEngine(config, newBitsAlgorithm(5), rand.New(rand.NewSource(42)))

	pop := e.InitPopulation()
	if pop.Size() != config.PopulationSize {
		t.Fatalf("Expected %d individuals, got %d", config.PopulationSize, pop.Size())
	}
	for i, ind := range pop.individuals {
		if ind.Len() != 5 {
			t.Errorf("slot %d: expected 5 genes, got %d", i, ind.Len())
		}
		if ind.Evaluated() {
			t.Errorf("slot %d: expected unevaluated individual", i)
		}
	}
}

func TestEvaluatePopulation(t *testing.T) {
	alg := newBitsAlgorithm(4)
	e := NewEngine(testConfig(), alg, rand.New(rand.NewSource(42)))

	pop := e.InitPopulation()
	if err := e.EvaluatePopulation(pop); err != nil {
		t.Fatalf("EvaluatePopulation failed: %v", err)
	}
	if alg.evaluations != pop.Size() {
		t.Errorf("Expected %d evaluations, got %d", pop.Size(), alg.evaluations)
	}

	var sum float64
	for _, ind := range pop.individuals {
		f, err := ind.Fitness()
		if err != nil {
			t.Fatalf("member unevaluated: %v", err)
		}
		sum += f
	}
	total, _ := pop.TotalFitness()
	if math.Abs(total-sum) > 1e-9 {
		t.Errorf("Expected total %f, got %f", sum, total)
	}
}

func TestEvaluatePopulationEmptySlot(t *testing.T) {
	e := NewEngine(testConfig(), newBitsAlgorithm(4), rand.New(rand.NewSource(1)))
	if err := e.EvaluatePopulation(newEmptyPopulation(2)); !errors.Is(err, ErrUninitialized) {
		t.Errorf("Expected ErrUninitialized, got %v", err)
	}
}

func TestCalculateFitnessStores(t *testing.T) {
	e := NewEngine(testConfig(), newBitsAlgorithm(4), rand.New(rand.NewSource(1)))
	ind := NewIndividual([]int{1, 1, 0, 0})
	if f := e.CalculateFitness(ind); f != 0.5 {
		t.Errorf("Expected fitness 0.5, got %f", f)
	}
	if f, err := ind.Fitness(); err != nil || f != 0.5 {
		t.Errorf("Expected stored fitness 0.5, got %f, %v", f, err)
	}
}

func TestTemperatureSchedule(t *testing.T) {
	config := testConfig()
	config.Temperature = 2
	config.CoolingRate = 0.5
	e := NewEngine(config, newBitsAlgorithm(4), rand.New(rand.NewSource(1)))

	if e.Temperature() != 2 {
		t.Errorf("Expected initial temperature 2, got %f", e.Temperature())
	}
	e.CoolTemperature()
	if e.Temperature() != 1 {
		t.Errorf("Expected temperature 1 after cooling, got %f", e.Temperature())
	}
}

func TestEngineConfigIsCopy(t *testing.T) {
	config := testConfig()
	e := NewEngine(config, newBitsAlgorithm(4), rand.New(rand.NewSource(1)))
	config.PopulationSize = 1
	if e.Config().PopulationSize != 10 {
		t.Error("engine config changed with caller's copy")
	}
}

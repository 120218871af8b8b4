package evolution

import (
	"math/rand"
	"strings"
)

// bitsAlgorithm is a OneMax-style problem used across the package tests.
type bitsAlgorithm struct {
	length      int
	randomLen   int // length of donor chromosomes, 0 = length
	evaluations int
	terminate   func(pop *Population) bool
	fitness     func(ind *Individual) float64
	logs        []string
	schedule    TemperatureSchedule
}

func newBitsAlgorithm(length int) *bitsAlgorithm {
	return &bitsAlgorithm{length: length}
}

func (b *bitsAlgorithm) CreateIndividual(rng *rand.Rand) []int {
	genes := make([]int, b.length)
	for i := range genes {
		genes[i] = rng.Intn(2)
	}
	return genes
}

func (b *bitsAlgorithm) CreateRandomIndividual(rng *rand.Rand) []int {
	n := b.length
	if b.randomLen > 0 {
		n = b.randomLen
	}
	genes := make([]int, n)
	for i := range genes {
		genes[i] = rng.Intn(2)
	}
	return genes
}

func (b *bitsAlgorithm) CalculateFitness(ind *Individual) float64 {
	b.evaluations++
	if b.fitness != nil {
		return b.fitness(ind)
	}
	ones := 0
	for _, g := range ind.chromosome {
		ones += g
	}
	return float64(ones) / float64(len(ind.chromosome))
}

func (b *bitsAlgorithm) ShouldTerminate(pop *Population) bool {
	if b.terminate != nil {
		return b.terminate(pop)
	}
	return false
}

func (b *bitsAlgorithm) Log(message string, generation int) {
	b.logs = append(b.logs, message)
}

func (b *bitsAlgorithm) UseSchedule(schedule TemperatureSchedule) {
	b.schedule = schedule
}

func (b *bitsAlgorithm) lastLoggedFittest() string {
	if len(b.logs) == 0 {
		return ""
	}
	return strings.TrimPrefix(b.logs[len(b.logs)-1], "Fittest: ")
}

// evaluated builds an evaluated individual with the given genes and fitness.
func evaluated(fitness float64, genes ...int) *Individual {
	ind := NewIndividual(genes)
	ind.SetFitness(fitness)
	return ind
}

func testConfig() Config {
	config := DefaultConfig()
	config.PopulationSize = 10
	config.TournamentSize = 3
	config.ElitismCount = 1
	config.RandomSeed = 42
	return config
}

package evolution

import "math/rand"

// Algorithm is the problem-specific collaborator driving a run. The engine
// owns the search mechanics; the algorithm owns encoding and fitness.
//
// Constructors receive the run's random source so that seeded runs are
// reproducible and independent runs never share a generator.
type Algorithm interface {
	// CreateIndividual returns the chromosome of a new population member.
	CreateIndividual(rng *rand.Rand) []int

	// CreateRandomIndividual returns a random chromosome, used as the gene
	// donor for random-resetting mutation.
	CreateRandomIndividual(rng *rand.Rand) []int

	// CalculateFitness scores an individual. Higher is better.
	CalculateFitness(ind *Individual) float64

	// ShouldTerminate reports whether the run has reached its goal.
	ShouldTerminate(pop *Population) bool

	// Log receives one diagnostic line per generation.
	Log(message string, generation int)
}

// TemperatureSchedule is the annealing hook exposed by the Engine. The
// generational loop never reads or cools it.
type TemperatureSchedule interface {
	Temperature() float64
	CoolTemperature()
}

// ScheduleAware is implemented by algorithms that want the run's
// TemperatureSchedule. The controller hands it over once, before the loop.
type ScheduleAware interface {
	UseSchedule(schedule TemperatureSchedule)
}

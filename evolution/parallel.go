package evolution

import (
	"log"
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// BatchJob describes one independent run. Each job needs its own Algorithm
// instance; jobs never share a population or a random source.
type BatchJob struct {
	Config         Config
	Algorithm      Algorithm
	MaxGenerations int
}

// BatchResult holds the outcome of one BatchJob.
type BatchResult struct {
	Index   int
	Fittest string
	Summary Summary
	Err     error
}

// BatchRunner runs independent jobs side by side.
type BatchRunner struct {
	NumWorkers int
	Logger     *log.Logger
	Verbose    bool

	// OnGenerationComplete, if set, receives stats from every job. It may be
	// called from several goroutines at once.
	OnGenerationComplete func(stats GenerationStats)
}

// NewBatchRunner creates a runner. numWorkers <= 0 uses the CPU count.
func NewBatchRunner(numWorkers int) *BatchRunner {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &BatchRunner{
		NumWorkers: numWorkers,
		Logger:     log.Default(),
	}
}

// Run executes every job and returns the results in job order.
func (br *BatchRunner) Run(jobs []BatchJob) []BatchResult {
	results := make([]BatchResult, len(jobs))

	p := pool.New().WithMaxGoroutines(br.NumWorkers)
	for i, job := range jobs {
		i, job := i, job
		p.Go(func() {
			results[i] = br.runJob(i, job)
		})
	}
	p.Wait()

	return results
}

func (br *BatchRunner) runJob(index int, job BatchJob) BatchResult {
	ctrl := NewController(job.Config, job.Algorithm, job.MaxGenerations)
	ctrl.Logger = br.Logger
	ctrl.Verbose = br.Verbose
	ctrl.OnGenerationComplete = br.OnGenerationComplete

	fittest, err := ctrl.Run()
	result := BatchResult{
		Index:   index,
		Fittest: fittest,
		Summary: ctrl.Summary(),
		Err:     err,
	}
	if err != nil {
		result.Summary.Error = err.Error()
	}
	return result
}

// RunBatch runs jobs with at most maxConcurrent controllers at a time.
func RunBatch(jobs []BatchJob, maxConcurrent int) []BatchResult {
	return NewBatchRunner(maxConcurrent).Run(jobs)
}

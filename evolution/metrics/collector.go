// Package metrics exports run progress as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Larriche/galib/evolution"
)

// Collector records GenerationStats reported by controllers. Metrics are
// labelled by run id so concurrent batch runs stay apart.
type Collector struct {
	generations   *prometheus.CounterVec
	bestFitness   *prometheus.GaugeVec
	avgFitness    *prometheus.GaugeVec
	runsCompleted *prometheus.CounterVec
}

// NewCollector creates the metrics and registers them with reg. A nil reg
// uses the default registerer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "galib_generations_total",
			Help: "Generations completed per run.",
		}, []string{"run_id"}),
		bestFitness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "galib_best_fitness",
			Help: "Fitness of the fittest individual in the latest generation.",
		}, []string{"run_id"}),
		avgFitness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "galib_avg_fitness",
			Help: "Mean fitness of the latest generation.",
		}, []string{"run_id"}),
		runsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "galib_runs_completed_total",
			Help: "Runs finished, by outcome.",
		}, []string{"outcome"}),
	}
	for _, m := range []prometheus.Collector{c.generations, c.bestFitness, c.avgFitness, c.runsCompleted} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Observe records one generation. It matches the OnGenerationComplete
// callback signature and is safe for concurrent use.
func (c *Collector) Observe(stats evolution.GenerationStats) {
	c.generations.WithLabelValues(stats.RunID).Inc()
	c.bestFitness.WithLabelValues(stats.RunID).Set(stats.BestFitness)
	c.avgFitness.WithLabelValues(stats.RunID).Set(stats.AvgFitness)
}

// RunFinished counts a completed run.
func (c *Collector) RunFinished(err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.runsCompleted.WithLabelValues(outcome).Inc()
}

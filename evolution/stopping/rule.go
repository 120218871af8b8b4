// Package stopping compiles termination expressions such as
// "best >= 0.95 || generation > 200" and attaches them to an Algorithm.
//
// Expressions see four variables: best and avg fitness of the population,
// generation (the controller's counter, starting at 1) and size.
package stopping

import (
	"context"
	"fmt"

	"github.com/PaesslerAG/gval"

	"github.com/Larriche/galib/evolution"
)

// Rule is a compiled termination expression.
type Rule struct {
	expr string
	eval gval.Evaluable
}

// Compile parses expr. The expression must evaluate to a boolean.
func Compile(expr string) (*Rule, error) {
	eval, err := gval.Full().NewEvaluable(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stop rule %q: %w", expr, err)
	}
	return &Rule{expr: expr, eval: eval}, nil
}

// String returns the source expression.
func (r *Rule) String() string {
	return r.expr
}

// Vars returns the variables an expression sees for pop.
func Vars(pop *evolution.Population) map[string]interface{} {
	vars := map[string]interface{}{
		"best":       0.0,
		"avg":        0.0,
		"generation": pop.Generation + 1,
		"size":       pop.Size(),
	}
	if best, err := pop.Fittest(0); err == nil {
		if f, err := best.Fitness(); err == nil {
			vars["best"] = f
		}
	}
	if avg, err := pop.AvgFitness(); err == nil {
		vars["avg"] = avg
	}
	return vars
}

// Met evaluates the rule against pop.
func (r *Rule) Met(pop *evolution.Population) (bool, error) {
	met, err := r.eval.EvalBool(context.Background(), Vars(pop))
	if err != nil {
		return false, fmt.Errorf("stop rule %q: %w", r.expr, err)
	}
	return met, nil
}

// Wrap returns an Algorithm that terminates when either alg's own predicate
// or rule holds. A rule that fails to evaluate never stops the run.
func Wrap(alg evolution.Algorithm, rule *Rule) evolution.Algorithm {
	return &stoppedAlgorithm{Algorithm: alg, rule: rule}
}

type stoppedAlgorithm struct {
	evolution.Algorithm
	rule *Rule
}

func (s *stoppedAlgorithm) ShouldTerminate(pop *evolution.Population) bool {
	if s.Algorithm.ShouldTerminate(pop) {
		return true
	}
	met, err := s.rule.Met(pop)
	if err != nil {
		s.Algorithm.Log(err.Error(), pop.Generation+1)
		return false
	}
	return met
}

// UseSchedule forwards the schedule to the wrapped algorithm.
func (s *stoppedAlgorithm) UseSchedule(schedule evolution.TemperatureSchedule) {
	if aware, ok := s.Algorithm.(evolution.ScheduleAware); ok {
		aware.UseSchedule(schedule)
	}
}

package stopping

import (
	"math/rand"
	"testing"

	"github.com/Larriche/galib/evolution"
)

func evaluatedPopulation(fitness ...float64) *evolution.Population {
	individuals := make([]*evolution.Individual, len(fitness))
	for i, f := range fitness {
		individuals[i] = evolution.NewIndividual([]int{i})
		individuals[i].SetFitness(f)
	}
	return evolution.NewPopulation(individuals)
}

func TestCompileInvalid(t *testing.T) {
	if _, err := Compile("best >="); err == nil {
		t.Error("expected parse error")
	}
}

func TestRuleMet(t *testing.T) {
	pop := evaluatedPopulation(0.25, 0.75, 0.5)

	tests := []struct {
		expr string
		want bool
	}{
		{"best >= 0.75", true},
		{"best > 0.75", false},
		{"avg == 0.5", true},
		{"size == 3", true},
		{"generation == 1", true},
		{"generation > 1 || best < 0.5", false},
	}
	for _, tt := range tests {
		rule, err := Compile(tt.expr)
		if err != nil {
			t.Fatalf("Compile(%q) failed: %v", tt.expr, err)
		}
		got, err := rule.Met(pop)
		if err != nil {
			t.Fatalf("Met(%q) failed: %v", tt.expr, err)
		}
		if got != tt.want {
			t.Errorf("Met(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestVarsUnevaluated(t *testing.T) {
	pop := evolution.NewPopulation([]*evolution.Individual{evolution.NewIndividual([]int{1})})
	vars := Vars(pop)
	if vars["best"] != 0.0 || vars["avg"] != 0.0 {
		t.Errorf("expected zero fitness vars for unevaluated population, got %v", vars)
	}
}

// neverDone counts evaluations and never terminates on its own.
type neverDone struct {
	length int
	logs   int
}

func (n *neverDone) CreateIndividual(rng *rand.Rand) []int       { return make([]int, n.length) }
func (n *neverDone) CreateRandomIndividual(rng *rand.Rand) []int { return make([]int, n.length) }
func (n *neverDone) CalculateFitness(ind *evolution.Individual) float64 {
	return 0
}
func (n *neverDone) ShouldTerminate(pop *evolution.Population) bool { return false }
func (n *neverDone) Log(message string, generation int)             { n.logs++ }

func TestWrapStopsRun(t *testing.T) {
	rule, err := Compile("generation >= 5")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	inner := &neverDone{length: 4}

	config := evolution.DefaultConfig()
	config.PopulationSize = 10
	config.TournamentSize = 3
	config.RandomSeed = 42

	ctrl := evolution.NewController(config, Wrap(inner, rule), 100)
	if _, err := ctrl.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if ctrl.Generations() != 5 {
		t.Errorf("expected run to stop at generation 5, got %d", ctrl.Generations())
	}
	if inner.logs != 4 {
		t.Errorf("expected 4 logged generations, got %d", inner.logs)
	}
}

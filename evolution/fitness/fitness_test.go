package fitness

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Larriche/galib/evolution"
)

func TestOneMaxFitness(t *testing.T) {
	o := NewOneMax(4)
	tests := []struct {
		genes []int
		want  float64
	}{
		{[]int{0, 0, 0, 0}, 0},
		{[]int{1, 0, 1, 0}, 0.5},
		{[]int{1, 1, 1, 1}, 1},
	}
	for _, tt := range tests {
		if got := o.CalculateFitness(evolution.NewIndividual(tt.genes)); got != tt.want {
			t.Errorf("fitness(%v) = %v, want %v", tt.genes, got, tt.want)
		}
	}
}

func TestOneMaxCreateIndividual(t *testing.T) {
	o := NewOneMax(32)
	rng := rand.New(rand.NewSource(1))
	genes := o.CreateIndividual(rng)
	if len(genes) != 32 {
		t.Fatalf("expected 32 genes, got %d", len(genes))
	}
	for i, g := range genes {
		if g != 0 && g != 1 {
			t.Errorf("gene %d = %d, want 0 or 1", i, g)
		}
	}
}

func TestOneMaxShouldTerminate(t *testing.T) {
	o := NewOneMax(2)
	half := evolution.NewIndividual([]int{1, 0})
	half.SetFitness(o.CalculateFitness(half))
	pop := evolution.NewPopulation([]*evolution.Individual{half})
	if o.ShouldTerminate(pop) {
		t.Error("should not terminate below perfect fitness")
	}

	full := evolution.NewIndividual([]int{1, 1})
	full.SetFitness(o.CalculateFitness(full))
	pop = evolution.NewPopulation([]*evolution.Individual{half, full})
	if !o.ShouldTerminate(pop) {
		t.Error("should terminate once a perfect individual exists")
	}

	// Unranked populations never terminate
	if o.ShouldTerminate(evolution.NewPopulation([]*evolution.Individual{evolution.NewIndividual([]int{1, 1})})) {
		t.Error("should not terminate on unevaluated population")
	}
}

func TestTargetFitness(t *testing.T) {
	tg := NewTarget([]int{2, 0, 1}, 3)
	if got := tg.CalculateFitness(evolution.NewIndividual([]int{2, 0, 1})); got != 1 {
		t.Errorf("exact match fitness = %v, want 1", got)
	}
	if got := tg.CalculateFitness(evolution.NewIndividual([]int{0, 0, 0})); got != 1.0/3 {
		t.Errorf("one match fitness = %v, want 1/3", got)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		for _, g := range tg.CreateRandomIndividual(rng) {
			if g < 0 || g >= 3 {
				t.Fatalf("gene %d outside alphabet", g)
			}
		}
	}
}

func TestNew(t *testing.T) {
	alg, err := New("OneMax", 8, nil)
	if err != nil {
		t.Fatalf("New(onemax) failed: %v", err)
	}
	if _, ok := alg.(*OneMax); !ok {
		t.Errorf("expected *OneMax, got %T", alg)
	}

	alg, err = New("target", 0, []int{0, 3, 1})
	if err != nil {
		t.Fatalf("New(target) failed: %v", err)
	}
	tg, ok := alg.(*Target)
	if !ok {
		t.Fatalf("expected *Target, got %T", alg)
	}
	if tg.Alphabet != 4 {
		t.Errorf("expected alphabet 4, got %d", tg.Alphabet)
	}

	if _, err := New("onemax", 0, nil); err == nil {
		t.Error("expected error for zero length")
	}
	if _, err := New("target", 5, []int{1, 0}); err == nil {
		t.Error("expected error for length mismatch")
	}
	_, err = New("nope", 4, nil)
	if err == nil || !strings.Contains(err.Error(), "onemax") {
		t.Errorf("expected unknown problem error listing presets, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != 2 || names[0] != "onemax" || names[1] != "target" {
		t.Errorf("Names() = %v", names)
	}
}

func TestParseGenes(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"1011", []int{1, 0, 1, 1}, false},
		{"1, 2,3", []int{1, 2, 3}, false},
		{"", nil, false},
		{"1,x", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseGenes(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGenes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseGenes(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseGenes(%q) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestOneMaxSolves(t *testing.T) {
	config := evolution.DefaultConfig()
	config.PopulationSize = 50
	config.MutationRate = 0.02
	config.RandomSeed = 3

	ctrl := evolution.NewController(config, NewOneMax(16), 500)
	if _, err := ctrl.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	best, err := ctrl.Population().Fittest(0)
	if err != nil {
		t.Fatalf("Fittest failed: %v", err)
	}
	f, _ := best.Fitness()
	if f < 0.9 {
		t.Errorf("expected near-perfect OneMax after 500 generations, got %v", f)
	}
}

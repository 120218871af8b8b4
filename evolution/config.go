package evolution

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// CrossoverType selects the recombination operator.
type CrossoverType int

const (
	CrossoverSinglePoint CrossoverType = iota + 1
	CrossoverMultiPoint
	CrossoverUniform
)

var crossoverNames = map[CrossoverType]string{
	CrossoverSinglePoint: "single_point",
	CrossoverMultiPoint:  "multi_point",
	CrossoverUniform:     "uniform",
}

// ParseCrossoverType accepts names like "uniform", "single-point" or "SINGLE_POINT".
func ParseCrossoverType(s string) (CrossoverType, error) {
	name := normalizeName(s)
	for t, n := range crossoverNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown crossover type %q", ErrInvalidConfig, s)
}

func (t CrossoverType) String() string {
	if n, ok := crossoverNames[t]; ok {
		return n
	}
	return fmt.Sprintf("CrossoverType(%d)", int(t))
}

// Valid reports whether t names a known operator.
func (t CrossoverType) Valid() bool {
	_, ok := crossoverNames[t]
	return ok
}

// MarshalText encodes t by name.
func (t CrossoverType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown crossover type %d", ErrInvalidConfig, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts any name ParseCrossoverType does.
func (t *CrossoverType) UnmarshalText(text []byte) error {
	parsed, err := ParseCrossoverType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MutationType selects the perturbation operator.
type MutationType int

const (
	MutationBitFlip MutationType = iota + 1
	MutationRandomResetting
	MutationSwap
	MutationScramble
	MutationInversion
)

var mutationNames = map[MutationType]string{
	MutationBitFlip:         "bit_flip",
	MutationRandomResetting: "random_resetting",
	MutationSwap:            "swap",
	MutationScramble:        "scramble",
	MutationInversion:       "inversion",
}

// ParseMutationType accepts names like "bit_flip", "random-resetting" or
// "SWAP_MUTATION".
func ParseMutationType(s string) (MutationType, error) {
	name := strings.TrimSuffix(normalizeName(s), "_mutation")
	for t, n := range mutationNames {
		if n == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown mutation type %q", ErrInvalidConfig, s)
}

func (t MutationType) String() string {
	if n, ok := mutationNames[t]; ok {
		return n
	}
	return fmt.Sprintf("MutationType(%d)", int(t))
}

// Valid reports whether t names a known operator.
func (t MutationType) Valid() bool {
	_, ok := mutationNames[t]
	return ok
}

// MarshalText encodes t by name.
func (t MutationType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown mutation type %d", ErrInvalidConfig, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts any name ParseMutationType does.
func (t *MutationType) UnmarshalText(text []byte) error {
	parsed, err := ParseMutationType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func normalizeName(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}

// Config holds the parameters of one run. It is copied into the Engine and
// never changes during the run.
type Config struct {
	PopulationSize   int           `toml:"population_size"`   // Individuals per generation
	MutationRate     float64       `toml:"mutation_rate"`     // Per-gene (or per-individual) mutation probability
	CrossoverRate    float64       `toml:"crossover_rate"`    // Probability a non-elite slot is bred
	ElitismCount     int           `toml:"elitism_count"`     // Slots 0..ElitismCount are carried unchanged
	TournamentSize   int           `toml:"tournament_size"`   // Members sampled per tournament
	Temperature      float64       `toml:"temperature"`       // Initial temperature for the annealing hook
	CoolingRate      float64       `toml:"cooling_rate"`      // Geometric cooling factor for the annealing hook
	CrossoverType    CrossoverType `toml:"crossover_type"`    // Recombination operator
	MutationType     MutationType  `toml:"mutation_type"`     // Perturbation operator
	AdaptiveMutation bool          `toml:"adaptive_mutation"` // Scale the rate down for above-average individuals
	RandomSeed       int64         `toml:"random_seed"`       // Random seed (0 = use time)
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		PopulationSize:   100,
		MutationRate:     0.01,
		CrossoverRate:    0.9,
		ElitismCount:     2,
		TournamentSize:   10,
		Temperature:      1.0,
		CoolingRate:      0.001,
		CrossoverType:    CrossoverUniform,
		MutationType:     MutationBitFlip,
		AdaptiveMutation: false,
		RandomSeed:       0,
	}
}

// Validate checks every setting and both operator kinds.
func (c Config) Validate() error {
	if c.PopulationSize <= 0 {
		return fmt.Errorf("%w: population_size must be > 0 (got %d)", ErrInvalidConfig, c.PopulationSize)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return fmt.Errorf("%w: mutation_rate must be in [0,1] (got %f)", ErrInvalidConfig, c.MutationRate)
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return fmt.Errorf("%w: crossover_rate must be in [0,1] (got %f)", ErrInvalidConfig, c.CrossoverRate)
	}
	if c.ElitismCount < 0 || c.ElitismCount >= c.PopulationSize {
		return fmt.Errorf("%w: elitism_count must be in [0, population_size) (got %d)", ErrInvalidConfig, c.ElitismCount)
	}
	if c.TournamentSize <= 0 || c.TournamentSize > c.PopulationSize {
		return fmt.Errorf("%w: tournament_size must be in (0, population_size] (got %d)", ErrInvalidConfig, c.TournamentSize)
	}
	if c.CoolingRate < 0 || c.CoolingRate >= 1 {
		return fmt.Errorf("%w: cooling_rate must be in [0,1) (got %f)", ErrInvalidConfig, c.CoolingRate)
	}
	if !c.CrossoverType.Valid() {
		return fmt.Errorf("%w: unknown crossover type %d", ErrInvalidConfig, int(c.CrossoverType))
	}
	if !c.MutationType.Valid() {
		return fmt.Errorf("%w: unknown mutation type %d", ErrInvalidConfig, int(c.MutationType))
	}
	return nil
}

// LoadConfig reads a TOML file over DefaultConfig. Keys that do not map to
// a Config field are rejected.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	meta, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

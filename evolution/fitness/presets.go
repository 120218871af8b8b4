package fitness

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Larriche/galib/evolution"
)

// ProblemPresets maps problem names to their constructors. length sizes the
// chromosome; target is only used by problems matching a fixed sequence.
var ProblemPresets = map[string]func(length int, target []int) (evolution.Algorithm, error){
	"onemax": func(length int, _ []int) (evolution.Algorithm, error) {
		if length <= 0 {
			return nil, fmt.Errorf("onemax: length must be > 0 (got %d)", length)
		}
		return NewOneMax(length), nil
	},
	"target": func(length int, target []int) (evolution.Algorithm, error) {
		if len(target) == 0 {
			return nil, fmt.Errorf("target: empty target sequence")
		}
		if length > 0 && length != len(target) {
			return nil, fmt.Errorf("target: length %d does not match target of %d genes", length, len(target))
		}
		alphabet := 2
		for _, g := range target {
			if g < 0 {
				return nil, fmt.Errorf("target: negative gene %d", g)
			}
			if g+1 > alphabet {
				alphabet = g + 1
			}
		}
		return NewTarget(target, alphabet), nil
	},
}

// New builds the named problem.
func New(name string, length int, target []int) (evolution.Algorithm, error) {
	build, ok := ProblemPresets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown problem %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return build(length, target)
}

// Names lists the registered problems in sorted order.
func Names() []string {
	names := make([]string, 0, len(ProblemPresets))
	for name := range ProblemPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseGenes parses a gene string such as "1,0,1,1" or "1011".
func ParseGenes(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var parts []string
	if strings.Contains(s, ",") {
		parts = strings.Split(s, ",")
	} else {
		parts = strings.Split(s, "")
	}
	genes := make([]int, len(parts))
	for i, p := range parts {
		var g int
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%d", &g); err != nil {
			return nil, fmt.Errorf("gene %d (%q): %w", i, p, err)
		}
		genes[i] = g
	}
	return genes, nil
}

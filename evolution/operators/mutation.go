package operators

import "math/rand"

// BitFlip draws once per gene and inverts binary genes (0 and 1) whose draw
// falls below rate. Genes holding any other value are left alone. Returns
// the number of genes changed.
func BitFlip(genes []int, rate float64, rng *rand.Rand) int {
	changed := 0
	for j, g := range genes {
		if rng.Float64() >= rate {
			continue
		}
		switch g {
		case 0:
			genes[j] = 1
			changed++
		case 1:
			genes[j] = 0
			changed++
		}
	}
	return changed
}

// RandomReset draws once per gene and, below rate, copies the gene at the
// same index from donor. donor must be at least as long as genes.
func RandomReset(genes, donor []int, rate float64, rng *rand.Rand) int {
	changed := 0
	for j := range genes {
		if rng.Float64() < rate {
			genes[j] = donor[j]
			changed++
		}
	}
	return changed
}

// Swap draws once per gene and, below rate, exchanges it with a uniformly
// chosen position.
func Swap(genes []int, rate float64, rng *rand.Rand) int {
	if len(genes) < 2 {
		return 0
	}
	swapped := 0
	for j := range genes {
		if rng.Float64() < rate {
			k := rng.Intn(len(genes))
			genes[j], genes[k] = genes[k], genes[j]
			swapped++
		}
	}
	return swapped
}

// Scramble, with probability rate, shuffles a random inclusive range.
func Scramble(genes []int, rate float64, rng *rand.Rand) bool {
	if len(genes) < 2 || rng.Float64() >= rate {
		return false
	}
	lo, hi := randomRange(len(genes), rng)
	segment := genes[lo : hi+1]
	rng.Shuffle(len(segment), func(i, j int) {
		segment[i], segment[j] = segment[j], segment[i]
	})
	return true
}

// Inversion, with probability rate, reverses a random inclusive range.
func Inversion(genes []int, rate float64, rng *rand.Rand) bool {
	if len(genes) < 2 || rng.Float64() >= rate {
		return false
	}
	lo, hi := randomRange(len(genes), rng)
	for lo < hi {
		genes[lo], genes[hi] = genes[hi], genes[lo]
		lo++
		hi--
	}
	return true
}

// randomRange returns lo <= hi, both in [0, n).
func randomRange(n int, rng *rand.Rand) (int, int) {
	lo, hi := rng.Intn(n), rng.Intn(n)
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

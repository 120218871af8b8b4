// Package operators provides gene-level crossover and mutation kernels over
// integer chromosomes. Callers guarantee that parents share one length.
package operators

import "math/rand"

// SinglePoint draws a swap point uniformly in [0, len] and builds a child
// taking genes below the point from a and the rest from b.
func SinglePoint(a, b []int, rng *rand.Rand) ([]int, int) {
	point := rng.Intn(len(b) + 1)
	return SinglePointAt(a, b, point), point
}

// SinglePointAt builds the single-point child for a fixed swap point.
func SinglePointAt(a, b []int, point int) []int {
	child := make([]int, len(b))
	for j := range child {
		if j < point {
			child[j] = a[j]
		} else {
			child[j] = b[j]
		}
	}
	return child
}

// MultiPointBounds draws the two swap points for a chromosome of the given
// length: lo in [length/4, length/2] and hi in [length/2+1, length].
func MultiPointBounds(length int, rng *rand.Rand) (lo, hi int) {
	loMin, loMax := length/4, length/2
	lo = loMin + rng.Intn(loMax-loMin+1)
	hiMin := length/2 + 1
	if length < hiMin {
		return lo, hiMin
	}
	hi = hiMin + rng.Intn(length-hiMin+1)
	return lo, hi
}

// MultiPoint draws swap points with MultiPointBounds and builds the child.
func MultiPoint(a, b []int, rng *rand.Rand) ([]int, int, int) {
	lo, hi := MultiPointBounds(len(a), rng)
	return MultiPointAt(a, b, lo, hi), lo, hi
}

// MultiPointAt takes genes in [lo, hi] from b and every other gene from a.
func MultiPointAt(a, b []int, lo, hi int) []int {
	child := make([]int, len(a))
	for j := range child {
		if j < lo || j > hi {
			child[j] = a[j]
		} else {
			child[j] = b[j]
		}
	}
	return child
}

// Uniform takes each gene from a or b with equal probability.
func Uniform(a, b []int, rng *rand.Rand) []int {
	child := make([]int, len(b))
	for j := range child {
		if rng.Float64() < 0.5 {
			child[j] = a[j]
		} else {
			child[j] = b[j]
		}
	}
	return child
}

package gen

import "math"

// uniform draws from [a, b).
func (g *Generator) uniform(a, b float64) float64 {
	return a + (b-a)*g.rng.Float64()
}

// normal draws from N(mean, sd^2).
func (g *Generator) normal(mean, sd float64) float64 {
	return mean + sd*g.rng.NormFloat64()
}

// poisson draws a Poisson count via Knuth's method. Adequate for the
// per-day lambdas this generator uses.
func (g *Generator) poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= g.rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

// weightedIndex picks an index proportionally to the given weights. Weights
// must be non-negative with a positive sum.
func (g *Generator) weightedIndex(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}

// sample picks k distinct indices from [0, n) via a partial Fisher-Yates
// shuffle. k is capped at n.
func (g *Generator) sample(n, k int) []int {
	if k > n {
		k = n
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + g.rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// clampInt rounds v to the nearest integer and clamps it to [lo, hi].
func clampInt(v float64, lo, hi int) int {
	n := int(math.Round(v))
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Opt-in burst variance. The canonical engine is fully deterministic; a
// variance strategy perturbs process specs once at initialization, from an
// explicit seed, so a fixed seed still yields bit-identical runs.

package sim

import (
	"hash/fnv"
	"math"
	"math/rand"
)

// VarianceStrategy perturbs a process spec at engine initialization.
// Implementations must be pure functions of their seed and input order.
type VarianceStrategy interface {
	Perturb(spec ProcessSpec) ProcessSpec
}

// BurstVariance scales each burst time by a uniform factor in
// [1-Spread, 1+Spread]. Never default-on: callers opt in via WithVariance.
type BurstVariance struct {
	rng    *rand.Rand
	spread float64
}

// NewBurstVariance builds a strategy from an explicit seed. The seed is
// mixed with a subsystem tag so the same master seed can drive independent
// strategies without correlation.
func NewBurstVariance(seed int64, spread float64) *BurstVariance {
	if spread < 0 {
		spread = 0
	}
	derived := seed ^ fnv1a64("burst-variance")
	return &BurstVariance{
		rng:    rand.New(rand.NewSource(derived)),
		spread: spread,
	}
}

// Perturb returns a copy of the spec with a scaled burst time. Arrival,
// priority, and I/O demand are untouched; burst never goes negative.
func (v *BurstVariance) Perturb(spec ProcessSpec) ProcessSpec {
	if v.spread == 0 || spec.BurstTime == 0 {
		return spec
	}
	factor := 1 + v.spread*(2*v.rng.Float64()-1)
	burst := int64(math.Round(float64(spec.BurstTime) * factor))
	if burst < 0 {
		burst = 0
	}
	spec.BurstTime = burst
	return spec
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

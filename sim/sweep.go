package sim

import "fmt"

// CacheComparison is one row of the fixed-size comparison: the same
// matmul estimated with and without cache reuse, plus the derived ratios
// the memory-wall demonstration reports.
type CacheComparison struct {
	N            int
	WithReuse    SimulationResult
	NoReuse      SimulationResult
	ReuseRatio   float64 // memory/compute with reuse on
	NoReuseRatio float64 // memory/compute with reuse off
	CacheBenefit float64 // no-reuse memory energy / with-reuse memory energy
}

// ScalingPoint is one row of the size sweep, estimated with cache reuse
// enabled.
type ScalingPoint struct {
	N      int
	Result SimulationResult
	Total  float64 // compute + memory, joules
	Ratio  float64 // memory/compute
}

// ProfileComparison is one row of the architecture comparison.
type ProfileComparison struct {
	Profile      ArchitectureProfile
	MemoryEnergy float64 // joules, for the fixed matmul size
	Efficiency   float64 // baseline dram energy / this profile's dram energy
}

// CompareCacheReuse runs the estimator twice per size, with and without
// cache reuse, and derives the ratios that make the memory wall visible.
func CompareCacheReuse(consts EnergyConstants, sizes []int) ([]CacheComparison, error) {
	rows := make([]CacheComparison, 0, len(sizes))
	for _, n := range sizes {
		withReuse, err := EstimateReuse(consts, n, true)
		if err != nil {
			return nil, err
		}
		noReuse, err := EstimateReuse(consts, n, false)
		if err != nil {
			return nil, err
		}
		rows = append(rows, CacheComparison{
			N:            n,
			WithReuse:    withReuse,
			NoReuse:      noReuse,
			ReuseRatio:   withReuse.MemoryComputeRatio(),
			NoReuseRatio: noReuse.MemoryComputeRatio(),
			CacheBenefit: noReuse.MemoryEnergy / withReuse.MemoryEnergy,
		})
	}
	return rows, nil
}

// SweepSizes estimates an ordered sequence of sizes at a fixed hit ratio.
// Compute energy grows with the cube of N and memory energy with the
// square, so the ratio column shrinks as sizes grow.
func SweepSizes(consts EnergyConstants, hitRatio float64, sizes []int) ([]ScalingPoint, error) {
	points := make([]ScalingPoint, 0, len(sizes))
	for _, n := range sizes {
		result, err := Estimate(consts, SimulationInput{N: n, HitRatio: hitRatio})
		if err != nil {
			return nil, err
		}
		points = append(points, ScalingPoint{
			N:      n,
			Result: result,
			Total:  result.Total(),
			Ratio:  result.MemoryComputeRatio(),
		})
	}
	return points, nil
}

// CompareArchitectures evaluates the memory energy of one fixed matmul
// size under each profile. The first profile is the efficiency baseline.
func CompareArchitectures(n int, profiles []ArchitectureProfile) ([]ProfileComparison, error) {
	if len(profiles) == 0 {
		return nil, fmt.Errorf("architecture comparison needs at least one profile")
	}
	baseline := profiles[0]
	if err := baseline.Validate(); err != nil {
		return nil, err
	}
	rows := make([]ProfileComparison, 0, len(profiles))
	for _, p := range profiles {
		memory, err := p.MemoryEnergy(n)
		if err != nil {
			return nil, err
		}
		rows = append(rows, ProfileComparison{
			Profile:      p,
			MemoryEnergy: memory,
			Efficiency:   baseline.DRAMEnergy / p.DRAMEnergy,
		})
	}
	return rows, nil
}

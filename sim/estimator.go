package sim

import (
	"fmt"
	"math"
)

// Estimate returns the compute and memory energy for one NxN matrix
// multiplication under the given constants and cache assumption.
//
// Compute charges one MAC per element pair of a straightforward
// (non-blocked) matmul: N^3 MACs at ComputeEnergy each. Memory charges
// 2*N^2 operand reads regardless of the hit ratio; the ratio only decides
// which tier serves a read, never the total traffic. Tiling or blocking
// that would shrink the traffic itself is outside this model.
//
// Estimate is pure: deterministic, no side effects, no internal state.
func Estimate(consts EnergyConstants, in SimulationInput) (SimulationResult, error) {
	if err := consts.Validate(); err != nil {
		return SimulationResult{}, err
	}
	if err := in.Validate(); err != nil {
		return SimulationResult{}, err
	}

	n := float64(in.N)
	macs := n * n * n
	totalReads := TotalReads(in.N)

	sramReads := in.HitRatio * totalReads
	// Subtracting keeps sramReads+dramReads == totalReads exactly.
	dramReads := totalReads - sramReads

	return SimulationResult{
		ComputeEnergy: macs * consts.ComputeEnergy,
		MemoryEnergy:  sramReads*consts.SRAMEnergy + dramReads*consts.DRAMEnergy,
	}, nil
}

// EstimateReuse is the boolean convenience form: cache reuse on fixes the
// hit ratio at DefaultHitRatio (0.9), off sends every read to DRAM.
func EstimateReuse(consts EnergyConstants, n int, cacheReuse bool) (SimulationResult, error) {
	ratio := 0.0
	if cacheReuse {
		ratio = DefaultHitRatio
	}
	return Estimate(consts, SimulationInput{N: n, HitRatio: ratio})
}

// TotalReads returns the operand read count the model charges for an NxN
// matmul: two reads per output-independent access, scaling with matrix
// area rather than volume.
func TotalReads(n int) float64 {
	return 2 * float64(n) * float64(n)
}

// Validate rejects constants that would make an energy estimate
// meaningless.
func (c EnergyConstants) Validate() error {
	if !(c.DRAMEnergy > 0) || math.IsInf(c.DRAMEnergy, 0) {
		return fmt.Errorf("dram energy must be positive and finite, got %g", c.DRAMEnergy)
	}
	if !(c.SRAMEnergy > 0) || math.IsInf(c.SRAMEnergy, 0) {
		return fmt.Errorf("sram energy must be positive and finite, got %g", c.SRAMEnergy)
	}
	if !(c.ComputeEnergy > 0) || math.IsInf(c.ComputeEnergy, 0) {
		return fmt.Errorf("compute energy must be positive and finite, got %g", c.ComputeEnergy)
	}
	return nil
}

// Validate rejects inputs outside the formula's domain so callers get an
// error instead of a negative or NaN energy.
func (in SimulationInput) Validate() error {
	if in.N <= 0 {
		return fmt.Errorf("matrix dimension must be positive, got %d", in.N)
	}
	if math.IsNaN(in.HitRatio) || in.HitRatio < 0 || in.HitRatio > 1 {
		return fmt.Errorf("hit ratio must be in [0,1], got %g", in.HitRatio)
	}
	return nil
}

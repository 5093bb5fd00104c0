package sim

// EnergyConstants groups the per-operation energy costs the estimator
// charges. All values are joules per operation. An explicit value is
// passed into the estimator on every call; there is no package-level
// default state, so sweeps with different constants cannot contaminate
// each other.
type EnergyConstants struct {
	DRAMEnergy    float64 // joules per DRAM access (must be > 0)
	SRAMEnergy    float64 // joules per SRAM access (must be > 0)
	ComputeEnergy float64 // joules per multiply-accumulate (must be > 0)
}

// SimulationInput groups the problem parameters for one estimate.
type SimulationInput struct {
	N        int     // matrix dimension for an NxN matmul (must be > 0)
	HitRatio float64 // fraction of reads served by SRAM, in [0,1]
}

// SimulationResult holds the two energy estimates for one input, both in
// joules. It is constructed, consumed, and discarded within a single
// analysis step; nothing mutates it after Estimate returns.
type SimulationResult struct {
	ComputeEnergy float64 // N^3 MACs x per-MAC energy
	MemoryEnergy  float64 // 2*N^2 reads split across the SRAM/DRAM tiers
}

// NewEnergyConstants builds an EnergyConstants from raw joule values.
func NewEnergyConstants(dramEnergy, sramEnergy, computeEnergy float64) EnergyConstants {
	return EnergyConstants{
		DRAMEnergy:    dramEnergy,
		SRAMEnergy:    sramEnergy,
		ComputeEnergy: computeEnergy,
	}
}

// NewSimulationInput builds a SimulationInput for an NxN matmul.
func NewSimulationInput(n int, hitRatio float64) SimulationInput {
	return SimulationInput{N: n, HitRatio: hitRatio}
}

// DefaultConstants are the calibration values the demonstrations run with:
// 100 pJ per DRAM access, 10 pJ per SRAM access, 5 pJ per MAC.
var DefaultConstants = EnergyConstants{
	DRAMEnergy:    100e-12,
	SRAMEnergy:    10e-12,
	ComputeEnergy: 5e-12,
}

// DefaultHitRatio is the SRAM hit ratio assumed when cache reuse is on.
const DefaultHitRatio = 0.9

// DefaultSweepSizes are the matrix sizes the scaling demonstration walks.
var DefaultSweepSizes = []int{64, 128, 256, 512, 1024}

// Total returns compute plus memory energy in joules.
func (r SimulationResult) Total() float64 {
	return r.ComputeEnergy + r.MemoryEnergy
}

// MemoryComputeRatio returns memory energy as a multiple of compute energy.
func (r SimulationResult) MemoryComputeRatio() float64 {
	return r.MemoryEnergy / r.ComputeEnergy
}

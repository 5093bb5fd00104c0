// Package sim estimates the energy split between compute and data
// movement for NxN matrix-multiplication workloads, the standard proxy
// for AI inference energy behavior.
//
// The model is a closed-form formula, not a cache simulation: compute
// charges N^3 multiply-accumulates, memory charges 2*N^2 operand reads
// split between SRAM and DRAM by an assumed hit ratio. Reuse changes
// which tier serves a read, never the read count.
//
// # Reading Guide
//
//   - estimator.go: the formula (Estimate) and its input validation
//   - sweep.go: the three analyses built on it (cache comparison, size
//     sweep, architecture comparison), pure and presentation-free
//   - report.go / chart.go: tables and PNG figures over sweep results
//   - profile.go: named architecture calibrations
//
// All entry points take explicit EnergyConstants; the package keeps no
// state between calls.
package sim

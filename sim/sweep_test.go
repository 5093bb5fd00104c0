package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareCacheReuse_BenefitFactor(t *testing.T) {
	rows, err := CompareCacheReuse(DefaultConstants, []int{256})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, 256, row.N)

	// With-reuse and no-reuse share the compute term.
	assert.Equal(t, row.WithReuse.ComputeEnergy, row.NoReuse.ComputeEnergy)

	// Shifting 90% of reads into SRAM cuts memory energy ~5.26x under
	// the default 100pJ/10pJ tier costs.
	assert.InDelta(t, 5.263, row.CacheBenefit, 1e-3)
	assert.InDelta(t, 0.0296875, row.ReuseRatio, 1e-6)
	assert.InDelta(t, 0.15625, row.NoReuseRatio, 1e-6)
}

func TestCompareCacheReuse_MultipleSizes(t *testing.T) {
	sizes := []int{128, 256, 512}
	rows, err := CompareCacheReuse(DefaultConstants, sizes)
	assert.NoError(t, err)
	assert.Len(t, rows, len(sizes))

	// The benefit factor depends only on the tier costs and hit ratio,
	// never on N: the same 2*N^2 reads just move between tiers.
	for i := 1; i < len(rows); i++ {
		assert.InDelta(t, rows[0].CacheBenefit, rows[i].CacheBenefit, 1e-9)
	}
}

func TestCompareCacheReuse_PropagatesValidationErrors(t *testing.T) {
	_, err := CompareCacheReuse(DefaultConstants, []int{256, -1})
	assert.Error(t, err)
}

func TestSweepSizes_CubeVsSquareGrowth(t *testing.T) {
	points, err := SweepSizes(DefaultConstants, DefaultHitRatio, DefaultSweepSizes)
	assert.NoError(t, err)
	assert.Len(t, points, len(DefaultSweepSizes))

	for i := 1; i < len(points); i++ {
		// Sizes double at each step, so compute grows 8x and memory 4x.
		assert.InEpsilon(t, 8.0, points[i].Result.ComputeEnergy/points[i-1].Result.ComputeEnergy, 1e-9)
		assert.InEpsilon(t, 4.0, points[i].Result.MemoryEnergy/points[i-1].Result.MemoryEnergy, 1e-9)

		// So the memory/compute ratio halves.
		assert.Less(t, points[i].Ratio, points[i-1].Ratio)
	}

	// Total is conserved per point.
	for _, p := range points {
		assert.InEpsilon(t, p.Result.ComputeEnergy+p.Result.MemoryEnergy, p.Total, 1e-12)
	}
}

func TestSweepSizes_PropagatesValidationErrors(t *testing.T) {
	_, err := SweepSizes(DefaultConstants, 1.5, []int{64})
	assert.Error(t, err)
}

func TestCompareArchitectures_EfficiencyAgainstBaseline(t *testing.T) {
	rows, err := CompareArchitectures(256, DefaultProfiles())
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	// Baseline compares against itself at exactly 1.0.
	assert.Equal(t, 1.0, rows[0].Efficiency)
	// 100pJ baseline over 80pJ and 60pJ DRAM accesses.
	assert.InEpsilon(t, 100.0/80.0, rows[1].Efficiency, 1e-9)
	assert.InEpsilon(t, 100.0/60.0, rows[2].Efficiency, 1e-9)

	// Better hit ratios and cheaper tiers mean strictly less memory energy.
	assert.Greater(t, rows[0].MemoryEnergy, rows[1].MemoryEnergy)
	assert.Greater(t, rows[1].MemoryEnergy, rows[2].MemoryEnergy)
}

func TestCompareArchitectures_RequiresProfiles(t *testing.T) {
	_, err := CompareArchitectures(256, nil)
	assert.Error(t, err)
}

func TestCompareArchitectures_PropagatesProfileErrors(t *testing.T) {
	bad := []ArchitectureProfile{
		{Name: "broken", SRAMRatio: 2.0, DRAMEnergy: 1e-12, SRAMEnergy: 1e-12},
	}
	_, err := CompareArchitectures(256, bad)
	assert.Error(t, err)
}

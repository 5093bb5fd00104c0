package sim

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportMemoryWall_Content(t *testing.T) {
	rows, err := CompareCacheReuse(DefaultConstants, []int{256})
	assert.NoError(t, err)

	var buf bytes.Buffer
	ReportMemoryWall(&buf, rows)
	out := buf.String()

	assert.Contains(t, out, "=== Memory Wall Demonstration ===")
	assert.Contains(t, out, "Matrix size: 256x256")
	// 256^3 MACs at 5pJ is 83.89 uJ.
	assert.Contains(t, out, "83.89 uJ")
	// No-reuse memory energy: 2*256^2 reads at 100pJ is 13.11 uJ.
	assert.Contains(t, out, "13.11 uJ")
	assert.Contains(t, out, "5.3x energy reduction")
}

func TestReportScaling_OneRowPerSize(t *testing.T) {
	points, err := SweepSizes(DefaultConstants, DefaultHitRatio, DefaultSweepSizes)
	assert.NoError(t, err)

	var buf bytes.Buffer
	ReportScaling(&buf, points)
	out := buf.String()

	assert.Contains(t, out, "=== Scaling Behavior Analysis ===")
	assert.Contains(t, out, "Memory/Compute")
	for _, n := range DefaultSweepSizes {
		assert.Contains(t, out, fmt.Sprintf("%-6d |", n), "missing row for N=%d", n)
	}
}

func TestReportArchitectures_Content(t *testing.T) {
	rows, err := CompareArchitectures(256, DefaultProfiles())
	assert.NoError(t, err)

	var buf bytes.Buffer
	ReportArchitectures(&buf, 256, rows)
	out := buf.String()

	assert.Contains(t, out, "=== Architecture Comparison (256x256 matmul) ===")
	assert.Contains(t, out, "CPU-like")
	assert.Contains(t, out, "GPU-like")
	assert.Contains(t, out, "AI Accelerator")
	// 100pJ baseline over 60pJ accelerator DRAM.
	assert.Contains(t, out, "1.7x")
}

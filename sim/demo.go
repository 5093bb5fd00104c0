package sim

import "io"

// The demo functions are the programmatic equivalents of the CLI
// subcommands: compute one analysis, print its table to w, and render
// its chart when chartPath is non-empty.

// RunMemoryWallDemo runs the fixed-size cache comparison at size n.
func RunMemoryWallDemo(w io.Writer, consts EnergyConstants, n int, chartPath string) error {
	rows, err := CompareCacheReuse(consts, []int{n})
	if err != nil {
		return err
	}
	ReportMemoryWall(w, rows)
	if chartPath == "" {
		return nil
	}
	return SaveEnergyBreakdownChart(rows[0], chartPath)
}

// RunScalingDemo runs the size sweep at a fixed hit ratio.
func RunScalingDemo(w io.Writer, consts EnergyConstants, hitRatio float64, sizes []int, chartPath string) error {
	points, err := SweepSizes(consts, hitRatio, sizes)
	if err != nil {
		return err
	}
	ReportScaling(w, points)
	if chartPath == "" {
		return nil
	}
	return SaveScalingChart(points, chartPath)
}

// RunArchitectureDemo compares memory energy across profiles at size n.
// The first profile is the efficiency baseline.
func RunArchitectureDemo(w io.Writer, n int, profiles []ArchitectureProfile, chartPath string) error {
	rows, err := CompareArchitectures(n, profiles)
	if err != nil {
		return err
	}
	ReportArchitectures(w, n, rows)
	if chartPath == "" {
		return nil
	}
	return SaveArchitectureChart(n, rows, chartPath)
}

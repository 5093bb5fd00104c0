package sim

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart rendering for the demonstrations. Each function renders one
// figure to a PNG file and surfaces rendering errors unchanged; the
// computation layer never depends on any of this.

// SaveEnergyBreakdownChart renders the fixed-size comparison as a bar
// chart of compute, memory-with-reuse, and memory-no-reuse energy.
func SaveEnergyBreakdownChart(row CacheComparison, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Compute vs Memory Energy (%dx%d matmul)", row.N, row.N)
	p.Y.Label.Text = "Energy (uJ)"

	values := plotter.Values{
		row.WithReuse.ComputeEnergy * microJoule,
		row.WithReuse.MemoryEnergy * microJoule,
		row.NoReuse.MemoryEnergy * microJoule,
	}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("building energy breakdown bars: %w", err)
	}
	bars.Color = plotutil.Color(0)

	p.Add(plotter.NewGrid(), bars)
	p.NominalX("Compute", "Memory (with reuse)", "Memory (no reuse)")

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// SaveScalingChart renders the size sweep as a log-log line chart of
// compute and memory energy. Log axes make the cube-vs-square slopes
// legible; a bar's base sits at zero, which a log axis cannot represent,
// so lines carry this figure.
func SaveScalingChart(points []ScalingPoint, path string) error {
	p := plot.New()
	p.Title.Text = "Energy Consumption vs Matrix Size"
	p.X.Label.Text = "Matrix size N"
	p.Y.Label.Text = "Energy (uJ)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	compute := make(plotter.XYs, len(points))
	memory := make(plotter.XYs, len(points))
	for i, pt := range points {
		compute[i].X = float64(pt.N)
		compute[i].Y = pt.Result.ComputeEnergy * microJoule
		memory[i].X = float64(pt.N)
		memory[i].Y = pt.Result.MemoryEnergy * microJoule
	}

	if err := plotutil.AddLinePoints(p,
		"Compute", compute,
		"Memory (with reuse)", memory,
	); err != nil {
		return fmt.Errorf("building scaling lines: %w", err)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	return p.Save(12*vg.Inch, 8*vg.Inch, path)
}

// SaveArchitectureChart renders the per-profile memory energies as a bar
// chart.
func SaveArchitectureChart(n int, rows []ProfileComparison, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Memory Energy by Architecture (%dx%d matmul)", n, n)
	p.Y.Label.Text = "Memory energy (uJ)"

	values := make(plotter.Values, len(rows))
	names := make([]string, len(rows))
	for i, row := range rows {
		values[i] = row.MemoryEnergy * microJoule
		names[i] = row.Profile.Name
	}
	bars, err := plotter.NewBarChart(values, vg.Points(40))
	if err != nil {
		return fmt.Errorf("building architecture bars: %w", err)
	}
	bars.Color = plotutil.Color(2)

	p.Add(plotter.NewGrid(), bars)
	p.NominalX(names...)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

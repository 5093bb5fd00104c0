package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/memwall-sim/memwall-sim/sim"
)

var (
	// CLI flags shared across the demonstration subcommands
	logLevel        string  // Log verbosity level
	matrixSize      int     // Matrix dimension for fixed-size analyses
	sweepSizes      []int   // Matrix dimensions for the scaling sweep
	dramEnergyPJ    float64 // Energy per DRAM access in picojoules
	sramEnergyPJ    float64 // Energy per SRAM access in picojoules
	computeEnergyPJ float64 // Energy per multiply-accumulate in picojoules
	hitRatio        float64 // SRAM hit ratio when cache reuse is enabled
	chartDir        string  // Directory for rendered PNG charts ("" disables charts)
	profilesPath    string  // Optional YAML file of architecture profiles
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "memwall-sim",
	Short: "Analytical model of compute vs memory-movement energy in matmul workloads",
}

// runCmd executes the full demonstration sequence: memory wall,
// scaling behavior, architecture comparison.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full demonstration sequence",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if err := runMemoryWall(); err != nil {
			logrus.Fatalf("memory wall demonstration failed: %v", err)
		}
		if err := runScaling(); err != nil {
			logrus.Fatalf("scaling analysis failed: %v", err)
		}
		if err := runArchComparison(); err != nil {
			logrus.Fatalf("architecture comparison failed: %v", err)
		}
		logrus.Info("Demonstration complete.")
	},
}

var memoryWallCmd = &cobra.Command{
	Use:   "memory-wall",
	Short: "Compare compute vs memory energy with and without cache reuse",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if err := runMemoryWall(); err != nil {
			logrus.Fatalf("memory wall demonstration failed: %v", err)
		}
	},
}

var scalingCmd = &cobra.Command{
	Use:   "scaling",
	Short: "Sweep matrix sizes to show cube-vs-square energy scaling",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if err := runScaling(); err != nil {
			logrus.Fatalf("scaling analysis failed: %v", err)
		}
	},
}

var archCmd = &cobra.Command{
	Use:   "arch",
	Short: "Compare memory energy across architecture profiles",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()
		if err := runArchComparison(); err != nil {
			logrus.Fatalf("architecture comparison failed: %v", err)
		}
	},
}

// setupLogging parses the --log flag into a logrus level.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// constantsFromFlags converts the pJ-denominated flags to joules.
func constantsFromFlags() sim.EnergyConstants {
	return sim.NewEnergyConstants(
		dramEnergyPJ*picoJoule,
		sramEnergyPJ*picoJoule,
		computeEnergyPJ*picoJoule,
	)
}

// chartPath joins the chart directory with a figure name, or returns ""
// when chart output is disabled.
func chartPath(name string) string {
	if chartDir == "" {
		return ""
	}
	return filepath.Join(chartDir, name)
}

func runMemoryWall() error {
	logrus.Infof("Memory wall comparison at N=%d (dram=%.0fpJ sram=%.0fpJ mac=%.0fpJ)",
		matrixSize, dramEnergyPJ, sramEnergyPJ, computeEnergyPJ)
	path := chartPath(fmt.Sprintf("energy_breakdown_%d.png", matrixSize))
	if err := sim.RunMemoryWallDemo(os.Stdout, constantsFromFlags(), matrixSize, path); err != nil {
		return err
	}
	if path != "" {
		logrus.Infof("Wrote %s", path)
	}
	return nil
}

func runScaling() error {
	logrus.Infof("Scaling sweep over sizes %v at hit ratio %.2f", sweepSizes, hitRatio)
	path := chartPath("energy_scaling.png")
	if err := sim.RunScalingDemo(os.Stdout, constantsFromFlags(), hitRatio, sweepSizes, path); err != nil {
		return err
	}
	if path != "" {
		logrus.Infof("Wrote %s", path)
	}
	return nil
}

func runArchComparison() error {
	profiles, err := resolveProfiles(profilesPath)
	if err != nil {
		return err
	}
	logrus.Infof("Architecture comparison at N=%d over %d profiles", matrixSize, len(profiles))
	path := chartPath(fmt.Sprintf("memory_by_architecture_%d.png", matrixSize))
	if err := sim.RunArchitectureDemo(os.Stdout, matrixSize, profiles, path); err != nil {
		return err
	}
	if path != "" {
		logrus.Infof("Wrote %s", path)
	}
	return nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, memoryWallCmd, scalingCmd, archCmd} {
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().IntVar(&matrixSize, "size", 256, "Matrix dimension N for fixed-size analyses")
		c.Flags().IntSliceVar(&sweepSizes, "sizes", append([]int(nil), sim.DefaultSweepSizes...), "Comma-separated matrix dimensions for the scaling sweep")
		c.Flags().Float64Var(&dramEnergyPJ, "dram-energy-pj", 100, "Energy per DRAM access (picojoules)")
		c.Flags().Float64Var(&sramEnergyPJ, "sram-energy-pj", 10, "Energy per SRAM access (picojoules)")
		c.Flags().Float64Var(&computeEnergyPJ, "compute-energy-pj", 5, "Energy per multiply-accumulate (picojoules)")
		c.Flags().Float64Var(&hitRatio, "hit-ratio", sim.DefaultHitRatio, "SRAM hit ratio with cache reuse enabled")
		c.Flags().StringVar(&chartDir, "chart-dir", "", "Directory to write PNG charts into (empty disables charts)")
		c.Flags().StringVar(&profilesPath, "profiles", "", "YAML file of architecture profiles (empty uses built-ins)")
		rootCmd.AddCommand(c)
	}
}

package sim

import "fmt"

// ArchitectureProfile bundles the memory-system assumptions of one
// hardware class: how often reads hit SRAM and what each tier charges
// per access.
type ArchitectureProfile struct {
	Name       string
	SRAMRatio  float64 // fraction of reads served by SRAM, in [0,1]
	DRAMEnergy float64 // joules per DRAM access
	SRAMEnergy float64 // joules per SRAM access
}

// ProfileList holds the built-in architecture calibrations used by the
// comparison demonstration.
var ProfileList = map[string]ArchitectureProfile{
	"CPU-like": {
		Name:       "CPU-like",
		SRAMRatio:  0.5,
		DRAMEnergy: 100e-12,
		SRAMEnergy: 10e-12,
	},
	"GPU-like": {
		Name:       "GPU-like",
		SRAMRatio:  0.8,
		DRAMEnergy: 80e-12,
		SRAMEnergy: 8e-12,
	},
	"AI Accelerator": {
		Name:       "AI Accelerator",
		SRAMRatio:  0.95,
		DRAMEnergy: 60e-12,
		SRAMEnergy: 5e-12,
	},
}

// DefaultProfileOrder lists the built-in profiles in display order.
// The first entry is the efficiency baseline.
var DefaultProfileOrder = []string{"CPU-like", "GPU-like", "AI Accelerator"}

// DefaultProfiles returns the built-in profiles in display order.
func DefaultProfiles() []ArchitectureProfile {
	profiles := make([]ArchitectureProfile, 0, len(DefaultProfileOrder))
	for _, name := range DefaultProfileOrder {
		profiles = append(profiles, ProfileList[name])
	}
	return profiles
}

// Validate rejects profiles whose parameters fall outside the estimator's
// domain.
func (p ArchitectureProfile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("architecture profile must be named")
	}
	if p.SRAMRatio < 0 || p.SRAMRatio > 1 {
		return fmt.Errorf("profile %q: sram hit ratio must be in [0,1], got %g", p.Name, p.SRAMRatio)
	}
	if p.DRAMEnergy <= 0 {
		return fmt.Errorf("profile %q: dram energy must be positive, got %g", p.Name, p.DRAMEnergy)
	}
	if p.SRAMEnergy <= 0 {
		return fmt.Errorf("profile %q: sram energy must be positive, got %g", p.Name, p.SRAMEnergy)
	}
	return nil
}

// MemoryEnergy returns the memory energy in joules for an NxN matmul
// under this profile's hit ratio and tier costs. Same read model as
// Estimate: 2*N^2 reads, split by ratio, traffic unchanged.
func (p ArchitectureProfile) MemoryEnergy(n int) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("matrix dimension must be positive, got %d", n)
	}
	totalReads := TotalReads(n)
	sramReads := p.SRAMRatio * totalReads
	dramReads := totalReads - sramReads
	return sramReads*p.SRAMEnergy + dramReads*p.DRAMEnergy, nil
}

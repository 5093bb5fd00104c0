package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultProfiles_OrderAndValidity(t *testing.T) {
	profiles := DefaultProfiles()
	assert.Len(t, profiles, 3)
	assert.Equal(t, "CPU-like", profiles[0].Name)
	assert.Equal(t, "GPU-like", profiles[1].Name)
	assert.Equal(t, "AI Accelerator", profiles[2].Name)
	for _, p := range profiles {
		assert.NoError(t, p.Validate(), p.Name)
	}
}

func TestProfileMemoryEnergy_CPULike(t *testing.T) {
	// 50% of 2*256^2 reads from each tier under CPU-like costs.
	p := ProfileList["CPU-like"]
	got, err := p.MemoryEnergy(256)
	assert.NoError(t, err)

	totalReads := TotalReads(256)
	want := 0.5*totalReads*10e-12 + 0.5*totalReads*100e-12
	assert.InEpsilon(t, want, got, 1e-9)
}

func TestProfileMemoryEnergy_RejectsBadParameters(t *testing.T) {
	cases := []struct {
		name    string
		profile ArchitectureProfile
		n       int
	}{
		{"unnamed", ArchitectureProfile{SRAMRatio: 0.5, DRAMEnergy: 1e-12, SRAMEnergy: 1e-12}, 256},
		{"ratio out of range", ArchitectureProfile{Name: "x", SRAMRatio: 1.2, DRAMEnergy: 1e-12, SRAMEnergy: 1e-12}, 256},
		{"zero dram energy", ArchitectureProfile{Name: "x", SRAMRatio: 0.5, SRAMEnergy: 1e-12}, 256},
		{"zero sram energy", ArchitectureProfile{Name: "x", SRAMRatio: 0.5, DRAMEnergy: 1e-12}, 256},
		{"non-positive size", ProfileList["GPU-like"], 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.profile.MemoryEnergy(tc.n)
			assert.Error(t, err)
		})
	}
}

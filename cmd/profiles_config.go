package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/memwall-sim/memwall-sim/sim"
)

const picoJoule = 1e-12

// Define structs for the architecture-profile YAML
type ProfilesConfig struct {
	Profiles []ProfileEntry `yaml:"profiles"`
	Version  string         `yaml:"version"`
}

type ProfileEntry struct {
	Name         string  `yaml:"name"`
	SRAMHitRatio float64 `yaml:"sram_hit_ratio"`
	DRAMEnergyPJ float64 `yaml:"dram_energy_pj"`
	SRAMEnergyPJ float64 `yaml:"sram_energy_pj"`
}

// LoadProfiles reads architecture profiles from a YAML file. Energies in
// the file are picojoules; the returned profiles carry joules.
func LoadProfiles(path string) ([]sim.ArchitectureProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles file: %w", err)
	}

	var cfg ProfilesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing profiles file: %w", err)
	}
	if len(cfg.Profiles) == 0 {
		return nil, fmt.Errorf("profiles file %s defines no profiles", path)
	}

	profiles := make([]sim.ArchitectureProfile, 0, len(cfg.Profiles))
	for _, entry := range cfg.Profiles {
		p := sim.ArchitectureProfile{
			Name:       entry.Name,
			SRAMRatio:  entry.SRAMHitRatio,
			DRAMEnergy: entry.DRAMEnergyPJ * picoJoule,
			SRAMEnergy: entry.SRAMEnergyPJ * picoJoule,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profiles file %s: %w", path, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// resolveProfiles returns the profiles from the given file, or the
// built-in set when no file is named.
func resolveProfiles(path string) ([]sim.ArchitectureProfile, error) {
	if path == "" {
		return sim.DefaultProfiles(), nil
	}
	return LoadProfiles(path)
}

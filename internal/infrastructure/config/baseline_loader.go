// Package config loads the baseline defaults file. The baseline is the
// lowest-precedence configuration source: the session record and the
// command-line overlay both override it.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/spf13/viper"

	"github.com/gridctl-dev/gridctl/internal/config"
	"github.com/gridctl-dev/gridctl/internal/domain/values"
)

// supportedVersions is the semver constraint the baseline file's version
// field must satisfy.
const supportedVersions = "^1"

// envPrefix namespaces the environment variables that override baseline
// file entries, e.g. GRIDCTL_MASTER_MEMORY.
const envPrefix = "GRIDCTL"

// BaselineFile is the on-disk shape of the baseline defaults file.
type BaselineFile struct {
	Version string `yaml:"version"`

	Master struct {
		Memory string `yaml:"memory"`
	} `yaml:"master"`

	TaskManager struct {
		Memory string `yaml:"memory"`
		Slots  int    `yaml:"slots"`
	} `yaml:"taskmanager"`

	Session struct {
		PropertiesDir string `yaml:"properties-dir"`
	} `yaml:"session"`
}

// LoadBaseline reads the baseline defaults file at path and returns it
// as a Configuration. A missing file is not an error: resolution then
// starts from the compiled-in option defaults. Environment variables
// with the GRIDCTL prefix override file entries.
func LoadBaseline(path string) (*config.Configuration, error) {
	var file BaselineFile

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Fall through with an empty file.
	case err != nil:
		return nil, fmt.Errorf("failed to read baseline config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse baseline config %s: %w", path, err)
		}
		if err := checkVersion(file.Version); err != nil {
			return nil, fmt.Errorf("baseline config %s: %w", path, err)
		}
	}

	applyEnvOverrides(&file)

	return buildConfiguration(&file)
}

// checkVersion validates the baseline file format version against the
// supported constraint. An empty version is accepted.
func checkVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("invalid version %q: %w", version, err)
	}

	constraint, err := semver.NewConstraint(supportedVersions)
	if err != nil {
		return fmt.Errorf("internal error: bad version constraint: %w", err)
	}

	if !constraint.Check(v) {
		return fmt.Errorf("unsupported version %q (supported: %s)", version, supportedVersions)
	}

	return nil
}

// applyEnvOverrides lets GRIDCTL_* environment variables override file
// entries, mirroring the baseline file structure.
func applyEnvOverrides(file *BaselineFile) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if mem := v.GetString("master.memory"); mem != "" {
		file.Master.Memory = mem
	}
	if mem := v.GetString("taskmanager.memory"); mem != "" {
		file.TaskManager.Memory = mem
	}
	if slots := v.GetInt("taskmanager.slots"); slots > 0 {
		file.TaskManager.Slots = slots
	}
	if dir := v.GetString("session.properties_dir"); dir != "" {
		file.Session.PropertiesDir = dir
	}
}

// buildConfiguration converts the parsed file into the typed key space.
// Only entries the file (or environment) actually sets are written, so
// absent entries keep falling back to the option defaults.
func buildConfiguration(file *BaselineFile) (*config.Configuration, error) {
	conf := config.New()

	if file.Master.Memory != "" {
		mem, err := values.ParseMemorySize(file.Master.Memory)
		if err != nil {
			return nil, fmt.Errorf("baseline master.memory: %w", err)
		}
		conf.Set(config.MasterTotalProcessMemory.Key, mem)
	}

	if file.TaskManager.Memory != "" {
		mem, err := values.ParseMemorySize(file.TaskManager.Memory)
		if err != nil {
			return nil, fmt.Errorf("baseline taskmanager.memory: %w", err)
		}
		conf.Set(config.TaskManagerTotalProcessMemory.Key, mem)
	}

	if file.TaskManager.Slots > 0 {
		conf.Set(config.TaskManagerSlots.Key, file.TaskManager.Slots)
	}

	if file.Session.PropertiesDir != "" {
		conf.Set(config.SessionPropertiesDir.Key, file.Session.PropertiesDir)
	}

	return conf, nil
}

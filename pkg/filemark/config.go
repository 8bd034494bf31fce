package filemark

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/filemark/pkg/core"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional per-tree configuration file, read from the
// directory a run starts in. Flags override anything set here.
const ConfigFile = ".filemark.yaml"

// FileConfig mirrors the YAML configuration file.
type FileConfig struct {
	// MaxParents bounds the upward store search. Zero means the default
	// (derived from the start directory's depth).
	MaxParents int `yaml:"max_parents"`
	// Policy is the default add-policy: ask, add or skip.
	Policy string `yaml:"policy"`
	// Store overrides the store file basename (current format gets a
	// .json suffix appended, the legacy file uses the basename as-is).
	Store string `yaml:"store"`
}

// LoadFileConfig reads ConfigFile from dir. A missing file is not an
// error and yields the zero config.
func LoadFileConfig(dir string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", ConfigFile, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", ConfigFile, err)
	}

	if cfg.Policy != "" {
		if _, err := core.ParsePolicy(cfg.Policy); err != nil {
			return cfg, fmt.Errorf("%s: %w", ConfigFile, err)
		}
	}

	return cfg, nil
}

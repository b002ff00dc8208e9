package config

import (
	"errors"
	"os"

	"github.com/aalvaropc/wordfreq/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads a wordfreq.yaml file and applies it on top of the defaults.
func Load(path string) (domain.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.DefaultConfig(), &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapConfig(path, dto)
}

// Discover looks for wordfreq.yaml from startDir upward and loads it.
// When no file exists the defaults are returned with an empty path.
func Discover(startDir string) (domain.Config, string, error) {
	path, err := NewFinder().Find(startDir)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultConfig(), "", nil
		}
		return domain.DefaultConfig(), "", err
	}

	cfg, err := Load(path)
	return cfg, path, err
}

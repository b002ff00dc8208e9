package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/wordfreq/internal/domain"
)

// Formats lists the accepted output.format values.
var Formats = []string{"pretty", "json", "yaml"}

// MapConfig applies the values set in yc on top of domain.DefaultConfig.
// A relative input.default is taken relative to the directory of path.
func MapConfig(path string, yc YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	w := yc.Wordfreq

	if def := strings.TrimSpace(w.Input.Default); def != "" {
		if !filepath.IsAbs(def) && path != "" {
			def = filepath.Join(filepath.Dir(path), def)
		}
		cfg.Input.DefaultPath = filepath.Clean(def)
	}

	if f := strings.TrimSpace(w.Output.Format); f != "" {
		f = strings.ToLower(f)
		if !ValidFormat(f) {
			return cfg, invalidField(path, "wordfreq.output.format",
				fmt.Sprintf("unsupported format %q (expected %s)", f, strings.Join(Formats, "|")))
		}
		cfg.Output.Format = f
	}

	if w.Output.Progress != nil {
		cfg.Output.Progress = *w.Output.Progress
	}

	return cfg, nil
}

func ValidFormat(f string) bool {
	for _, v := range Formats {
		if v == f {
			return true
		}
	}
	return false
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("%s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

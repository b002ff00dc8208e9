package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/wordfreq/internal/domain"
	"github.com/aalvaropc/wordfreq/internal/infra/config"
	"github.com/aalvaropc/wordfreq/internal/infra/fsinput"
	"github.com/aalvaropc/wordfreq/internal/infra/logger"
	"github.com/aalvaropc/wordfreq/internal/usecase"
)

type runtimeCtx struct {
	// configPath is the loaded wordfreq.yaml, empty when defaults are used.
	configPath string
	format     string

	counter *usecase.CountWords
}

// loadRuntime resolves configuration and wires the counting use case.
// The progress bar is only drawn when allowProgress is set.
func loadRuntime(cmd *cobra.Command, opts rootOptions, allowProgress bool) (*runtimeCtx, error) {
	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(opts.defaultInput) != "" {
		cfg.Input.DefaultPath = opts.defaultInput
	}
	if cmd.Flags().Changed("progress") {
		cfg.Output.Progress = opts.progress
	}

	format := cfg.Output.Format
	if f := strings.TrimSpace(opts.format); f != "" {
		format = strings.ToLower(f)
	}
	if !config.ValidFormat(format) {
		return nil, fmt.Errorf("unsupported format %q (expected %s)", format, strings.Join(config.Formats, "|"))
	}

	var srcOpts []fsinput.Option
	if cfg.Output.Progress && allowProgress {
		srcOpts = append(srcOpts, fsinput.WithProgress(cmd.ErrOrStderr()))
	}

	logger.L().Debug("config.loaded",
		"path", cfgPath,
		"default_input", cfg.Input.DefaultPath,
		"format", format,
		"progress", cfg.Output.Progress,
	)

	counter := usecase.NewCountWords(
		fsinput.NewLocator(cfg.Input.DefaultPath),
		fsinput.NewSource(srcOpts...),
		usecase.WithLogger(logger.L()),
	)

	return &runtimeCtx{
		configPath: cfgPath,
		format:     format,
		counter:    counter,
	}, nil
}

// loadConfig loads an explicit config file, or discovers wordfreq.yaml from
// the working directory upward.
func loadConfig(explicit string) (domain.Config, string, error) {
	if p := strings.TrimSpace(explicit); p != "" {
		cfg, err := config.Load(p)
		return cfg, p, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return domain.DefaultConfig(), "", nil
	}
	return config.Discover(wd)
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/wordfreq/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		if !isReported(err) {
			fmt.Fprintln(os.Stderr, "Error:", userMessage(err))
		}
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath   string
	defaultInput string
	format       string
	progress     bool
	debug        bool
	logFile      string
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "wordfreq [file]",
		Short:         "Count word occurrences in a text file",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLogging(cmd, opts, func() error {
				rt, err := loadRuntime(cmd, opts, true)
				if err != nil {
					return err
				}

				report, err := rt.counter.Execute(cmd.Context(), args)
				reportRejectedInput(cmd.ErrOrStderr(), report)
				if err != nil {
					return reportLocateError(cmd.ErrOrStderr(), err)
				}
				reportReadError(cmd.ErrOrStderr(), report)

				return printReport(cmd.OutOrStdout(), report, rt.format)
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to wordfreq.yaml (optional; searched upward from the working directory)")
	pf.StringVar(&opts.defaultInput, "default-input", "", "Input file used when no file argument is given (default data/input.txt)")
	pf.BoolVar(&opts.progress, "progress", false, "Show a progress bar on stderr while reading")
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug logging to stderr")
	pf.StringVar(&opts.logFile, "log-file", "", "Append JSON logs to this file")

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: pretty|json|yaml")

	cmd.AddCommand(browseCmd(&opts))
	cmd.AddCommand(versionCmd())
	return cmd
}

func withLogging(cmd *cobra.Command, opts rootOptions, fn func() error) error {
	cleanup, err := logger.Setup(logger.Config{
		File:   opts.logFile,
		Debug:  opts.debug,
		Stderr: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer func() { _ = cleanup() }()

	return fn()
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/wordfreq/internal/infra/logger"
	"github.com/aalvaropc/wordfreq/internal/ui/tui"
)

func browseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse the frequency table interactively",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLogging(cmd, *opts, func() error {
				rt, err := loadRuntime(cmd, *opts, false)
				if err != nil {
					return err
				}

				return tui.Run(tui.Deps{
					Counter:    rt.counter,
					Args:       args,
					ConfigPath: rt.configPath,
					LogPath:    logger.Path(),
					Logger:     logger.L(),
				})
			})
		},
	}
}

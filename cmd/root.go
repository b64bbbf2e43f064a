package cmd

import (
	"fmt"
	"os"

	"world-crawler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "world-crawler",
	Short: "Favorite world crawler",
	Long: `World Crawler keeps a local record of the worlds favorited on a VRChat account.
It fetches the favorites listing, normalizes every entry and reconciles it with the
stored history, flagging worlds that dropped out of the favorites.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives ISO8601 timestamps for CLI users.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"deviceinfocompare/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "deviceinfocompare",
	Short: "Compare hardware device inventories over time",
	Long: `deviceinfocompare records the list of hardware devices present on this
machine ("dumps") and compares them later to show which devices went
missing, appeared, broke or were fixed.

Dump #0 always refers to the devices present right now.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with ISO8601 timestamps for CLI users
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

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory containing the .env file")
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/config"
)

// initCmd: cfkit init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath
		}
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("Configuration file already exists: %s\n", path)
			return
		}
		if err := config.Write(path, config.Default()); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("Configuration file created: %s\n", path)
	},
}

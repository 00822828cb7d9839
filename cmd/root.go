package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/config"
)

var (
	cfgFile string
	timeout time.Duration

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cfkit",
	Short: "cfkit - a Codeforces practice toolkit",
	Long: `cfkit pulls contests, judges built-in solutions against sample tests,
syncs solve progress, reminds about upcoming contests and serves a small
stats API.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			l, err := zap.NewProduction()
			if err != nil {
				fmt.Fprintf(os.Stderr, "error initializing logger: %v\n", err)
				os.Exit(1)
			}
			logger = l
		}
	},
}

func Execute() error {
	defer func() {
		if logger != nil {
			_ = logger.Sync()
		}
	}()
	return rootCmd.Execute()
}

// loadConfig reads the configuration, falling back to defaults.
func loadConfig() config.Config {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}
	return cfg
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file (default .cfkit.yaml)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Timeout for commands that hit the network")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(judgeCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(remindCmd)
	rootCmd.AddCommand(serveCmd)
}

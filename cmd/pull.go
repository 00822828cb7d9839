package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/cfapi"
	"github.com/rodriguescarson/cfkit/internal/contest"
)

var pullDir string

var pullCmd = &cobra.Command{
	Use:   "pull <contestID>",
	Short: "Download a contest's problems and sample tests",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println("error: Please provide a contest ID, e.g. 'cfkit pull 2110'")
			os.Exit(1)
		}
		contestID, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("error: invalid contest ID: %s\n", args[0])
			os.Exit(1)
		}

		cfg := loadConfig()
		dir := pullDir
		if dir == "" {
			dir = cfg.ContestsDir
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		api := cfapi.New(cfg.Key, cfg.Secret)
		puller := contest.NewPuller(api, logger, dir)
		if err := puller.Pull(ctx, contestID); err != nil {
			logger.Fatal("Pull failed", zap.Int("contest", contestID), zap.Error(err))
		}
		fmt.Printf("contest %d pulled into %s\n", contestID, dir)
	},
}

func init() {
	pullCmd.Flags().StringVar(&pullDir, "dir", "", "Directory to pull contests into (default from config)")
}

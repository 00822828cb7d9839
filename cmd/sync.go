package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/cfapi"
	"github.com/rodriguescarson/cfkit/internal/progress"
	"github.com/rodriguescarson/cfkit/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync submissions and rating history into the local store",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if cfg.Handle == "" {
			fmt.Println("error: no handle configured (run 'cfkit init' or set CF_HANDLE)")
			os.Exit(1)
		}

		st, err := store.Open(cfg.DataDir)
		if err != nil {
			logger.Fatal("Failed to open store", zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		api := cfapi.New(cfg.Key, cfg.Secret)
		syncer := progress.NewSyncer(api, st, logger)

		res, err := syncer.Sync(ctx, cfg.Handle)
		if err != nil {
			logger.Fatal("Sync failed", zap.String("handle", cfg.Handle), zap.Error(err))
		}

		fmt.Printf("synced %d submissions, %d solved problems\n", res.Submissions, res.Solved)
		if len(res.NewlySolved) > 0 {
			fmt.Printf("%d newly solved:\n", len(res.NewlySolved))
			shown := res.NewlySolved
			if len(shown) > 10 {
				shown = shown[:10]
			}
			for _, key := range shown {
				fmt.Printf("  - %s\n", key)
			}
			if rest := len(res.NewlySolved) - len(shown); rest > 0 {
				fmt.Printf("  ... and %d more\n", rest)
			}
		}
		if res.RatingChanges > 0 {
			fmt.Printf("current rating: %d (%d rated contests)\n", res.CurrentRating, res.RatingChanges)
		}
	},
}

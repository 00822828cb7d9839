package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/cfapi"
	"github.com/rodriguescarson/cfkit/internal/stats"
)

var (
	handleStyle  = color.New(color.FgCyan, color.Bold)
	ratingStyle  = color.New(color.FgYellow, color.Bold)
	gainStyle    = color.New(color.FgGreen, color.Bold)
	lossStyle    = color.New(color.FgRed, color.Bold)
	verdictStyle = color.New(color.FgHiBlack)
)

var statsCmd = &cobra.Command{
	Use:   "stats [handle]",
	Short: "Show a user's Codeforces statistics",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		handle := cfg.Handle
		if len(args) > 0 {
			handle = args[0]
		}
		if handle == "" {
			fmt.Println("error: no handle given and none configured (run 'cfkit init')")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		api := cfapi.New(cfg.Key, cfg.Secret)

		users, err := api.UserInfo(ctx, []string{handle})
		if err != nil {
			logger.Fatal("Failed to fetch user info", zap.String("handle", handle), zap.Error(err))
		}
		if len(users) == 0 {
			fmt.Printf("error: user %s not found\n", handle)
			os.Exit(1)
		}
		subs, err := api.UserStatus(ctx, handle, 1, 1000)
		if err != nil {
			logger.Fatal("Failed to fetch submissions", zap.String("handle", handle), zap.Error(err))
		}
		history, err := api.UserRating(ctx, handle)
		if err != nil {
			logger.Fatal("Failed to fetch rating history", zap.String("handle", handle), zap.Error(err))
		}

		printSummary(stats.Summarize(users[0], subs, history))
	},
}

func printSummary(s stats.Summary) {
	fmt.Printf("%s  %s (max %s)\n",
		handleStyle.Sprint(s.User.Handle),
		ratingStyle.Sprintf("%d", s.User.Rating),
		ratingStyle.Sprintf("%d", s.User.MaxRating))
	fmt.Printf("  rank: %s (max %s)\n", s.User.Rank, s.User.MaxRank)
	fmt.Printf("  solved: %d problems\n", s.SolvedCount)

	if s.CurrentRating != 0 {
		delta := fmt.Sprintf("%+d", s.LastDelta)
		style := gainStyle
		if s.LastDelta < 0 {
			style = lossStyle
		}
		fmt.Printf("  last contest: %s\n", style.Sprint(delta))
	}

	if len(s.Recent) > 0 {
		fmt.Println("  recent submissions:")
		for _, sub := range s.Recent {
			when := time.Unix(sub.CreationTimeSeconds, 0).UTC().Format("2006-01-02 15:04")
			band := ""
			if sub.Problem.Rating > 0 {
				band = stats.DifficultyBand(sub.Problem.Rating)
			}
			fmt.Printf("    %-8s %-28s %-6s %s\n",
				sub.Problem.Key(), sub.Verdict, band, verdictStyle.Sprint(when))
		}
	}
}

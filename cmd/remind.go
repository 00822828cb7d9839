package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/cfapi"
	"github.com/rodriguescarson/cfkit/internal/notify"
	"github.com/rodriguescarson/cfkit/internal/remind"
	"github.com/rodriguescarson/cfkit/internal/store"
)

var remindEvery time.Duration

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send reminders for upcoming contests",
	Long: `Checks upcoming contests against the configured reminder schedule and
sends desktop notifications for any that are due. With --every, keeps
checking on an interval until interrupted.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		st, err := store.Open(cfg.DataDir)
		if err != nil {
			logger.Fatal("Failed to open store", zap.Error(err))
		}

		api := cfapi.New(cfg.Key, cfg.Secret)
		scheduler := remind.NewScheduler(api, st, notify.Desktop{}, logger,
			cfg.Reminders.Times, cfg.Reminders.Filter, cfg.Reminders.IncludeGym)

		if remindEvery <= 0 {
			runRemindOnce(scheduler)
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ticker := time.NewTicker(remindEvery)
		defer ticker.Stop()

		runRemindOnce(scheduler)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runRemindOnce(scheduler)
			}
		}
	},
}

func runRemindOnce(scheduler *remind.Scheduler) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	sent, err := scheduler.Check(ctx)
	if err != nil {
		logger.Error("Reminder check failed", zap.Error(err))
		return
	}
	if sent > 0 {
		fmt.Printf("sent %d reminder(s)\n", sent)
	}
}

func init() {
	remindCmd.Flags().DurationVar(&remindEvery, "every", 0, "Keep checking on this interval (e.g. 5m); 0 checks once")
}

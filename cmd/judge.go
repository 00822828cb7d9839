package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/judge"
	"github.com/rodriguescarson/cfkit/internal/solver"
)

var (
	judgeSolverID string
	judgeWatch    bool
)

var judgeCmd = &cobra.Command{
	Use:   "judge [dirs...]",
	Short: "Judge built-in solvers against sample tests",
	Long: `Runs the solver for each problem directory against its in*.txt/out*.txt
pairs. The solver is inferred from a contests/<id>/<index> layout unless
--solver is given. With --watch, test file changes trigger a rerun.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide problem directories")
			os.Exit(1)
		}

		if judgeWatch {
			if len(args) != 1 {
				fmt.Println("error: --watch takes exactly one directory")
				os.Exit(1)
			}
			runWatch(args[0])
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		failed := false
		for _, dir := range args {
			id, s := resolveSolver(dir)
			results, err := judge.Run(ctx, s, dir)
			if err != nil {
				logger.Error("Judging failed", zap.String("dir", dir), zap.Error(err))
				failed = true
				continue
			}
			judge.WriteReport(os.Stdout, id, results)
			if !judge.Passed(results) {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func init() {
	judgeCmd.Flags().StringVar(&judgeSolverID, "solver", "", "Problem ID of the solver to run (inferred from the path by default)")
	judgeCmd.Flags().BoolVar(&judgeWatch, "watch", false, "Re-judge when test files change")
}

func resolveSolver(dir string) (string, solver.Solver) {
	id := judgeSolverID
	if id == "" {
		inferred, ok := judge.InferID(dir)
		if !ok {
			fmt.Printf("error: cannot infer problem ID from %s; use --solver\n", dir)
			os.Exit(1)
		}
		id = inferred
	}
	s, ok := solver.Lookup(id)
	if !ok {
		fmt.Printf("error: no solver for problem %s\n", id)
		os.Exit(1)
	}
	return id, s
}

func runWatch(dir string) {
	id, s := resolveSolver(dir)

	// watch mode runs until interrupted, so no command timeout here
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// judge once up front so the first report doesn't wait for a change
	results, err := judge.Run(ctx, s, dir)
	if err != nil {
		logger.Error("Judging failed", zap.String("dir", dir), zap.Error(err))
	} else {
		judge.WriteReport(os.Stdout, id, results)
	}

	w, err := judge.NewWatcher(s, id, dir, logger)
	if err != nil {
		logger.Fatal("Failed to create watcher", zap.Error(err))
	}

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Watcher stopped", zap.Error(err))
	}
}

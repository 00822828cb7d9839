package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/solver"
)

var (
	solveInput  string
	solveOutput string
)

var solveCmd = &cobra.Command{
	Use:   "solve <problemID>",
	Short: "Run a built-in solver on a problem's input",
	Long: `Reads the problem input from stdin (or --input) and writes one answer
per test case to stdout (or --output). Run without arguments to list the
built-in solvers.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("built-in solvers:")
			for _, id := range solver.IDs() {
				fmt.Printf("  %s\n", id)
			}
			return
		}

		s, ok := solver.Lookup(args[0])
		if !ok {
			fmt.Printf("error: no solver for problem %s (try 'cfkit solve' to list)\n", args[0])
			os.Exit(1)
		}

		var in io.Reader = os.Stdin
		if solveInput != "" {
			f, err := os.Open(solveInput)
			if err != nil {
				logger.Fatal("Failed to open input file", zap.Error(err))
			}
			defer f.Close()
			in = f
		}

		if solveOutput == "" {
			if err := s.Solve(in, os.Stdout); err != nil {
				logger.Fatal("Solver failed", zap.String("problem", args[0]), zap.Error(err))
			}
			return
		}
		if err := solveToFile(s, in, solveOutput); err != nil {
			logger.Fatal("Solver failed", zap.String("problem", args[0]), zap.Error(err))
		}
	},
}

// solveToFile closes the output file explicitly so a failed close (and with
// it any buffered output) is reported instead of swallowed by a defer.
func solveToFile(s solver.Solver, in io.Reader, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Solve(in, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "Read input from a file instead of stdin")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "Write output to a file instead of stdout")
}

package judge

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	acceptedStyle = color.New(color.FgGreen, color.Bold)
	wrongStyle    = color.New(color.FgRed, color.Bold)
	errorStyle    = color.New(color.FgHiRed, color.Bold)
	fileStyle     = color.New(color.FgCyan, color.Bold)
	dimStyle      = color.New(color.FgHiBlack)
)

func verdictStyle(v Verdict) *color.Color {
	switch v {
	case Accepted:
		return acceptedStyle
	case WrongAnswer:
		return wrongStyle
	default:
		return errorStyle
	}
}

// WriteReport renders the results of judging one problem directory.
func WriteReport(w io.Writer, problemID string, results []Result) {
	fmt.Fprintf(w, "%s\n", fileStyle.Sprint(problemID))
	for _, r := range results {
		fmt.Fprintf(w, "  %s  %s  %s\n",
			verdictStyle(r.Verdict).Sprint(r.Verdict.String()),
			filepath.Base(r.Input),
			dimStyle.Sprintf("(%s)", r.Elapsed.Round(100*time.Microsecond)),
		)
		switch r.Verdict {
		case WrongAnswer:
			fmt.Fprintf(w, "%s", diffBlock(r.Expected, r.Got))
		case RuntimeError:
			fmt.Fprintf(w, "       error: %v\n", r.Err)
		}
	}
}

// diffBlock shows expected vs. got, indented, truncated to a screenful.
func diffBlock(expected, got string) string {
	var b strings.Builder
	b.WriteString("       expected:\n")
	writeIndented(&b, expected)
	b.WriteString("       got:\n")
	writeIndented(&b, got)
	return b.String()
}

const maxDiffLines = 20

func writeIndented(b *strings.Builder, s string) {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if i == maxDiffLines {
			fmt.Fprintf(b, "         ... (%d more lines)\n", len(lines)-i)
			return
		}
		fmt.Fprintf(b, "         %s\n", line)
	}
}

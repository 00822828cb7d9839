package judge

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rodriguescarson/cfkit/internal/solver"
)

// Verdict is the outcome of running a solver on one sample file.
type Verdict int

const (
	Accepted Verdict = iota
	WrongAnswer
	RuntimeError
)

func (v Verdict) String() string {
	switch v {
	case Accepted:
		return "AC"
	case WrongAnswer:
		return "WA"
	case RuntimeError:
		return "RE"
	default:
		return "??"
	}
}

// Result is the judgment of one input/output file pair.
type Result struct {
	Input    string // input file path
	Verdict  Verdict
	Expected string
	Got      string
	Err      error
	Elapsed  time.Duration
}

// Passed reports whether every case was accepted.
func Passed(results []Result) bool {
	for _, r := range results {
		if r.Verdict != Accepted {
			return false
		}
	}
	return len(results) > 0
}

var inFilePattern = regexp.MustCompile(`^in(\d*)\.txt$`)

// Run judges the solver against every in*.txt/out*.txt pair in dir.
func Run(ctx context.Context, s solver.Solver, dir string) ([]Result, error) {
	pairs, err := casePairs(dir)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("no test cases in %s", dir)
	}

	var results []Result
	for _, p := range pairs {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}
		results = append(results, runCase(s, p.in, p.out))
	}
	return results, nil
}

type casePair struct {
	in, out string
}

func casePairs(dir string) ([]casePair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var pairs []casePair
	for _, e := range entries {
		m := inFilePattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		out := filepath.Join(dir, "out"+m[1]+".txt")
		if _, err := os.Stat(out); err != nil {
			continue
		}
		pairs = append(pairs, casePair{in: filepath.Join(dir, e.Name()), out: out})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].in < pairs[j].in })
	return pairs, nil
}

func runCase(s solver.Solver, inPath, outPath string) Result {
	res := Result{Input: inPath}

	input, err := os.ReadFile(inPath)
	if err != nil {
		res.Verdict = RuntimeError
		res.Err = err
		return res
	}
	expected, err := os.ReadFile(outPath)
	if err != nil {
		res.Verdict = RuntimeError
		res.Err = err
		return res
	}
	res.Expected = normalize(string(expected))

	var out bytes.Buffer
	start := time.Now()
	err = s.Solve(bytes.NewReader(input), &out)
	res.Elapsed = time.Since(start)
	res.Got = normalize(out.String())

	if err != nil {
		res.Verdict = RuntimeError
		res.Err = err
		return res
	}
	if res.Got != res.Expected {
		res.Verdict = WrongAnswer
		return res
	}
	res.Verdict = Accepted
	return res
}

// normalize trims trailing whitespace per line and trailing blank lines so
// cosmetic differences don't flip a verdict.
func normalize(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// InferID derives a problem ID from a directory path laid out as
// .../<contestID>/<index>, e.g. contests/2110/A -> "2110A".
func InferID(dir string) (string, bool) {
	clean := filepath.Clean(dir)
	index := filepath.Base(clean)
	contest := filepath.Base(filepath.Dir(clean))
	if contest == "." || contest == string(filepath.Separator) {
		return "", false
	}
	for _, ch := range contest {
		if ch < '0' || ch > '9' {
			return "", false
		}
	}
	if index == "" || index[0] < 'A' || index[0] > 'Z' {
		return "", false
	}
	return contest + index, true
}

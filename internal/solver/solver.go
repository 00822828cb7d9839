package solver

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Solver is a built-in solution for one contest problem. Solve reads the
// problem's input stream and writes one answer per test case.
type Solver interface {
	Solve(r io.Reader, w io.Writer) error
}

// registry maps a problem ID like "2110A" to its solver.
var registry = map[string]Solver{}

func register(id string, s Solver) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("solver %q registered twice", id))
	}
	registry[id] = s
}

// Lookup returns the solver registered for the given problem ID.
func Lookup(id string) (Solver, bool) {
	s, ok := registry[id]
	return s, ok
}

// IDs returns the registered problem IDs in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Scanner reads whitespace-separated integer tokens from a contest input
// stream.
type Scanner struct {
	sc *bufio.Scanner
}

func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc}
}

// Int reads the next token as a base-10 integer.
func (s *Scanner) Int() (int, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	n, err := strconv.Atoi(s.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("bad integer token: %w", err)
	}
	return n, nil
}

// Ints reads n integers into a new slice.
func (s *Scanner) Ints(n int) ([]int, error) {
	a := make([]int, n)
	for i := range a {
		v, err := s.Int()
		if err != nil {
			return nil, err
		}
		a[i] = v
	}
	return a, nil
}

package solver

import (
	"bufio"
	"fmt"
	"io"
)

// parityRange solves problem 2110A: the minimum number of deletions so that
// the remaining elements all share one parity and therefore span exactly
// that parity class's [min,max] range. Keeping a parity class means deleting
// every element of the other parity, so the answer is the size of the
// smaller class (zero when only one class is present).
type parityRange struct{}

func init() {
	register("2110A", parityRange{})
}

func (parityRange) Solve(r io.Reader, w io.Writer) error {
	sc := NewScanner(r)
	bw := bufio.NewWriter(w)

	t, err := sc.Int()
	if err != nil {
		return fmt.Errorf("reading test case count: %w", err)
	}
	for ; t > 0; t-- {
		n, err := sc.Int()
		if err != nil {
			return fmt.Errorf("reading n: %w", err)
		}
		a, err := sc.Ints(n)
		if err != nil {
			return fmt.Errorf("reading values: %w", err)
		}
		fmt.Fprintln(bw, MinRemovals(a))
	}
	return bw.Flush()
}

// MinRemovals returns the minimum number of elements to delete from a so
// that the rest are a single parity class spanning its own min/max range.
func MinRemovals(a []int) int {
	odd := 0
	for _, x := range a {
		if x&1 == 1 {
			odd++
		}
	}
	even := len(a) - odd

	ans := len(a)
	if even > 0 {
		ans = min(ans, odd) // keep the evens
	}
	if odd > 0 {
		ans = min(ans, even) // keep the odds
	}
	if len(a) == 0 {
		return 0
	}
	return ans
}

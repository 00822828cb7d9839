package store

import (
	"strings"

	"github.com/emirpasic/gods/v2/sets/treeset"
)

// SolvedSet is the set of solved problem keys ("2110A"), ordered by contest
// ID numerically and then by problem index, so listings read in contest order
// rather than lexicographically ("999A" before "2110A" would be wrong the
// other way around).
type SolvedSet struct {
	set *treeset.Set[string]
}

func NewSolvedSet() *SolvedSet {
	return &SolvedSet{set: treeset.NewWith[string](compareProblemKeys)}
}

func (s *SolvedSet) Add(keys ...string)       { s.set.Add(keys...) }
func (s *SolvedSet) Contains(key string) bool { return s.set.Contains(key) }
func (s *SolvedSet) Size() int                { return s.set.Size() }

// Keys returns the problems in contest order.
func (s *SolvedSet) Keys() []string {
	return s.set.Values()
}

// Diff returns the keys present in s but not in other, in contest order.
func (s *SolvedSet) Diff(other *SolvedSet) []string {
	var out []string
	for _, k := range s.Keys() {
		if !other.Contains(k) {
			out = append(out, k)
		}
	}
	return out
}

// compareProblemKeys orders "2110A" style keys by the numeric contest prefix,
// then by the index suffix.
func compareProblemKeys(a, b string) int {
	an, as := splitKey(a)
	bn, bs := splitKey(b)
	if an != bn {
		if an < bn {
			return -1
		}
		return 1
	}
	return strings.Compare(as, bs)
}

func splitKey(key string) (int, string) {
	i := 0
	n := 0
	for i < len(key) && key[i] >= '0' && key[i] <= '9' {
		n = n*10 + int(key[i]-'0')
		i++
	}
	return n, key[i:]
}

package solver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	_, ok := Lookup("2110A")
	assert.True(t, ok)

	_, ok = Lookup("9999Z")
	assert.False(t, ok)
}

func TestIDsSorted(t *testing.T) {
	t.Parallel()
	ids := IDs()
	require.NotEmpty(t, ids)
	assert.IsIncreasing(t, ids)
	assert.Contains(t, ids, "2110A")
}

func TestScanner(t *testing.T) {
	t.Parallel()

	sc := NewScanner(strings.NewReader("3\n10 -20\t30"))
	n, err := sc.Int()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	a, err := sc.Ints(3)
	require.NoError(t, err)
	assert.Equal(t, []int{10, -20, 30}, a)

	_, err = sc.Int()
	assert.Error(t, err)
}

func TestScannerBadToken(t *testing.T) {
	t.Parallel()

	sc := NewScanner(strings.NewReader("abc"))
	_, err := sc.Int()
	assert.Error(t, err)
}

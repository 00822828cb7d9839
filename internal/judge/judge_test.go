package judge

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rodriguescarson/cfkit/internal/solver"
)

func TestRunAccepted(t *testing.T) {
	t.Parallel()
	s, ok := solver.Lookup("2110A")
	require.True(t, ok)

	results, err := Run(context.Background(), s, filepath.Join("testdata", "2110", "A"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, Accepted, results[0].Verdict)
	assert.True(t, Passed(results))
}

func TestRunWrongAnswer(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.txt"), []byte("1\n3\n1 2 3\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "out.txt"), []byte("3\n"), 0o644))

	s, ok := solver.Lookup("2110A")
	require.True(t, ok)

	results, err := Run(context.Background(), s, dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, WrongAnswer, results[0].Verdict)
	assert.Equal(t, "3", results[0].Expected)
	assert.Equal(t, "1", results[0].Got)
	assert.False(t, Passed(results))
}

func TestRunRuntimeError(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// promises 3 values, delivers 2
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.txt"), []byte("1\n3\n1 2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "out.txt"), []byte("0\n"), 0o644))

	s, ok := solver.Lookup("2110A")
	require.True(t, ok)

	results, err := Run(context.Background(), s, dir)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, RuntimeError, results[0].Verdict)
	assert.Error(t, results[0].Err)
}

func TestRunMultiplePairs(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in.txt"), []byte("1\n1\n5\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "out.txt"), []byte("0\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in2.txt"), []byte("1\n3\n1 2 3\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "out2.txt"), []byte("1\n"), 0o644))
	// unpaired input is skipped
	require.NoError(t, os.WriteFile(filepath.Join(dir, "in3.txt"), []byte("1\n1\n5\n"), 0o644))

	s, ok := solver.Lookup("2110A")
	require.True(t, ok)

	results, err := Run(context.Background(), s, dir)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.True(t, Passed(results))
}

func TestRunEmptyDir(t *testing.T) {
	t.Parallel()
	s, ok := solver.Lookup("2110A")
	require.True(t, ok)

	_, err := Run(context.Background(), s, t.TempDir())
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1\n2", normalize("1 \n2\t\n\n\n"))
	assert.Equal(t, "1\n2", normalize("1\r\n2\r\n"))
	assert.Equal(t, "", normalize("\n\n"))
}

func TestInferID(t *testing.T) {
	t.Parallel()
	tests := []struct {
		dir  string
		want string
		ok   bool
	}{
		{filepath.Join("contests", "2110", "A"), "2110A", true},
		{filepath.Join("testdata", "2110", "B1"), "2110B1", true},
		{filepath.Join("contests", "abc", "A"), "", false},
		{filepath.Join("2110", "a"), "", false},
	}
	for _, tt := range tests {
		got, ok := InferID(tt.dir)
		assert.Equal(t, tt.ok, ok, tt.dir)
		assert.Equal(t, tt.want, got, tt.dir)
	}
}

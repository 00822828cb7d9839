package progress

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/cfapi"
	"github.com/rodriguescarson/cfkit/internal/store"
)

type fakeAPI struct {
	pages   [][]cfapi.Submission
	history []cfapi.RatingChange
	calls   int
}

func (f *fakeAPI) UserStatus(_ context.Context, _ string, from, count int) ([]cfapi.Submission, error) {
	idx := (from - 1) / count
	f.calls++
	if idx >= len(f.pages) {
		return nil, nil
	}
	return f.pages[idx], nil
}

func (f *fakeAPI) UserRating(context.Context, string) ([]cfapi.RatingChange, error) {
	return f.history, nil
}

func okSub(contestID int, index string) cfapi.Submission {
	return cfapi.Submission{
		Problem: cfapi.Problem{ContestID: contestID, Index: index},
		Verdict: "OK",
	}
}

func TestSync(t *testing.T) {
	t.Parallel()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)

	api := &fakeAPI{
		pages: [][]cfapi.Submission{{
			okSub(2110, "A"),
			okSub(2110, "B"),
			{Problem: cfapi.Problem{ContestID: 2110, Index: "C"}, Verdict: "WRONG_ANSWER"},
		}},
		history: []cfapi.RatingChange{{OldRating: 1500, NewRating: 1561}},
	}

	syncer := NewSyncer(api, st, zap.NewNop())
	syncer.delay = 0

	res, err := syncer.Sync(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Submissions)
	assert.Equal(t, 2, res.Solved)
	assert.Equal(t, []string{"2110A", "2110B"}, res.NewlySolved)
	assert.Equal(t, 1561, res.CurrentRating)

	// persisted for the next run
	solved, err := st.LoadSolved()
	require.NoError(t, err)
	assert.Equal(t, 2, solved.Size())

	rating, err := st.LoadRating()
	require.NoError(t, err)
	assert.Equal(t, "alice", rating.Handle)
}

func TestSyncReportsOnlyNewProblems(t *testing.T) {
	t.Parallel()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)

	prev := store.NewSolvedSet()
	prev.Add("2110A")
	require.NoError(t, st.SaveSolved(prev))

	api := &fakeAPI{pages: [][]cfapi.Submission{{okSub(2110, "A"), okSub(2111, "B")}}}
	syncer := NewSyncer(api, st, zap.NewNop())
	syncer.delay = 0

	res, err := syncer.Sync(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"2111B"}, res.NewlySolved)
}

func TestSyncPaginates(t *testing.T) {
	t.Parallel()
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)

	full := make([]cfapi.Submission, pageSize)
	for i := range full {
		full[i] = okSub(1000+i, "A")
	}
	api := &fakeAPI{pages: [][]cfapi.Submission{full, {okSub(3000, "A")}}}

	syncer := NewSyncer(api, st, zap.NewNop())
	syncer.delay = 0

	res, err := syncer.Sync(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, pageSize+1, res.Submissions)
	assert.GreaterOrEqual(t, api.calls, 2)
}

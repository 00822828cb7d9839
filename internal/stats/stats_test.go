package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rodriguescarson/cfkit/internal/cfapi"
)

func sub(contestID int, index, verdict string) cfapi.Submission {
	return cfapi.Submission{
		Problem: cfapi.Problem{ContestID: contestID, Index: index},
		Verdict: verdict,
	}
}

func TestSolvedProblems(t *testing.T) {
	t.Parallel()
	subs := []cfapi.Submission{
		sub(2110, "A", "OK"),
		sub(2110, "A", "OK"), // duplicate accept
		sub(2110, "B", "WRONG_ANSWER"),
		sub(2111, "C", "OK"),
		{Verdict: "OK"}, // no problem attached
	}

	set := SolvedProblems(subs)
	assert.Equal(t, []string{"2110A", "2111C"}, set.Keys())
}

func TestSummarize(t *testing.T) {
	t.Parallel()
	user := cfapi.User{Handle: "alice", Rating: 1561}
	subs := []cfapi.Submission{
		sub(2110, "A", "OK"),
		sub(2110, "B", "WRONG_ANSWER"),
		sub(2110, "B", "OK"),
	}
	history := []cfapi.RatingChange{
		{OldRating: 1400, NewRating: 1500},
		{OldRating: 1500, NewRating: 1561},
	}

	s := Summarize(user, subs, history)
	assert.Equal(t, 2, s.SolvedCount)
	assert.Equal(t, 2, s.Verdicts["OK"])
	assert.Equal(t, 1, s.Verdicts["WRONG_ANSWER"])
	assert.Equal(t, 1561, s.CurrentRating)
	assert.Equal(t, 61, s.LastDelta)
	assert.Len(t, s.RatingHistory, 2)
	assert.Len(t, s.Recent, 3)
}

func TestSummarizeCapsHistoryAndRecent(t *testing.T) {
	t.Parallel()
	var history []cfapi.RatingChange
	for i := 0; i < 15; i++ {
		history = append(history, cfapi.RatingChange{NewRating: 1000 + i})
	}
	var subs []cfapi.Submission
	for i := 0; i < 25; i++ {
		subs = append(subs, sub(2000+i, "A", "OK"))
	}

	s := Summarize(cfapi.User{}, subs, history)
	assert.Len(t, s.RatingHistory, 10)
	assert.Equal(t, 1014, s.RatingHistory[9].NewRating)
	assert.Len(t, s.Recent, 10)
	assert.Equal(t, 25, s.SolvedCount)
}

func TestDifficultyBand(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "easy", DifficultyBand(800))
	assert.Equal(t, "medium", DifficultyBand(1400))
	assert.Equal(t, "medium", DifficultyBand(1899))
	assert.Equal(t, "hard", DifficultyBand(1900))
	assert.Equal(t, "medium", DifficultyBand(0))
}

package stats

import (
	"github.com/rodriguescarson/cfkit/internal/cfapi"
	"github.com/rodriguescarson/cfkit/internal/store"
)

// Summary aggregates a user's profile, submissions and rating history.
type Summary struct {
	User          cfapi.User
	SolvedCount   int
	Verdicts      map[string]int
	CurrentRating int
	LastDelta     int
	RatingHistory []cfapi.RatingChange // most recent last, capped at 10
	Recent        []cfapi.Submission   // capped at 10
}

// SolvedProblems extracts the set of solved problem keys from submissions.
// A problem counts once no matter how many accepted submissions it has.
func SolvedProblems(subs []cfapi.Submission) *store.SolvedSet {
	set := store.NewSolvedSet()
	for _, sub := range subs {
		if sub.Verdict != "OK" {
			continue
		}
		if sub.Problem.ContestID == 0 || sub.Problem.Index == "" {
			continue
		}
		set.Add(sub.Problem.Key())
	}
	return set
}

// Summarize builds a Summary from raw API data.
func Summarize(user cfapi.User, subs []cfapi.Submission, history []cfapi.RatingChange) Summary {
	verdicts := map[string]int{}
	for _, sub := range subs {
		verdicts[sub.Verdict]++
	}

	s := Summary{
		User:        user,
		SolvedCount: SolvedProblems(subs).Size(),
		Verdicts:    verdicts,
	}
	if len(history) > 0 {
		latest := history[len(history)-1]
		s.CurrentRating = latest.NewRating
		s.LastDelta = latest.NewRating - latest.OldRating
	}
	if len(history) > 10 {
		history = history[len(history)-10:]
	}
	s.RatingHistory = history

	if len(subs) > 10 {
		subs = subs[:10]
	}
	s.Recent = subs
	return s
}

// DifficultyBand buckets a problem rating the way the practice log does.
func DifficultyBand(rating int) string {
	switch {
	case rating <= 0:
		return "medium"
	case rating < 1400:
		return "easy"
	case rating < 1900:
		return "medium"
	default:
		return "hard"
	}
}

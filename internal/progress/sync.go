package progress

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/cfapi"
	"github.com/rodriguescarson/cfkit/internal/stats"
	"github.com/rodriguescarson/cfkit/internal/store"
)

// pageSize is the maximum user.status page the API serves.
const pageSize = 1000

// pageDelay spaces out paged requests.
const pageDelay = 500 * time.Millisecond

type submissionAPI interface {
	UserStatus(ctx context.Context, handle string, from, count int) ([]cfapi.Submission, error)
	UserRating(ctx context.Context, handle string) ([]cfapi.RatingChange, error)
}

// Syncer pulls a user's full submission and rating history into the local
// store.
type Syncer struct {
	api    submissionAPI
	store  *store.Store
	logger *zap.Logger
	delay  time.Duration
}

func NewSyncer(api submissionAPI, st *store.Store, logger *zap.Logger) *Syncer {
	return &Syncer{api: api, store: st, logger: logger, delay: pageDelay}
}

// Result summarises one sync run.
type Result struct {
	Submissions   int
	Solved        int
	NewlySolved   []string
	RatingChanges int
	CurrentRating int
}

// Sync fetches everything for handle and persists it. The previously stored
// solved set is used to report which problems are new.
func (s *Syncer) Sync(ctx context.Context, handle string) (*Result, error) {
	subs, err := s.fetchAllSubmissions(ctx, handle)
	if err != nil {
		return nil, err
	}
	s.logger.Info("submissions fetched", zap.String("handle", handle), zap.Int("count", len(subs)))

	solved := stats.SolvedProblems(subs)

	previous, err := s.store.LoadSolved()
	if err != nil {
		return nil, err
	}
	newlySolved := solved.Diff(previous)

	if err := s.store.SaveSolved(solved); err != nil {
		return nil, err
	}
	if err := s.store.SaveCache(subs); err != nil {
		return nil, err
	}

	history, err := s.api.UserRating(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("fetching rating history: %w", err)
	}
	if err := s.store.SaveRating(handle, history); err != nil {
		return nil, err
	}

	res := &Result{
		Submissions:   len(subs),
		Solved:        solved.Size(),
		NewlySolved:   newlySolved,
		RatingChanges: len(history),
	}
	if len(history) > 0 {
		res.CurrentRating = history[len(history)-1].NewRating
	}
	return res, nil
}

// fetchAllSubmissions pages through user.status until a short page.
func (s *Syncer) fetchAllSubmissions(ctx context.Context, handle string) ([]cfapi.Submission, error) {
	var all []cfapi.Submission
	from := 1
	for {
		page, err := s.api.UserStatus(ctx, handle, from, pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetching submissions from %d: %w", from, err)
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
		from += pageSize

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}
}

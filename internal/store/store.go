package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rodriguescarson/cfkit/internal/cfapi"
)

const (
	solvedFile    = "solved_problems.json"
	ratingFile    = "rating_history.json"
	remindersFile = "reminders_sent.json"
	cacheFile     = "api_cache.json"
)

// Store persists practice progress as JSON files under a data directory.
type Store struct {
	dir string
}

// Open ensures the data directory exists and returns a store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// SolvedFile is the on-disk shape of solved_problems.json.
type SolvedFile struct {
	LastSync    time.Time `json:"last_sync"`
	TotalSolved int       `json:"total_solved"`
	Problems    []string  `json:"problems"`
}

// RatingFile is the on-disk shape of rating_history.json.
type RatingFile struct {
	LastSync time.Time            `json:"last_sync"`
	Handle   string               `json:"handle"`
	History  []cfapi.RatingChange `json:"history"`
}

// CacheFile holds the most recent submissions for quick access.
type CacheFile struct {
	LastSync time.Time          `json:"last_sync"`
	Count    int                `json:"count"`
	Data     []cfapi.Submission `json:"data"`
}

// LoadSolved returns the stored solved set; an empty set if never synced.
func (s *Store) LoadSolved() (*SolvedSet, error) {
	var f SolvedFile
	if err := s.load(solvedFile, &f); err != nil {
		return nil, err
	}
	set := NewSolvedSet()
	for _, p := range f.Problems {
		set.Add(p)
	}
	return set, nil
}

// SaveSolved writes the solved set with the current timestamp.
func (s *Store) SaveSolved(set *SolvedSet) error {
	return s.save(solvedFile, SolvedFile{
		LastSync:    time.Now().UTC(),
		TotalSolved: set.Size(),
		Problems:    set.Keys(),
	})
}

// LoadRating returns the stored rating history.
func (s *Store) LoadRating() (RatingFile, error) {
	var f RatingFile
	err := s.load(ratingFile, &f)
	return f, err
}

// SaveRating writes the rating history for a handle.
func (s *Store) SaveRating(handle string, history []cfapi.RatingChange) error {
	return s.save(ratingFile, RatingFile{
		LastSync: time.Now().UTC(),
		Handle:   handle,
		History:  history,
	})
}

// LoadReminders returns the sent-reminder ledger: contest ID to the lead-time
// keys already notified (e.g. "60m").
func (s *Store) LoadReminders() (map[string][]string, error) {
	sent := map[string][]string{}
	if err := s.load(remindersFile, &sent); err != nil {
		return nil, err
	}
	return sent, nil
}

// SaveReminders writes the sent-reminder ledger.
func (s *Store) SaveReminders(sent map[string][]string) error {
	return s.save(remindersFile, sent)
}

// LoadCache returns the cached submissions.
func (s *Store) LoadCache() (CacheFile, error) {
	var f CacheFile
	err := s.load(cacheFile, &f)
	return f, err
}

// SaveCache stores the most recent submissions, capped at 100.
func (s *Store) SaveCache(subs []cfapi.Submission) error {
	total := len(subs)
	if len(subs) > 100 {
		subs = subs[:100]
	}
	return s.save(cacheFile, CacheFile{
		LastSync: time.Now().UTC(),
		Count:    total,
		Data:     subs,
	})
}

// load reads a JSON file into v. A missing file leaves v untouched.
func (s *Store) load(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

func (s *Store) save(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

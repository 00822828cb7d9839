package cfapi

import "strconv"

// User is a Codeforces user profile, as returned by user.info.
type User struct {
	Handle        string `json:"handle"`
	Rating        int    `json:"rating"`
	MaxRating     int    `json:"maxRating"`
	Rank          string `json:"rank"`
	MaxRank       string `json:"maxRank"`
	Organization  string `json:"organization,omitempty"`
	Country       string `json:"country,omitempty"`
	City          string `json:"city,omitempty"`
	Contribution  int    `json:"contribution"`
	FriendOfCount int    `json:"friendOfCount"`
}

// Problem identifies a problem within a contest.
type Problem struct {
	ContestID int      `json:"contestId"`
	Index     string   `json:"index"`
	Name      string   `json:"name"`
	Rating    int      `json:"rating,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

// Key returns the short problem key, e.g. "2110A".
func (p Problem) Key() string {
	return strconv.Itoa(p.ContestID) + p.Index
}

// Submission is one entry of user.status.
type Submission struct {
	ID                  int64   `json:"id"`
	ContestID           int     `json:"contestId"`
	Problem             Problem `json:"problem"`
	Verdict             string  `json:"verdict"`
	ProgrammingLanguage string  `json:"programmingLanguage"`
	CreationTimeSeconds int64   `json:"creationTimeSeconds"`
}

// Contest is one entry of contest.list.
type Contest struct {
	ID                  int    `json:"id"`
	Name                string `json:"name"`
	Type                string `json:"type"`
	Phase               string `json:"phase"`
	StartTimeSeconds    int64  `json:"startTimeSeconds"`
	DurationSeconds     int64  `json:"durationSeconds"`
	RelativeTimeSeconds int64  `json:"relativeTimeSeconds"`
}

// RatingChange is one entry of user.rating.
type RatingChange struct {
	ContestID               int    `json:"contestId"`
	ContestName             string `json:"contestName"`
	Handle                  string `json:"handle"`
	Rank                    int    `json:"rank"`
	OldRating               int    `json:"oldRating"`
	NewRating               int    `json:"newRating"`
	RatingUpdateTimeSeconds int64  `json:"ratingUpdateTimeSeconds"`
}

// Standings is the contest.standings result, trimmed to what the toolkit
// consumes.
type Standings struct {
	Contest  Contest   `json:"contest"`
	Problems []Problem `json:"problems"`
}

// ProblemsetResult is the problemset.problems result.
type ProblemsetResult struct {
	Problems []Problem `json:"problems"`
}

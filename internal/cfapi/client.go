package cfapi

import (
	"context"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public Codeforces API endpoint.
	DefaultBaseURL = "https://codeforces.com/api"

	defaultTimeout = 10 * time.Second
)

// Client talks to the Codeforces API. Key and secret are optional; when both
// are set every request carries an apiSig signature.
type Client struct {
	baseURL    string
	key        string
	secret     string
	httpClient *http.Client
	now        func() time.Time
	randSuffix func() string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New returns a client. key and secret may be empty for anonymous access.
func New(key, secret string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		key:        key,
		secret:     secret,
		httpClient: &http.Client{Timeout: defaultTimeout},
		now:        time.Now,
		randSuffix: randomSuffix,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// envelope is the outer JSON shape of every API response.
type envelope struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment"`
	Result  json.RawMessage `json:"result"`
}

// APIError is a FAILED response from the API.
type APIError struct {
	Method  string
	Comment string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("codeforces %s: %s", e.Method, e.Comment)
}

func (c *Client) call(ctx context.Context, method string, params url.Values, result any) error {
	if params == nil {
		params = url.Values{}
	}
	if c.key != "" && c.secret != "" {
		params.Set("apiKey", c.key)
		params.Set("time", strconv.FormatInt(c.now().Unix(), 10))
		rand6 := c.randSuffix()
		params.Set("apiSig", rand6+signRequest(method, params, c.secret, rand6))
	}

	u := c.baseURL + "/" + method + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", method, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", method, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}
	if env.Status == "FAILED" {
		return &APIError{Method: method, Comment: env.Comment}
	}
	if result != nil {
		if err := json.Unmarshal(env.Result, result); err != nil {
			return fmt.Errorf("decoding %s result: %w", method, err)
		}
	}
	return nil
}

// signRequest builds the apiSig hash for an authenticated call: the SHA-512 of
// "<rand>/api/<method>?<params sorted by key>#<secret>", hex encoded. The
// apiSig parameter itself must not be part of the signed string.
func signRequest(method string, params url.Values, secret, rand6 string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		if k == "apiSig" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params.Get(k))
	}

	sig := fmt.Sprintf("%s/api/%s?%s#%s", rand6, method, strings.Join(pairs, "&"), secret)
	sum := sha512.Sum512([]byte(sig))
	return hex.EncodeToString(sum[:])
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

func randomSuffix() string {
	b := make([]byte, 6)
	for i := range b {
		b[i] = suffixAlphabet[rand.Intn(len(suffixAlphabet))]
	}
	return string(b)
}

// UserInfo returns profiles for the given handles.
func (c *Client) UserInfo(ctx context.Context, handles []string) ([]User, error) {
	params := url.Values{"handles": {strings.Join(handles, ";")}}
	var users []User
	if err := c.call(ctx, "user.info", params, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UserStatus returns the user's submissions, 1-based from index.
func (c *Client) UserStatus(ctx context.Context, handle string, from, count int) ([]Submission, error) {
	params := url.Values{
		"handle": {handle},
		"from":   {strconv.Itoa(from)},
		"count":  {strconv.Itoa(count)},
	}
	var subs []Submission
	if err := c.call(ctx, "user.status", params, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// UserRating returns the user's rating change history, oldest first.
func (c *Client) UserRating(ctx context.Context, handle string) ([]RatingChange, error) {
	params := url.Values{"handle": {handle}}
	var changes []RatingChange
	if err := c.call(ctx, "user.rating", params, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// ContestList returns all contests, optionally including gym contests.
func (c *Client) ContestList(ctx context.Context, gym bool) ([]Contest, error) {
	params := url.Values{"gym": {strconv.FormatBool(gym)}}
	var contests []Contest
	if err := c.call(ctx, "contest.list", params, &contests); err != nil {
		return nil, err
	}
	return contests, nil
}

// ContestStandings returns the contest metadata and problem list. handle may
// be empty.
func (c *Client) ContestStandings(ctx context.Context, contestID int, handle string, from, count int) (*Standings, error) {
	params := url.Values{
		"contestId": {strconv.Itoa(contestID)},
		"from":      {strconv.Itoa(from)},
		"count":     {strconv.Itoa(count)},
	}
	if handle != "" {
		params.Set("handles", handle)
	}
	var standings Standings
	if err := c.call(ctx, "contest.standings", params, &standings); err != nil {
		return nil, err
	}
	return &standings, nil
}

// ContestRatingChanges returns rating changes for a finished contest.
func (c *Client) ContestRatingChanges(ctx context.Context, contestID int) ([]RatingChange, error) {
	params := url.Values{"contestId": {strconv.Itoa(contestID)}}
	var changes []RatingChange
	if err := c.call(ctx, "contest.ratingChanges", params, &changes); err != nil {
		return nil, err
	}
	return changes, nil
}

// Problemset returns the problem archive, optionally filtered by tags.
func (c *Client) Problemset(ctx context.Context, tags []string) (*ProblemsetResult, error) {
	params := url.Values{}
	if len(tags) > 0 {
		params.Set("tags", strings.Join(tags, ";"))
	}
	var res ProblemsetResult
	if err := c.call(ctx, "problemset.problems", params, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// RecentStatus returns the most recent submissions across the problemset.
func (c *Client) RecentStatus(ctx context.Context, count int) ([]Submission, error) {
	params := url.Values{"count": {strconv.Itoa(count)}}
	var subs []Submission
	if err := c.call(ctx, "problemset.recentStatus", params, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

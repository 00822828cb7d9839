package remind

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/cfapi"
	"github.com/rodriguescarson/cfkit/internal/notify"
	"github.com/rodriguescarson/cfkit/internal/store"
)

// DefaultLeadTimes is the default reminder schedule in minutes before the
// contest start: a day, an hour, fifteen minutes.
var DefaultLeadTimes = []int{1440, 60, 15}

// DefaultFilter limits reminders to the divisions most worth practicing.
var DefaultFilter = []string{"div2", "div3"}

// fireWindow is how far from the exact reminder instant a check may run and
// still fire; reminder checks typically come from a coarse timer or cron.
const fireWindow = 5 * time.Minute

type contestLister interface {
	ContestList(ctx context.Context, gym bool) ([]cfapi.Contest, error)
}

// Scheduler checks upcoming contests and sends due reminders, deduplicating
// through the store so each (contest, lead time) fires once.
type Scheduler struct {
	api        contestLister
	store      *store.Store
	notifier   notify.Notifier
	logger     *zap.Logger
	leadTimes  []int // minutes, sorted descending
	filter     []string
	includeGym bool
	now        func() time.Time
}

func NewScheduler(api contestLister, st *store.Store, notifier notify.Notifier, logger *zap.Logger, leadTimes []int, filter []string, includeGym bool) *Scheduler {
	if len(leadTimes) == 0 {
		leadTimes = DefaultLeadTimes
	}
	sorted := append([]int(nil), leadTimes...)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	return &Scheduler{
		api:        api,
		store:      st,
		notifier:   notifier,
		logger:     logger,
		leadTimes:  sorted,
		filter:     filter,
		includeGym: includeGym,
		now:        time.Now,
	}
}

// Check fetches upcoming contests and sends any reminders that are due.
// It returns the number of notifications sent.
func (s *Scheduler) Check(ctx context.Context) (int, error) {
	contests, err := s.api.ContestList(ctx, s.includeGym)
	if err != nil {
		return 0, fmt.Errorf("fetching contest list: %w", err)
	}
	upcoming := Upcoming(contests, s.now(), s.filter, s.includeGym)
	if len(upcoming) == 0 {
		s.logger.Info("no upcoming contests")
		return 0, nil
	}

	sent, err := s.store.LoadReminders()
	if err != nil {
		return 0, err
	}

	fired := 0
	for _, contest := range upcoming {
		id := strconv.Itoa(contest.ID)
		for _, lead := range s.leadTimes {
			key := fmt.Sprintf("%dm", lead)
			if contains(sent[id], key) {
				continue
			}
			due := time.Unix(contest.StartTimeSeconds, 0).Add(-time.Duration(lead) * time.Minute)
			if d := s.now().Sub(due); d < -fireWindow || d > fireWindow {
				continue
			}

			if err := s.notifier.Send(ctx, s.buildNotification(contest, lead)); err != nil {
				s.logger.Error("sending reminder failed",
					zap.String("contest", contest.Name), zap.Error(err))
				continue
			}
			s.logger.Info("reminder sent",
				zap.String("contest", contest.Name), zap.String("lead", key))
			sent[id] = append(sent[id], key)
			fired++
		}
	}

	if err := s.store.SaveReminders(sent); err != nil {
		return fired, err
	}
	return fired, nil
}

func (s *Scheduler) buildNotification(contest cfapi.Contest, leadMinutes int) notify.Notification {
	start := time.Unix(contest.StartTimeSeconds, 0)
	until := FormatTimeUntil(start.Sub(s.now()))
	startStr := start.UTC().Format("2006-01-02 15:04 UTC")

	n := notify.Notification{
		Title: "Codeforces Contest Reminder",
		URL:   fmt.Sprintf("https://codeforces.com/contest/%d", contest.ID),
	}
	switch {
	case leadMinutes >= 1440:
		n.Message = fmt.Sprintf("%s starts %s (%s)", contest.Name, until, startStr)
		n.Subtitle = "Contest Reminder"
	case leadMinutes >= 60:
		n.Message = fmt.Sprintf("%s starts in %s!", contest.Name, until)
		n.Subtitle = "Starts at " + startStr
	default:
		n.Message = fmt.Sprintf("%s starts in %s! Get ready!", contest.Name, until)
		n.Subtitle = "Contest starting soon"
	}
	return n
}

// Upcoming filters the raw contest list down to future contests in the
// BEFORE or CODING phase that match the division filter, sorted by start
// time.
func Upcoming(contests []cfapi.Contest, now time.Time, filter []string, includeGym bool) []cfapi.Contest {
	var out []cfapi.Contest
	for _, c := range contests {
		if c.StartTimeSeconds <= now.Unix() {
			continue
		}
		if c.Phase != "BEFORE" && c.Phase != "CODING" {
			continue
		}
		if c.Type == "GYM" && !includeGym {
			continue
		}
		if !matchesDivision(c.Name, filter) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTimeSeconds < out[j].StartTimeSeconds
	})
	return out
}

// matchesDivision checks the contest name against division filters like
// "div2". An empty filter matches everything. Codeforces names use both the
// "Div. 2" and "div2" spellings.
func matchesDivision(name string, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, f := range filter {
		f = strings.TrimSpace(strings.ToLower(f))
		if f == "" || f == "all" {
			return true
		}
		if len(f) == 4 && strings.HasPrefix(f, "div") {
			dotted := "div. " + f[3:]
			if strings.Contains(lower, dotted) || strings.Contains(lower, f) {
				return true
			}
		} else if strings.Contains(lower, f) {
			return true
		}
	}
	return false
}

// FormatTimeUntil renders a duration the way the reminder messages expect:
// "2d 3h", "5h 12m" or "42m".
func FormatTimeUntil(d time.Duration) string {
	if d < 0 {
		return "started"
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

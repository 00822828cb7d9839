package contest

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/rodriguescarson/cfkit/internal/cfapi"
)

const problemPageURL = "https://codeforces.com/contest/%d/problem/%s"

// fetchDelay spaces out problem page requests.
const fetchDelay = 500 * time.Millisecond

type standingsGetter interface {
	ContestStandings(ctx context.Context, contestID int, handle string, from, count int) (*cfapi.Standings, error)
}

// Puller downloads a contest's problems and sample tests into a local
// directory tree: <root>/<contestID>/<index>/{in.txt,out.txt,main.go}.
type Puller struct {
	api        standingsGetter
	httpClient *http.Client
	logger     *zap.Logger
	root       string
	pageURL    string
	delay      time.Duration
}

func NewPuller(api standingsGetter, logger *zap.Logger, root string) *Puller {
	return &Puller{
		api:        api,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
		root:       root,
		pageURL:    problemPageURL,
		delay:      fetchDelay,
	}
}

// Pull fetches the contest's problem list and writes each problem's samples
// and a solution stub. Problems whose samples cannot be fetched are reported
// and skipped.
func (p *Puller) Pull(ctx context.Context, contestID int) error {
	standings, err := p.api.ContestStandings(ctx, contestID, "", 1, 1)
	if err != nil {
		return fmt.Errorf("fetching contest %d: %w", contestID, err)
	}
	problems := standings.Problems
	if len(problems) == 0 {
		return fmt.Errorf("contest %d has no problems", contestID)
	}
	p.logger.Info("pulling contest",
		zap.Int("contest", contestID),
		zap.String("name", standings.Contest.Name),
		zap.Int("problems", len(problems)))

	bar := progressbar.NewOptions(len(problems),
		progressbar.OptionSetDescription(fmt.Sprintf("contest %d", contestID)),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	for i, problem := range problems {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(p.delay):
			}
		}
		if err := p.pullProblem(ctx, contestID, problem); err != nil {
			p.logger.Warn("problem skipped",
				zap.String("problem", problem.Key()), zap.Error(err))
		}
		bar.Add(1)
	}
	fmt.Println()
	return nil
}

func (p *Puller) pullProblem(ctx context.Context, contestID int, problem cfapi.Problem) error {
	dir := filepath.Join(p.root, fmt.Sprint(contestID), problem.Index)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	samples, err := p.fetchSamples(ctx, contestID, problem.Index)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		p.logger.Warn("no samples found", zap.String("problem", problem.Key()))
	} else {
		if err := writeSamples(dir, samples); err != nil {
			return err
		}
	}
	return writeStub(dir, problem)
}

func (p *Puller) fetchSamples(ctx context.Context, contestID int, index string) ([]Sample, error) {
	u := fmt.Sprintf(p.pageURL, contestID, index)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "cfkit/1.0")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching problem page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("problem page returned %s", resp.Status)
	}
	return ExtractSamples(resp.Body)
}

// writeSamples concatenates all sample inputs into in.txt and all outputs
// into out.txt, matching the layout the judge expects.
func writeSamples(dir string, samples []Sample) error {
	var ins, outs []string
	for _, s := range samples {
		ins = append(ins, s.Input)
		outs = append(outs, s.Output)
	}
	if err := os.WriteFile(filepath.Join(dir, "in.txt"), []byte(strings.Join(ins, "\n")+"\n"), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "out.txt"), []byte(strings.Join(outs, "\n")+"\n"), 0o644)
}

const stubTemplate = `// Problem %s: %s
// https://codeforces.com/contest/%d/problem/%s
package main

import (
	"bufio"
	"fmt"
	"os"
)

func main() {
	in := bufio.NewReader(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var t int
	fmt.Fscan(in, &t)
	for ; t > 0; t-- {
	}
}
`

// writeStub drops a main.go template unless one already exists.
func writeStub(dir string, problem cfapi.Problem) error {
	path := filepath.Join(dir, "main.go")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	stub := fmt.Sprintf(stubTemplate, problem.Key(), problem.Name, problem.ContestID, problem.Index)
	return os.WriteFile(path, []byte(stub), 0o644)
}

package notify

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

const commandTimeout = 5 * time.Second

// Notification is one desktop notification.
type Notification struct {
	Title    string
	Subtitle string
	Message  string
	URL      string // opened on click where the platform supports it
}

// Notifier delivers notifications.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// Desktop sends notifications through the platform's notifier binary:
// osascript on darwin, notify-send on linux.
type Desktop struct{}

func (Desktop) Send(ctx context.Context, n Notification) error {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	switch runtime.GOOS {
	case "darwin":
		return sendOSAScript(ctx, n)
	case "linux":
		return sendNotifySend(ctx, n)
	default:
		return fmt.Errorf("desktop notifications not supported on %s", runtime.GOOS)
	}
}

func sendOSAScript(ctx context.Context, n Notification) error {
	script := `display notification "` + escapeAppleScript(n.Message) +
		`" with title "` + escapeAppleScript(n.Title) + `"`
	if n.Subtitle != "" {
		script += ` subtitle "` + escapeAppleScript(n.Subtitle) + `"`
	}
	script += ` sound name "Glass"`

	if out, err := exec.CommandContext(ctx, "osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}

func sendNotifySend(ctx context.Context, n Notification) error {
	body := n.Message
	if n.URL != "" {
		body += "\n" + n.URL
	}
	if out, err := exec.CommandContext(ctx, "notify-send", n.Title, body).CombinedOutput(); err != nil {
		return fmt.Errorf("notify-send: %w (%s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// escapeAppleScript escapes backslashes, quotes and newlines for embedding in
// an AppleScript string literal.
func escapeAppleScript(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return r.Replace(s)
}

package tmux

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

const sessionPrefix = "launch"

// ErrSessionExists is returned when no free session name could be found.
var ErrSessionExists = errors.New("tmux session already exists")

// ErrNoClient is returned when the session was created but no terminal
// client is attached to switch over to it.
var ErrNoClient = errors.New("no tmux client attached")

// Runner starts commands in fresh tmux sessions and switches the calling
// client to them.
type Runner struct {
	socketPath string
	now        func() time.Time
}

// NewRunner returns a runner bound to the tmux server at socketPath.
func NewRunner(socketPath string) *Runner {
	return &Runner{socketPath: socketPath, now: time.Now}
}

// Run creates a detached session running command in dir and switches the
// client to it. An empty command starts the default shell. It returns the
// session name.
func (r *Runner) Run(command, dir string) (string, error) {
	client, err := newTmux(r.socketPath)
	if err != nil {
		return "", fmt.Errorf("connect to tmux: %w", err)
	}
	defer client.Close()
	name, err := r.freeName(client, command)
	if err != nil {
		return "", err
	}
	opts := &gotmux.SessionOptions{
		Name:           name,
		StartDirectory: dir,
		ShellCommand:   strings.TrimSpace(command),
	}
	if _, err := client.NewSession(opts); err != nil {
		return "", fmt.Errorf("new session %s: %w", name, err)
	}
	target, ok := activeClient(client)
	if !ok {
		return name, fmt.Errorf("switch to %s: %w", name, ErrNoClient)
	}
	switchOpts := &gotmux.SwitchClientOptions{TargetSession: name, TargetClient: target}
	if err := client.SwitchClient(switchOpts); err != nil {
		return name, fmt.Errorf("switch to %s: %w", name, err)
	}
	return name, nil
}

// activeClient picks the most recently active terminal client. The
// control-mode connection used to issue commands is never a candidate.
func activeClient(client tmuxClient) (string, bool) {
	clients, err := client.ListClients()
	if err != nil {
		return "", false
	}
	var (
		best     string
		bestSeen int64 = -1
	)
	for _, c := range clients {
		if c == nil || c.ControlMode || strings.TrimSpace(c.Name) == "" {
			continue
		}
		seen, err := strconv.ParseInt(strings.TrimSpace(c.Activity), 10, 64)
		if err != nil {
			seen = 0
		}
		if seen > bestSeen {
			best, bestSeen = c.Name, seen
		}
	}
	return best, best != ""
}

func (r *Runner) freeName(client tmuxClient, command string) (string, error) {
	base := SessionName(command, r.now())
	if !client.HasSession(base) {
		return base, nil
	}
	for i := 2; i < 100; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if !client.HasSession(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s: %w", base, ErrSessionExists)
}

// SessionName builds a tmux-safe session name from the first word of command.
func SessionName(command string, at time.Time) string {
	word := "shell"
	if fields := strings.Fields(command); len(fields) > 0 {
		word = fields[0]
		if idx := strings.LastIndex(word, "/"); idx >= 0 && idx < len(word)-1 {
			word = word[idx+1:]
		}
	}
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	cleaned := strings.Trim(b.String(), "-")
	if cleaned == "" {
		cleaned = "shell"
	}
	return fmt.Sprintf("%s-%s-%s", sessionPrefix, cleaned, at.Format("150405"))
}

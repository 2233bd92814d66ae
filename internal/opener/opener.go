// Package opener hands URLs and paths to the desktop's default handler.
package opener

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrEmptyTarget is returned when Open is called with nothing to open.
var ErrEmptyTarget = errors.New("nothing to open")

// Opener opens a URL or file path.
type Opener interface {
	Open(target string) error
}

// Func adapts a function to the Opener interface.
type Func func(target string) error

func (f Func) Open(target string) error { return f(target) }

// System opens targets with the platform's launcher command. Open returns as
// soon as the helper has started; it is reaped in the background.
type System struct {
	name string
	args []string

	start func(cmd *exec.Cmd) error
}

// NewSystem returns an opener for the current platform.
func NewSystem() (*System, error) {
	name, args, err := commandFor(runtime.GOOS)
	if err != nil {
		return nil, err
	}
	return &System{name: name, args: args, start: startDetached}, nil
}

// Open launches the handler for target.
func (s *System) Open(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return ErrEmptyTarget
	}
	args := append(append([]string(nil), s.args...), target)
	cmd := exec.Command(s.name, args...)
	if err := s.start(cmd); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

// Command returns the helper and leading arguments Open runs.
func (s *System) Command() (string, []string) {
	return s.name, append([]string(nil), s.args...)
}

func commandFor(goos string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", nil, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", nil, nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

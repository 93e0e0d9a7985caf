package exec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	logging "sales-report/internal/infra/log"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Viewer hands saved images to the desktop image viewer.
// After three consecutive failures the breaker opens and Open returns
// gobreaker.ErrOpenState without spawning anything until the breaker
// timeout has passed.
type Viewer struct {
	command []string
	timeout time.Duration
	breaker *gobreaker.CircuitBreaker
}

// DefaultViewerCommand returns the platform "open this file" command.
func DefaultViewerCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "rundll32 url.dll,FileProtocolHandler"
	default:
		return "xdg-open"
	}
}

// NewViewer builds a Viewer. An empty command selects DefaultViewerCommand.
func NewViewer(command string, timeout time.Duration) *Viewer {
	if strings.TrimSpace(command) == "" {
		command = DefaultViewerCommand()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	settings := gobreaker.Settings{
		Name:        "image-viewer",
		MaxRequests: 1,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.LogWarn("Viewer breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}

	return &Viewer{
		command: strings.Fields(command),
		timeout: timeout,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// Open launches the viewer for path and waits for the launcher to return.
func (v *Viewer) Open(ctx context.Context, path string) error {
	_, err := v.breaker.Execute(func() (interface{}, error) {
		output, err := v.run(ctx, path)
		if err != nil && len(output) > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(output)))
		}
		return nil, err
	})
	return err
}

func (v *Viewer) run(ctx context.Context, path string) ([]byte, error) {
	if err := validateInstalled(v.command[0]); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve image path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return nil, fmt.Errorf("image not found: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	args := append(append([]string{}, v.command[1:]...), absPath)
	cmd := exec.CommandContext(ctx, v.command[0], args...)
	output, err := cmd.CombinedOutput()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return output, fmt.Errorf("viewer timed out after %v", v.timeout)
	}
	return output, err
}

func validateInstalled(name string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("image viewer %q is not installed or not in PATH: %w", name, err)
	}
	return nil
}

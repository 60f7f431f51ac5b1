package icongen

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ToolError reports a child process that ran but exited non-zero.
type ToolError struct {
	Command  string
	ExitCode int
	Output   string
}

func (e *ToolError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d: %s", e.Command, e.ExitCode, e.Output)
}

// runTool runs name with args, blocking until it exits. Combined output is
// captured and attached to the returned error on failure.
func runTool(ctx context.Context, logger hclog.Logger, name string, args ...string) ([]byte, error) {
	logger.Debug("🚀 Executing command", "path", name)
	logger.Trace("🚀 Full command with args", "args", args)

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Debug("⏹️ Process exited", "path", name, "code", exitErr.ExitCode())
			return out, &ToolError{
				Command:  name,
				ExitCode: exitErr.ExitCode(),
				Output:   strings.TrimSpace(string(out)),
			}
		}
		return out, fmt.Errorf("failed to start %s: %w", name, err)
	}

	logger.Trace("✅ Process completed successfully", "path", name)
	return out, nil
}

// firstLine returns the first line of tool output, used for version banners.
func firstLine(out []byte) string {
	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line)
}

package lesson

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Output is what a finished process wrote.
type Output struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// execute runs args[0] from dir and waits for it. Both streams are captured.
// A non-zero exit status is returned in Output, not as an error.
func execute(ctx context.Context, dir string, args []string) (*Output, error) {
	if len(args) == 0 {
		return nil, errors.New("empty command")
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &Output{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitError *exec.ExitError
		if ctx.Err() != nil {
			return out, fmt.Errorf("%s was cancelled: %w", strings.Join(args, " "), ctx.Err())
		} else if errors.As(err, &exitError) {
			out.ExitCode = exitError.ExitCode()
		} else {
			return nil, fmt.Errorf("failed to run %s: %w", strings.Join(args, " "), err)
		}
	}

	return out, nil
}

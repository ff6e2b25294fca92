// Package proc runs external programs the converter depends on (node with
// Less parser, lessc, sass).
package proc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes program with arguments feeding stdin and returns its
// standard output.
type Runner interface {
	Run(ctx context.Context, name string, args, env []string, stdin io.Reader) ([]byte, error)
}

// Exec is Runner backed by os/exec. Additional environment is appended to
// the current process environment.
type Exec struct{}

func (Exec) Run(ctx context.Context, name string, args, env []string, stdin io.Reader) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout, cmd.Stderr = &stdout, &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// RunnerFunc adapts function to Runner.
type RunnerFunc func(ctx context.Context, name string, args, env []string, stdin io.Reader) ([]byte, error)

func (f RunnerFunc) Run(ctx context.Context, name string, args, env []string, stdin io.Reader) ([]byte, error) {
	return f(ctx, name, args, env, stdin)
}

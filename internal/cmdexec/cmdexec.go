// Package cmdexec abstracts external command execution for testability.
// Production code uses Commander interface; tests inject FakeCommander from testutil.
package cmdexec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Commander abstracts external command execution.
type Commander interface {
	// Run executes an external command and returns its combined output.
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// RunWithEnv executes an external command with additional environment variables
	// merged on top of the current process environment.
	RunWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error)

	// Capture executes a command, returning stdout and the exit code separately.
	// stderr passes through to the current process's stderr. A non-zero exit is
	// not an error; err is non-nil only when the command could not be started,
	// in which case the exit code is 127 (shell convention).
	Capture(ctx context.Context, name string, args ...string) ([]byte, int, error)

	// RunInteractive executes a command wired to the current process's
	// stdin/stdout/stderr and returns its exit code.
	RunInteractive(ctx context.Context, name string, args ...string) (int, error)

	// Start launches a command detached from the current process's stdio
	// without waiting for it to finish.
	Start(ctx context.Context, name string, args ...string) error
}

// RealCommander executes actual external commands via os/exec.
type RealCommander struct{}

// Run executes the command using os/exec.CommandContext.
func (c *RealCommander) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	log.Debug().Str("cmd", name).Strs("args", args).Msg("cmdexec run")
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// RunWithEnv executes the command with additional environment variables.
// The provided env map is merged on top of the current process environment.
func (c *RealCommander) RunWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error) {
	log.Debug().Str("cmd", name).Strs("args", args).Msg("cmdexec run with env")
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), mapToEnvSlice(env)...)
	return cmd.CombinedOutput()
}

// Capture는 stdout과 exit code를 분리해서 반환한다. stderr는 현재
// 프로세스의 stderr로 그대로 흘러간다.
func (c *RealCommander) Capture(ctx context.Context, name string, args ...string) ([]byte, int, error) {
	log.Debug().Str("cmd", name).Strs("args", args).Msg("cmdexec capture")
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return out, exitErr.ExitCode(), nil
		}
		return nil, 127, fmt.Errorf("cmdexec.Capture: %w", err)
	}
	return out, 0, nil
}

// RunInteractive는 stdio를 물려준 채 command를 실행하고 exit code를 반환한다.
func (c *RealCommander) RunInteractive(ctx context.Context, name string, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 127, fmt.Errorf("cmdexec.RunInteractive: %w", err)
	}
	return 0, nil
}

// Start는 command를 현재 프로세스와 분리하여 실행한다. 종료를 기다리지 않는다.
func (c *RealCommander) Start(ctx context.Context, name string, args ...string) error {
	log.Debug().Str("cmd", name).Strs("args", args).Msg("cmdexec start detached")
	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("cmdexec.Start: %w", err)
	}
	// 좀비 프로세스 방지. 종료 코드는 버린다.
	go func() { _ = cmd.Wait() }()
	return nil
}

// mapToEnvSlice converts a map of environment variables to a slice of "KEY=VALUE" strings.
func mapToEnvSlice(env map[string]string) []string {
	if env == nil {
		return nil
	}
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, fmt.Sprintf("%s=%s", k, v))
	}
	return result
}

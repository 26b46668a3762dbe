package testutil

import (
	"context"
	"fmt"
	"strings"
)

// Response represents a pre-configured command response for FakeCommander.
type Response struct {
	Output   []byte
	ExitCode int
	Err      error
}

// FakeCommander returns pre-configured responses for testing.
// Responses are keyed by "name arg1 arg2 ..." format.
// If no exact match is found, it tries prefix matching.
type FakeCommander struct {
	// Responses maps command strings to their responses.
	// Key format: "command arg1 arg2" (e.g., "kdotool search", "tailscale set")
	Responses map[string]Response

	// Calls records all commands that were executed, in order.
	Calls []string

	// EnvCalls records the environment variable maps passed to RunWithEnv, in order.
	EnvCalls []map[string]string

	// Started records commands launched via Start, in order.
	Started []string

	// DefaultResponse is returned when no matching response is found.
	// If nil, an error is returned for unmatched commands.
	DefaultResponse *Response
}

// NewFakeCommander creates a FakeCommander with an empty response map.
func NewFakeCommander() *FakeCommander {
	return &FakeCommander{
		Responses: make(map[string]Response),
	}
}

// Register adds a response for the given command key.
func (c *FakeCommander) Register(key string, output string, err error) {
	c.Responses[key] = Response{
		Output: []byte(output),
		Err:    err,
	}
}

// RegisterExit adds a response with an explicit exit code for Capture.
func (c *FakeCommander) RegisterExit(key string, output string, exitCode int) {
	c.Responses[key] = Response{
		Output:   []byte(output),
		ExitCode: exitCode,
	}
}

func (c *FakeCommander) lookup(name string, args []string) (Response, string, error) {
	fullCmd := name
	if len(args) > 0 {
		fullCmd = name + " " + strings.Join(args, " ")
	}

	// Exact match first.
	if resp, ok := c.Responses[fullCmd]; ok {
		return resp, fullCmd, nil
	}

	// Try prefix matching (longest prefix wins).
	bestKey := ""
	for key := range c.Responses {
		if strings.HasPrefix(fullCmd, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		return c.Responses[bestKey], fullCmd, nil
	}

	if c.DefaultResponse != nil {
		return *c.DefaultResponse, fullCmd, nil
	}

	return Response{}, fullCmd, fmt.Errorf("FakeCommander: no response registered for %q", fullCmd)
}

// Run looks up the command in Responses and returns the matching response.
func (c *FakeCommander) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	resp, fullCmd, err := c.lookup(name, args)
	c.Calls = append(c.Calls, fullCmd)
	if err != nil {
		return nil, err
	}
	if resp.Err == nil && resp.ExitCode != 0 {
		return resp.Output, fmt.Errorf("exit status %d", resp.ExitCode)
	}
	return resp.Output, resp.Err
}

// RunWithEnv records the environment variables and delegates to Run logic.
func (c *FakeCommander) RunWithEnv(ctx context.Context, env map[string]string, name string, args ...string) ([]byte, error) {
	c.EnvCalls = append(c.EnvCalls, env)
	return c.Run(ctx, name, args...)
}

// Capture returns the registered output and exit code.
func (c *FakeCommander) Capture(_ context.Context, name string, args ...string) ([]byte, int, error) {
	resp, fullCmd, err := c.lookup(name, args)
	c.Calls = append(c.Calls, fullCmd)
	if err != nil {
		return nil, 127, err
	}
	return resp.Output, resp.ExitCode, resp.Err
}

// RunInteractive delegates to the response map and returns the exit code.
func (c *FakeCommander) RunInteractive(_ context.Context, name string, args ...string) (int, error) {
	resp, fullCmd, err := c.lookup(name, args)
	c.Calls = append(c.Calls, fullCmd)
	if err != nil {
		return 127, err
	}
	return resp.ExitCode, resp.Err
}

// Start records the launch without producing output.
func (c *FakeCommander) Start(_ context.Context, name string, args ...string) error {
	fullCmd := name
	if len(args) > 0 {
		fullCmd = name + " " + strings.Join(args, " ")
	}
	c.Started = append(c.Started, fullCmd)
	c.Calls = append(c.Calls, fullCmd)
	return nil
}

// Called returns true if a command matching the given prefix was executed.
func (c *FakeCommander) Called(prefix string) bool {
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			return true
		}
	}
	return false
}

// CallCount returns the number of times a command matching the given prefix was executed.
func (c *FakeCommander) CallCount(prefix string) int {
	count := 0
	for _, call := range c.Calls {
		if strings.HasPrefix(call, prefix) {
			count++
		}
	}
	return count
}

package runner

import (
	"errors"
	"os/exec"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=executor.go -destination=mockexecutor.gen.go -package=runner

// Executor runs external hook commands, blocking until completion.
type Executor interface {
	// Execute runs command with args in dir and returns the combined
	// output and exit code. A non-nil error means the command could not
	// be run at all (e.g. executable missing), not that it exited
	// non-zero.
	Execute(dir, command string, args []string) (output []byte, exitCode int, err error)
}

type realExecutor struct {
	// No fields needed for basic command execution
}

// NewExecutor creates a new Executor instance.
func NewExecutor() Executor {
	return &realExecutor{}
}

// Execute runs command with args in dir, blocking until completion.
func (e *realExecutor) Execute(dir, command string, args []string) ([]byte, int, error) {
	cmd := exec.Command(command, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, exitErr.ExitCode(), nil
		}
		return output, -1, err
	}

	return output, 0, nil
}

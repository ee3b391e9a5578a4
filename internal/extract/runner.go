package extract

import (
	"bytes"
	"context"
	"os/exec"
)

// Runner executes an external tool and returns its stdout and stderr.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var outb, errb bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &outb
	cmd.Stderr = &errb

	err := cmd.Run()

	return outb.Bytes(), errb.Bytes(), err
}

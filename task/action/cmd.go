package action

import (
	"bytes"
	"errors"
	"os"
	"os/exec"

	"github.com/factorysh/forge/config"
	"github.com/factorysh/forge/logger"
	"github.com/factorysh/forge/task/errs"
)

var _ Action = &Cmd{}

// Cmd is a command line action, it spawns a new shell process
type Cmd struct {
	Cmd string `json:"cmd"`
}

// Execute the command line through the shell. Captured streams are
// forwarded to the logger, even when the command fails.
// Exit codes above 125 mean the shell machinery itself broke (command not
// found, not executable, killed), they map to TaskError. Other non zero
// exit codes map to TaskFailed.
func (c *Cmd) Execute(captureStdout bool, captureStderr bool) error {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	cmd := exec.Command(config.GetShell(), "-c", c.Cmd)
	if captureStdout {
		cmd.Stdout = &stdout
	} else {
		cmd.Stdout = os.Stdout
	}
	if captureStderr {
		cmd.Stderr = &stderr
	} else {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()

	if captureStdout && stdout.Len() > 0 {
		logger.Log("stdout", stdout.String())
	}
	if captureStderr && stderr.Len() > 0 {
		logger.Log("stderr", stderr.String())
	}

	if err == nil {
		return nil
	}

	var exit *exec.ExitError
	if !errors.As(err, &exit) {
		// the shell could not even be spawned
		return errs.Errorf("Command error: '%s': %s", c.Cmd, err)
	}

	code := exit.ExitCode()
	if code > 125 || code < 0 {
		return errs.Errorf("Command error: '%s' returned %d", c.Cmd, code)
	}
	return errs.Failedf("Command failed: '%s' returned %d", c.Cmd, code)
}

// Describe action interface implementation
func (c *Cmd) Describe() string {
	return "Cmd: " + c.Cmd
}

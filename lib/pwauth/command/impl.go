package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/Symantec/Dominator/lib/log"
)

const rejectedExitCode = 1

func newAuthenticator(command string, args []string, timeout time.Duration,
	logger log.DebugLogger) (*PasswordAuthenticator, error) {
	command, err := exec.LookPath(command)
	if err != nil {
		return nil, err
	}
	return &PasswordAuthenticator{command, args, timeout, logger}, nil
}

func (pa *PasswordAuthenticator) passwordAuthenticate(username string,
	password []byte) (bool, error) {
	ctx := context.Background()
	if pa.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, pa.timeout)
		defer cancel()
	}
	args := []string{username}
	args = append(args, pa.args...)
	cmd := exec.CommandContext(ctx, pa.command, args...)
	cmd.Stdin = bytes.NewReader(password)
	stderr := &bytes.Buffer{}
	cmd.Stderr = stderr
	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	if ctx.Err() != nil {
		pa.logger.Printf("%s: timed out after %s", pa.command, pa.timeout)
		return false, ctx.Err()
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == rejectedExitCode {
		pa.logger.Debugf(1, "%s rejected user %s", pa.command, username)
		return false, nil
	}
	pa.logger.Println(err)
	if stderr.Len() > 0 {
		pa.logger.Debugf(0, "%s: %s", pa.command, stderr.String())
	}
	return false, fmt.Errorf("%s: %s", pa.command, err)
}

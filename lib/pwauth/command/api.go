package command

import (
	"time"

	"github.com/Symantec/Dominator/lib/log"
)

type PasswordAuthenticator struct {
	command string
	args    []string
	timeout time.Duration
	logger  log.DebugLogger
}

// New creates a new PasswordAuthenticator. The command used to authenticate the
// user is command (normally the pamauth helper) and args may contain optional
// arguments to pass after the username. A helper still running after timeout
// is killed; a zero timeout waits forever. Log messages are written to
// logger. A new *PasswordAuthenticator is returned if the command exists,
// else an error is returned.
// The command should exit with 0 for a successful authentication, 1 if the
// authentication is not successful (bad username/password) and any other value
// if an error occurs.
func New(command string, args []string, timeout time.Duration,
	logger log.DebugLogger) (*PasswordAuthenticator, error) {
	return newAuthenticator(command, args, timeout, logger)
}

// PasswordAuthenticate will authenticate a user using the provided username and
// password. The password is provided on the standard input of the
// authentication command.
// It returns true if the user is authenticated, false with a nil error if the
// command rejected the credentials and false with an error for any other
// failure.
func (pa *PasswordAuthenticator) PasswordAuthenticate(username string,
	password []byte) (bool, error) {
	return pa.passwordAuthenticate(username, password)
}

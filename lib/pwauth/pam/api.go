// Package pam is a PasswordAuthenticator which runs the conversational
// bridge in process instead of through the pamauth helper.
package pam

import (
	"sync"

	"github.com/Symantec/pamauth/lib/pamsession"
)

type PasswordAuthenticator struct {
	mutex         sync.Mutex // Serialises backend sessions.
	authenticator *pamsession.Authenticator
	verbose       bool
}

// New creates a PasswordAuthenticator deciding through authenticator. When
// verbose is true every attempt is traced to the authenticator's logger.
func New(authenticator *pamsession.Authenticator,
	verbose bool) *PasswordAuthenticator {
	return &PasswordAuthenticator{authenticator: authenticator, verbose: verbose}
}

// PasswordAuthenticate will authenticate a user using the provided username
// and password. Only one attempt runs at a time. The error is always nil:
// backend failures are reported as a rejection.
func (pa *PasswordAuthenticator) PasswordAuthenticate(username string,
	password []byte) (bool, error) {
	pa.mutex.Lock()
	defer pa.mutex.Unlock()
	return pa.authenticator.Authenticate(username, string(password),
		pa.verbose), nil
}

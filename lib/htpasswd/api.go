// Package htpasswd is a pamsession backend which checks credentials against
// a file of bcrypt hashes. It converses with the caller in the same way the
// pam_unix module does, so the bridge can be exercised without a system PAM
// stack.
package htpasswd

import (
	"github.com/thejerf/abtime"
)

// The clock id used for the failure delay sleep.
const failDelayTimerID = 1

type Backend struct {
	filename string
	clock    abtime.AbstractTime
}

// New creates a Backend reading filename at the start of every session.
// Each line holds "username:bcrypt-hash"; a hash starting with "!" marks a
// locked account. Failure delays are slept through clock.
func New(filename string, clock abtime.AbstractTime) *Backend {
	if clock == nil {
		clock = abtime.NewRealTime()
	}
	return &Backend{filename: filename, clock: clock}
}

// ParseFile parses htpasswd content into a map from username to hash.
func ParseFile(content []byte) (map[string]string, error) {
	return parseFile(content)
}

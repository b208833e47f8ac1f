// Package libpam is a pamsession backend which authenticates through the
// system PAM stack.
package libpam

import (
	"errors"
)

// ErrUnsupported describes the start failure on platforms built without
// PAM support.
var ErrUnsupported = errors.New("PAM is only supported on Linux with cgo")

type Backend struct{}

// New returns a Backend which hands every session to libpam.
func New() *Backend {
	return &Backend{}
}

// Available returns ErrUnsupported if this build cannot talk to PAM.
func Available() error {
	return available()
}

// Package pamsession drives one authentication attempt against a pluggable
// backend: start a session, attach caller hints, ask for a decision and
// always end the session again.
package pamsession

import (
	"time"

	"github.com/Symantec/Dominator/lib/log"
	"github.com/Symantec/pamauth/lib/constants"
	"github.com/Symantec/pamauth/lib/pamconv"
)

// Status is a backend result code. Values follow the Linux-PAM numbering so
// that a real PAM stack can be mapped without translation tables.
type Status int

const (
	Success             Status = 0
	SystemError         Status = 4
	BufferError         Status = 5
	PermissionDenied    Status = 6
	AuthError           Status = 7
	AuthInfoUnavailable Status = 9
	UserUnknown         Status = 10
	MaxTries            Status = 11
	AccountExpired      Status = 13
	ConversationError   Status = 19
	Abort               Status = 26
)

// Item identifies a caller hint attached to a session.
type Item int

const (
	ItemTty        Item = 3
	ItemRemoteHost Item = 4
	ItemRemoteUser Item = 8
)

// Flags are passed to the decision step. The bridge always passes 0.
type Flags int

// Conversation is the capability a backend calls back into when it wants
// the caller to answer prompts. *pamconv.Adapter implements it.
type Conversation interface {
	Respond(prompts []pamconv.Prompt) ([]pamconv.Reply, error)
}

// Backend starts authentication sessions. Start may return a non-nil Handle
// together with a failure status; such a handle is still ended.
type Backend interface {
	Start(service, username string, conv Conversation) (Handle, Status)
}

// Handle is one backend session.
type Handle interface {
	SetItem(item Item, value string) Status
	FailDelay(delay time.Duration) Status
	Authenticate(flags Flags) Status
	End(last Status) Status
	// Describe returns a human readable description of status. It is only
	// used for diagnostics.
	Describe(status Status) string
}

// Params fixes the identity the bridge presents to the backend.
type Params struct {
	ServiceName string
	Tty         string
	FailDelay   time.Duration
}

// DefaultParams returns the service name, terminal label and failure delay
// used when nothing is configured.
func DefaultParams() Params {
	return Params{
		ServiceName: constants.DefaultServiceName,
		Tty:         constants.DefaultTty,
		FailDelay:   constants.DefaultFailDelay,
	}
}

type Authenticator struct {
	backend Backend
	params  Params
	logger  log.DebugLogger
}

// New creates an Authenticator which authenticates through backend. Empty
// fields in params are replaced with their defaults. Verbose diagnostics are
// written to logger.
func New(backend Backend, params Params, logger log.DebugLogger) *Authenticator {
	return newAuthenticator(backend, params, logger)
}

// Authenticate performs exactly one decision for username and password and
// returns true if the backend accepted the credentials. Every failure is
// absorbed: the caller only ever sees true or false. When verbose is true
// each step and the conversation are logged.
func (a *Authenticator) Authenticate(username, password string,
	verbose bool) bool {
	return a.authenticate(username, password, verbose)
}

func (s Status) String() string {
	return s.string()
}

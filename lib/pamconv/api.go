// Package pamconv answers the prompts of a PAM style conversation using a
// username and password supplied up front, without any real interactivity.
package pamconv

import (
	"errors"

	"github.com/Symantec/Dominator/lib/log"
)

// Style is the intent the backend declared for a single message. Values
// follow the Linux-PAM numbering.
type Style int

const (
	EchoOffRequest Style = 1
	EchoOnRequest  Style = 2
	ErrorMessage   Style = 3
	InfoMessage    Style = 4
)

// ReplyStatus is the per message result code handed back to the backend.
type ReplyStatus int

const (
	Ok ReplyStatus = iota
	ConversationError
)

// ErrConversation is returned by Respond when a batch contains a message
// style it does not understand. The whole batch is aborted.
var ErrConversation = errors.New("pamconv: conversation error")

type Prompt struct {
	Style Style
	Text  string
}

// Reply answers one Prompt. Value is only meaningful when HasValue is true.
type Reply struct {
	Status   ReplyStatus
	Value    string
	HasValue bool
}

// Adapter holds the credentials for a single authentication attempt. It is
// never modified after New returns.
type Adapter struct {
	username string
	password string
	verbose  bool
	logger   log.DebugLogger
}

// New creates an Adapter which answers echo-on prompts with username and
// echo-off prompts with password. When verbose is true every prompt and its
// answer is written to logger, with the password redacted.
func New(username, password string, verbose bool,
	logger log.DebugLogger) *Adapter {
	return &Adapter{
		username: username,
		password: password,
		verbose:  verbose,
		logger:   logger,
	}
}

// Respond produces exactly one Reply per Prompt, in the order given. If any
// Prompt has an unrecognised style no replies are returned and the error
// wraps ErrConversation.
func (a *Adapter) Respond(prompts []Prompt) ([]Reply, error) {
	return a.respond(prompts)
}

func (s Style) String() string {
	return s.string()
}

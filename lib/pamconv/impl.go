package pamconv

import (
	"fmt"
)

const redactedPassword = "<redacted>"

func (a *Adapter) respond(prompts []Prompt) ([]Reply, error) {
	replies := make([]Reply, len(prompts))
	for index, prompt := range prompts {
		switch prompt.Style {
		case EchoOnRequest:
			replies[index] = Reply{Status: Ok, Value: a.username, HasValue: true}
			a.tracef("PAM %s(%q) ==> %q", prompt.Style, prompt.Text, a.username)
		case EchoOffRequest:
			replies[index] = Reply{Status: Ok, Value: a.password, HasValue: true}
			a.tracef("PAM %s(%q) ==> %s", prompt.Style, prompt.Text,
				redactedPassword)
		case InfoMessage, ErrorMessage:
			replies[index] = Reply{Status: Ok}
			a.tracef("PAM %s(%q) ==> ignored", prompt.Style, prompt.Text)
		default:
			a.tracef("PAM %s(%q) ==> conversation error", prompt.Style,
				prompt.Text)
			return nil, fmt.Errorf("%w: unknown style %d at position %d",
				ErrConversation, int(prompt.Style), index)
		}
	}
	return replies, nil
}

func (a *Adapter) tracef(format string, v ...interface{}) {
	if a.verbose && a.logger != nil {
		a.logger.Printf("     "+format, v...)
	}
}

func (s Style) string() string {
	switch s {
	case EchoOffRequest:
		return "ECHO_OFF"
	case EchoOnRequest:
		return "ECHO_ON"
	case ErrorMessage:
		return "ERROR_MSG"
	case InfoMessage:
		return "TEXT_INFO"
	}
	return fmt.Sprintf("unknown %d", int(s))
}

//go:build linux && cgo

package libpam

import (
	"errors"
	"time"

	"github.com/Symantec/pamauth/lib/pamconv"
	"github.com/Symantec/pamauth/lib/pamsession"
	"github.com/msteinert/pam/v2"
)

func available() error {
	return nil
}

type handle struct {
	transaction *pam.Transaction
}

// Start opens a PAM transaction for service and username. The binding hands
// the conversation one message at a time; an error for any message makes it
// abort the whole batch with PAM_CONV_ERR.
func (b *Backend) Start(service, username string,
	conv pamsession.Conversation) (pamsession.Handle, pamsession.Status) {
	transaction, err := pam.StartFunc(service, username,
		func(style pam.Style, message string) (string, error) {
			replies, err := conv.Respond([]pamconv.Prompt{
				{Style: convertStyle(style), Text: message},
			})
			if err != nil {
				return "", err
			}
			return replies[0].Value, nil
		})
	if err != nil {
		return nil, statusFromError(err)
	}
	return &handle{transaction}, pamsession.Success
}

func (h *handle) SetItem(item pamsession.Item, value string) pamsession.Status {
	var pamItem pam.Item
	switch item {
	case pamsession.ItemTty:
		pamItem = pam.Tty
	case pamsession.ItemRemoteHost:
		pamItem = pam.Rhost
	case pamsession.ItemRemoteUser:
		pamItem = pam.Ruser
	default:
		return pamsession.SystemError
	}
	return statusFromError(h.transaction.SetItem(pamItem, value))
}

// FailDelay is not exposed by the binding. The PAM modules still apply
// their own default delays.
func (h *handle) FailDelay(delay time.Duration) pamsession.Status {
	return pamsession.SystemError
}

func (h *handle) Authenticate(flags pamsession.Flags) pamsession.Status {
	return statusFromError(h.transaction.Authenticate(pam.Flags(flags)))
}

// End releases the transaction. The binding passes its own record of the
// last status to pam_end, which is the same value as last.
func (h *handle) End(last pamsession.Status) pamsession.Status {
	return statusFromError(h.transaction.End())
}

func (h *handle) Describe(status pamsession.Status) string {
	if status == pamsession.Success {
		return "Success"
	}
	return pam.Error(status).Error()
}

func convertStyle(style pam.Style) pamconv.Style {
	switch style {
	case pam.PromptEchoOff:
		return pamconv.EchoOffRequest
	case pam.PromptEchoOn:
		return pamconv.EchoOnRequest
	case pam.ErrorMsg:
		return pamconv.ErrorMessage
	case pam.TextInfo:
		return pamconv.InfoMessage
	}
	return pamconv.Style(style)
}

func statusFromError(err error) pamsession.Status {
	if err == nil {
		return pamsession.Success
	}
	var pamErr pam.Error
	if errors.As(err, &pamErr) {
		return pamsession.Status(pamErr)
	}
	return pamsession.SystemError
}

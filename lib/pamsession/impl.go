package pamsession

import (
	"fmt"

	"github.com/Symantec/Dominator/lib/log"
	"github.com/Symantec/pamauth/lib/pamconv"
)

func newAuthenticator(backend Backend, params Params,
	logger log.DebugLogger) *Authenticator {
	defaults := DefaultParams()
	if params.ServiceName == "" {
		params.ServiceName = defaults.ServiceName
	}
	if params.Tty == "" {
		params.Tty = defaults.Tty
	}
	if params.FailDelay <= 0 {
		params.FailDelay = defaults.FailDelay
	}
	return &Authenticator{backend: backend, params: params, logger: logger}
}

func (a *Authenticator) authenticate(username, password string,
	verbose bool) bool {
	conv := pamconv.New(username, password, verbose, a.logger)
	handle, status := a.backend.Start(a.params.ServiceName, username, conv)
	a.tracef(verbose, " start(%q, %q, ...) ==> %d (%s)",
		a.params.ServiceName, username, status, describe(handle, status))
	if handle != nil {
		// status is read when the deferred call runs, so End sees the
		// outcome of the last step that ran.
		defer func() { a.end(handle, status, verbose) }()
	}
	if status != Success || handle == nil {
		return false
	}
	a.attachContext(handle, username, verbose)
	status = handle.Authenticate(0)
	a.tracef(verbose, "   authenticate(...) ==> %d (%s)",
		status, handle.Describe(status))
	return status == Success
}

// Hints are advisory: failures are logged and the attempt proceeds.
func (a *Authenticator) attachContext(handle Handle, username string,
	verbose bool) {
	itemStatus := handle.SetItem(ItemTty, a.params.Tty)
	a.tracef(verbose, "   set_item(TTY, %q) ==> %d (%s)",
		a.params.Tty, itemStatus, handle.Describe(itemStatus))
	itemStatus = handle.SetItem(ItemRemoteUser, username)
	a.tracef(verbose, "   set_item(RUSER, %q) ==> %d (%s)",
		username, itemStatus, handle.Describe(itemStatus))
	delayStatus := handle.FailDelay(a.params.FailDelay)
	a.tracef(verbose, "   fail_delay(%s) ==> %d (%s)",
		a.params.FailDelay, delayStatus, handle.Describe(delayStatus))
}

func (a *Authenticator) end(handle Handle, last Status, verbose bool) {
	endStatus := handle.End(last)
	result := "Success"
	if endStatus != Success {
		result = "Failure"
	}
	a.tracef(verbose, " end(...) ==> %d (%s)", endStatus, result)
}

func (a *Authenticator) tracef(verbose bool, format string,
	v ...interface{}) {
	if verbose && a.logger != nil {
		a.logger.Printf(format, v...)
	}
}

func describe(handle Handle, status Status) string {
	if handle == nil {
		return status.String()
	}
	return handle.Describe(status)
}

func (s Status) string() string {
	switch s {
	case Success:
		return "Success"
	case SystemError:
		return "System error"
	case BufferError:
		return "Memory buffer error"
	case PermissionDenied:
		return "Permission denied"
	case AuthError:
		return "Authentication failure"
	case AuthInfoUnavailable:
		return "Authentication service cannot retrieve authentication info"
	case UserUnknown:
		return "User not known to the underlying authentication module"
	case MaxTries:
		return "Have exhausted maximum number of retries for service"
	case AccountExpired:
		return "User account has expired"
	case ConversationError:
		return "Conversation error"
	case Abort:
		return "Critical error - immediate abort"
	}
	return fmt.Sprintf("Unknown PAM error %d", int(s))
}

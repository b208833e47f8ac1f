//go:build !linux || !cgo

package libpam

import (
	"github.com/Symantec/pamauth/lib/pamsession"
)

func (b *Backend) Start(service, username string,
	conv pamsession.Conversation) (pamsession.Handle, pamsession.Status) {
	return nil, pamsession.SystemError
}

func available() error {
	return ErrUnsupported
}

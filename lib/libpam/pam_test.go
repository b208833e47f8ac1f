//go:build linux && cgo

package libpam

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Symantec/pamauth/lib/pamconv"
	"github.com/Symantec/pamauth/lib/pamsession"
	"github.com/msteinert/pam/v2"
)

func TestConvertStyle(t *testing.T) {
	tests := map[pam.Style]pamconv.Style{
		pam.PromptEchoOff: pamconv.EchoOffRequest,
		pam.PromptEchoOn:  pamconv.EchoOnRequest,
		pam.ErrorMsg:      pamconv.ErrorMessage,
		pam.TextInfo:      pamconv.InfoMessage,
	}
	for style, expected := range tests {
		if got := convertStyle(style); got != expected {
			t.Errorf("style %d: got %s, expected %s", style, got, expected)
		}
	}
	if got := convertStyle(pam.Style(7)); got.String() != "unknown 7" {
		t.Errorf("binary prompt converted to %s", got)
	}
}

func TestStatusFromError(t *testing.T) {
	if status := statusFromError(nil); status != pamsession.Success {
		t.Errorf("nil error mapped to %d", status)
	}
	if status := statusFromError(pam.ErrAuth); status != pamsession.AuthError {
		t.Errorf("ErrAuth mapped to %d", status)
	}
	wrapped := fmt.Errorf("authenticate: %w", pam.ErrUserUnknown)
	if status := statusFromError(wrapped); status != pamsession.UserUnknown {
		t.Errorf("wrapped ErrUserUnknown mapped to %d", status)
	}
	if status := statusFromError(errors.New("boom")); status != pamsession.SystemError {
		t.Errorf("foreign error mapped to %d", status)
	}
}

func TestAvailable(t *testing.T) {
	if err := Available(); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
}

package htpasswd

import (
	"bufio"
	"bytes"
	"fmt"
	"io/ioutil"
	"strings"
	"time"

	"github.com/Symantec/pamauth/lib/pamconv"
	"github.com/Symantec/pamauth/lib/pamsession"
	"github.com/thejerf/abtime"
	"golang.org/x/crypto/bcrypt"
)

const lockedPrefix = "!"

type handle struct {
	clock     abtime.AbstractTime
	users     map[string]string
	username  string
	conv      pamsession.Conversation
	items     map[pamsession.Item]string
	failDelay time.Duration
	ended     bool
}

func parseFile(content []byte) (map[string]string, error) {
	users := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(content))
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, ":", 2)
		if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("line %d: malformed entry", lineNumber)
		}
		users[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

func (b *Backend) Start(service, username string,
	conv pamsession.Conversation) (pamsession.Handle, pamsession.Status) {
	content, err := ioutil.ReadFile(b.filename)
	if err != nil {
		return nil, pamsession.AuthInfoUnavailable
	}
	users, err := parseFile(content)
	if err != nil {
		return nil, pamsession.AuthInfoUnavailable
	}
	return &handle{
		clock:    b.clock,
		users:    users,
		username: username,
		conv:     conv,
		items:    make(map[pamsession.Item]string),
	}, pamsession.Success
}

func (h *handle) SetItem(item pamsession.Item, value string) pamsession.Status {
	switch item {
	case pamsession.ItemTty, pamsession.ItemRemoteHost,
		pamsession.ItemRemoteUser:
		h.items[item] = value
		return pamsession.Success
	}
	return pamsession.SystemError
}

// FailDelay keeps the largest delay requested, as pam_fail_delay does.
func (h *handle) FailDelay(delay time.Duration) pamsession.Status {
	if delay > h.failDelay {
		h.failDelay = delay
	}
	return pamsession.Success
}

func (h *handle) Authenticate(flags pamsession.Flags) pamsession.Status {
	status := h.authenticate()
	if status != pamsession.Success && h.failDelay > 0 {
		h.clock.Sleep(h.failDelay, failDelayTimerID)
	}
	return status
}

func (h *handle) authenticate() pamsession.Status {
	if h.username == "" {
		username, status := h.ask(pamconv.EchoOnRequest, "login: ")
		if status != pamsession.Success {
			return status
		}
		h.username = username
	}
	password, status := h.ask(pamconv.EchoOffRequest, "Password: ")
	if status != pamsession.Success {
		return status
	}
	hash, ok := h.users[h.username]
	if !ok {
		return pamsession.UserUnknown
	}
	if strings.HasPrefix(hash, lockedPrefix) {
		return pamsession.PermissionDenied
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return pamsession.AuthError
	}
	return pamsession.Success
}

func (h *handle) ask(style pamconv.Style,
	text string) (string, pamsession.Status) {
	replies, err := h.conv.Respond([]pamconv.Prompt{{Style: style, Text: text}})
	if err != nil || len(replies) != 1 {
		return "", pamsession.ConversationError
	}
	if replies[0].Status != pamconv.Ok || !replies[0].HasValue {
		return "", pamsession.ConversationError
	}
	return replies[0].Value, pamsession.Success
}

func (h *handle) End(last pamsession.Status) pamsession.Status {
	if h.ended {
		return pamsession.SystemError
	}
	h.ended = true
	h.users = nil
	return pamsession.Success
}

func (h *handle) Describe(status pamsession.Status) string {
	return status.String()
}

package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/Symantec/Dominator/lib/log"
	"github.com/Symantec/pamauth/lib/authenticate"
	"github.com/Symantec/pamauth/lib/authenticate/command"
)

const (
	statusSuccess = "--status=success"
	statusFailed  = "--status=fail"
)

type scriptState struct {
	config        *configurationType
	authenticator authenticate.Authenticator
	logger        log.Logger
}

func (state *scriptState) dispatch(call string, inputs map[string]string,
	w io.Writer) error {
	switch call {
	case "userLogin":
		return state.userLogin(inputs, w)
	case "getUserInfo":
		return state.getUserInfo(inputs, w)
	case "getUsers":
		return state.getUsers(w)
	case "getSearchFilter":
		return state.getSearchFilter(inputs, w)
	}
	fmt.Fprintln(w, "ERROR unknown function call: "+call)
	return fmt.Errorf("unknown function call: %s", call)
}

func (state *scriptState) userLogin(inputs map[string]string,
	w io.Writer) error {
	if state.authenticator == nil {
		authenticator, err := command.New(state.config.PamauthCommand, nil,
			state.logger)
		if err != nil {
			fmt.Fprintln(w, statusFailed)
			return err
		}
		state.authenticator = authenticator
	}
	username := inputs["username"]
	if username == "" ||
		!state.authenticator.Authenticate(username, inputs["password"]) {
		fmt.Fprintln(w, statusFailed)
		return nil
	}
	fmt.Fprintln(w, statusSuccess)
	return nil
}

func (state *scriptState) formatUserInfo(userID, username,
	realname string) string {
	roles := ""
	for _, role := range state.config.rolesFor(username) {
		roles += role + ":"
	}
	return fmt.Sprintf(" --userInfo=%s;%s;%s;%s", userID, username, realname,
		roles)
}

func (state *scriptState) getUserInfo(inputs map[string]string,
	w io.Writer) error {
	username := inputs["username"]
	if username == "" {
		fmt.Fprintln(w, statusFailed)
		return nil
	}
	fmt.Fprintln(w, statusSuccess+state.formatUserInfo(username, username,
		username))
	return nil
}

func (state *scriptState) getUsers(w io.Writer) error {
	content, err := ioutil.ReadFile(state.config.PasswdFilename)
	if err != nil {
		fmt.Fprintln(w, statusFailed)
		return err
	}
	output := statusSuccess
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), ":")
		if len(fields) < 7 {
			continue
		}
		if !strings.Contains(fields[6], state.config.LoginShellSubstring) {
			continue
		}
		realname := fields[4]
		if realname == "" {
			realname = fields[0]
		}
		output += state.formatUserInfo(fields[2], fields[0], realname)
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Fprintln(w, output)
	return nil
}

func (state *scriptState) getSearchFilter(inputs map[string]string,
	w io.Writer) error {
	output := statusSuccess
	for _, filter := range state.config.SearchFilters[inputs["username"]] {
		output += " --search_filter=" + filter
	}
	fmt.Fprintln(w, output)
	return nil
}

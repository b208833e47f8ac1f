package main

import (
	"bytes"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Symantec/Dominator/lib/log/testlogger"
)

const testPasswd = `root:x:0:0:root:/root:/bin/bash
daemon:x:1:1:daemon:/usr/sbin:/usr/sbin/nologin
alice:x:1000:1000:Alice Liddell,,,:/home/alice:/bin/bash
bob:x:1001:1001::/home/bob:/bin/bash
broken:x:1002
`

type fakeAuthenticator struct {
	username, password string
}

func (f fakeAuthenticator) Authenticate(username, password string) bool {
	return username == f.username && password == f.password
}

func newTestState(t *testing.T) *scriptState {
	passwd := filepath.Join(t.TempDir(), "passwd")
	if err := ioutil.WriteFile(passwd, []byte(testPasswd), 0644); err != nil {
		t.Fatal(err)
	}
	config, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	config.PasswdFilename = passwd
	config.UserRoles = map[string][]string{"bob": {"user", "power"}}
	config.SearchFilters = map[string][]string{
		"bob": {"host=web*", "sourcetype=access"},
	}
	return &scriptState{
		config:        config,
		authenticator: fakeAuthenticator{"alice", "correct horse"},
		logger:        testlogger.New(t),
	}
}

func call(t *testing.T, state *scriptState, name, input string) (string, error) {
	inputs, err := readInputs(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	output := &bytes.Buffer{}
	err = state.dispatch(name, inputs, output)
	return strings.TrimSuffix(output.String(), "\n"), err
}

func TestReadInputs(t *testing.T) {
	inputs, err := readInputs(strings.NewReader(
		"--username=alice\r\n--password= spaced = pass \nnoise\n--flag\n"))
	if err != nil {
		t.Fatal(err)
	}
	if inputs["username"] != "alice" {
		t.Errorf("username: %q", inputs["username"])
	}
	if inputs["password"] != " spaced = pass " {
		t.Errorf("password: %q", inputs["password"])
	}
	if len(inputs) != 2 {
		t.Errorf("unexpected inputs: %v", inputs)
	}
}

func TestUserLogin(t *testing.T) {
	state := newTestState(t)
	output, err := call(t, state, "userLogin",
		"--username=alice\n--password=correct horse\n")
	if err != nil || output != statusSuccess {
		t.Errorf("good login: %q %v", output, err)
	}
	output, err = call(t, state, "userLogin",
		"--username=alice\n--password=wrong\n")
	if err != nil || output != statusFailed {
		t.Errorf("bad login: %q %v", output, err)
	}
	output, _ = call(t, state, "userLogin", "--password=correct horse\n")
	if output != statusFailed {
		t.Errorf("login without username: %q", output)
	}
}

func TestUserLoginMissingHelper(t *testing.T) {
	state := newTestState(t)
	state.authenticator = nil
	state.config.PamauthCommand = "/should-not-exist/pamauth"
	output, err := call(t, state, "userLogin",
		"--username=alice\n--password=correct horse\n")
	if err == nil || output != statusFailed {
		t.Errorf("missing helper: %q %v", output, err)
	}
}

func TestGetUserInfo(t *testing.T) {
	state := newTestState(t)
	output, err := call(t, state, "getUserInfo", "--username=alice\n")
	if err != nil {
		t.Fatal(err)
	}
	expected := "--status=success --userInfo=alice;alice;alice;admin:"
	if output != expected {
		t.Errorf("got %q, expected %q", output, expected)
	}
	output, _ = call(t, state, "getUserInfo", "--username=bob\n")
	expected = "--status=success --userInfo=bob;bob;bob;user:power:"
	if output != expected {
		t.Errorf("got %q, expected %q", output, expected)
	}
}

func TestGetUsers(t *testing.T) {
	state := newTestState(t)
	output, err := call(t, state, "getUsers", "")
	if err != nil {
		t.Fatal(err)
	}
	expected := "--status=success" +
		" --userInfo=0;root;root;admin:" +
		" --userInfo=1000;alice;Alice Liddell,,,;admin:" +
		" --userInfo=1001;bob;bob;user:power:"
	if output != expected {
		t.Errorf("got %q\nexpected %q", output, expected)
	}
}

func TestGetSearchFilter(t *testing.T) {
	state := newTestState(t)
	output, _ := call(t, state, "getSearchFilter", "--username=bob\n")
	expected := "--status=success --search_filter=host=web*" +
		" --search_filter=sourcetype=access"
	if output != expected {
		t.Errorf("got %q, expected %q", output, expected)
	}
	output, _ = call(t, state, "getSearchFilter", "--username=alice\n")
	if output != statusSuccess {
		t.Errorf("got %q", output)
	}
}

func TestUnknownCall(t *testing.T) {
	state := newTestState(t)
	output, err := call(t, state, "deleteUser", "")
	if err == nil {
		t.Error("unknown call did not fail")
	}
	if output != "ERROR unknown function call: deleteUser" {
		t.Errorf("got %q", output)
	}
}

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "config.yml")
	content := `pamauth_command: /usr/local/bin/pamauth
default_roles: [user]
user_roles:
  alice: [admin, can_delete]
`
	if err := ioutil.WriteFile(filename, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	config, err := loadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}
	if config.PamauthCommand != "/usr/local/bin/pamauth" {
		t.Errorf("command: %s", config.PamauthCommand)
	}
	if config.PasswdFilename != "/etc/passwd" {
		t.Errorf("passwd default lost: %s", config.PasswdFilename)
	}
	if roles := config.rolesFor("carol"); len(roles) != 1 || roles[0] != "user" {
		t.Errorf("default roles: %v", roles)
	}
	if roles := config.rolesFor("alice"); len(roles) != 2 {
		t.Errorf("alice roles: %v", roles)
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing file did not fail")
	}
}

package command

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/Symantec/Dominator/lib/log/testlogger"
)

func writeScript(t *testing.T, body string) string {
	filename := filepath.Join(t.TempDir(), "helper")
	if err := ioutil.WriteFile(filename, []byte("#!/bin/sh\n"+body),
		0700); err != nil {
		t.Fatal(err)
	}
	return filename
}

func TestTrueCommand(t *testing.T) {
	pa, err := New("true", nil, 0, testlogger.New(t))
	if err != nil {
		t.Fatalf("unable to create PasswordAuthenticator")
	}
	if ok, err := pa.PasswordAuthenticate("u", []byte("p")); !ok {
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		} else {
			t.Fatalf("true did not return 0")
		}
	}
}

func TestFalseCommand(t *testing.T) {
	pa, err := New("false", nil, 0, testlogger.New(t))
	if err != nil {
		t.Fatalf("unable to create PasswordAuthenticator")
	}
	if ok, err := pa.PasswordAuthenticate("u", []byte("p")); !ok {
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
	} else {
		t.Fatalf("false did not return 1")
	}
}

func TestErrorExitCode(t *testing.T) {
	pa, err := New(writeScript(t, "echo broken >&2\nexit 3\n"), nil, 0,
		testlogger.New(t))
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := pa.PasswordAuthenticate("u", []byte("p")); ok || err == nil {
		t.Fatalf("exit 3 gave ok=%v err=%v", ok, err)
	}
}

func TestHelperProtocol(t *testing.T) {
	// Accept only alice with correct-horse, read exactly as pamauth would.
	script := `read -r password
[ "$1" = alice ] && [ "$password" = correct-horse ] && exit 0
exit 1
`
	pa, err := New(writeScript(t, script), nil, 0, testlogger.New(t))
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := pa.PasswordAuthenticate("alice",
		[]byte("correct-horse\n")); !ok || err != nil {
		t.Fatalf("good password: ok=%v err=%v", ok, err)
	}
	if ok, err := pa.PasswordAuthenticate("alice",
		[]byte("wrong\n")); ok || err != nil {
		t.Fatalf("bad password: ok=%v err=%v", ok, err)
	}
}

func TestTimeout(t *testing.T) {
	pa, err := New(writeScript(t, "exec sleep 10\n"), nil,
		50*time.Millisecond, testlogger.New(t))
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := pa.PasswordAuthenticate("u", []byte("p")); ok || err == nil {
		t.Fatalf("hung helper gave ok=%v err=%v", ok, err)
	}
}

func TestMissingCommand(t *testing.T) {
	_, err := New("/should-not-exist/test.foo-bar_baz", nil, 0,
		testlogger.New(t))
	if err == nil {
		t.Fatalf("missing command did not generate error")
	}
}

func TestBrokenCommand(t *testing.T) {
	pa, err := New("true", nil, 0, testlogger.New(t))
	if err != nil {
		t.Fatalf("unable to create PasswordAuthenticator")
	}
	pa.command = "/should-not-exist/test.foo-bar_baz"
	if _, err := pa.PasswordAuthenticate("u", []byte("p")); err == nil {
		t.Fatalf("missing command did not generate error")
	}
}

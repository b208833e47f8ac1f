// pamauth checks a username and password against PAM. It is meant to be
// installed setuid root and driven by another program (such as Splunk
// scripted authentication) which writes the password on standard input.
//
// Usage: pamauth [-config file] <login>
//
// The exit status is 0 if the credentials were accepted and 1 otherwise.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Symantec/Dominator/lib/log"
	"github.com/Symantec/Dominator/lib/log/cmdlogger"
	"github.com/Symantec/pamauth/lib/bridgeconfig"
	"github.com/Symantec/pamauth/lib/pamsession"
	"github.com/mattn/go-isatty"
)

const (
	exitAccepted = 0
	exitRejected = 1
)

var (
	Version    = "No version provided"
	configFile = flag.String("config", "",
		"Optional configuration file (service name, backend)")
)

func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s (version %s): %s [flags] <login>\n",
		os.Args[0], Version, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = Usage
	flag.Parse()
	logger := cmdlogger.New()
	interactive := isatty.IsTerminal(os.Stdin.Fd()) ||
		isatty.IsCygwinTerminal(os.Stdin.Fd())
	os.Exit(run(flag.Args(), *configFile, os.Stdin, interactive, logger))
}

func run(args []string, configFilename string, stdin io.Reader,
	interactive bool, logger log.DebugLogger) int {
	if len(args) != 1 {
		flag.Usage()
		return exitRejected
	}
	if interactive {
		logger.Printf("%s: cannot be used on a tty", os.Args[0])
		return exitRejected
	}
	config, err := bridgeconfig.LoadConfig(configFilename)
	if err != nil {
		logger.Printf("Cannot load configuration: %s", err)
		return exitRejected
	}
	backend, err := config.NewBackend()
	if err != nil {
		logger.Printf("Cannot create backend: %s", err)
		return exitRejected
	}
	password, err := readPassword(stdin)
	if err != nil {
		logger.Printf("Cannot read password: %s", err)
		return exitRejected
	}
	auth := pamsession.New(backend, config.Params(), logger)
	if auth.Authenticate(args[0], password, false) {
		return exitAccepted
	}
	return exitRejected
}

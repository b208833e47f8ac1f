// pamcheck interactively tries a login through the bridge and traces every
// step of the conversation to standard error. It is a debugging aid for PAM
// service configurations; passwords are never printed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/Symantec/Dominator/lib/log/debuglogger"
	"github.com/Symantec/pamauth/lib/bridgeconfig"
	"github.com/Symantec/pamauth/lib/pamsession"
	"github.com/howeyc/gopass"
)

var (
	Version    = "No version provided"
	configFile = flag.String("config", "", "Optional configuration file")
	quiet      = flag.Bool("quiet", false, "Do not trace the conversation")
)

func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s (version %s): %s [flags] [login]\n",
		os.Args[0], Version, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = Usage
	flag.Parse()
	logger := debuglogger.New(stdlog.New(os.Stderr, "", stdlog.LstdFlags))
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}
	config, err := bridgeconfig.LoadConfig(*configFile)
	if err != nil {
		logger.Fatalf("Cannot load configuration: %s\n", err)
	}
	backend, err := config.NewBackend()
	if err != nil {
		logger.Fatalf("Cannot create backend: %s\n", err)
	}
	username := flag.Arg(0)
	if username == "" {
		username, err = promptLogin(os.Stdout, os.Stdin)
		if err != nil {
			logger.Fatal(err)
		}
	}
	fmt.Printf("Password for %s: ", username)
	password, err := gopass.GetPasswd()
	if err != nil {
		logger.Fatal(err)
	}
	auth := pamsession.New(backend, config.Params(), logger)
	if !auth.Authenticate(username, string(password), !*quiet) {
		fmt.Println("Authentication failed")
		os.Exit(1)
	}
	fmt.Println("Authentication succeeded")
}

func promptLogin(w io.Writer, r io.Reader) (string, error) {
	fmt.Fprint(w, "login: ")
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	username := strings.TrimRight(line, "\r\n")
	if username == "" {
		return "", fmt.Errorf("no login given")
	}
	return username, nil
}

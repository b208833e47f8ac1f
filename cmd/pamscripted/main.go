// pamscripted implements the Splunk scripted authentication interface on top
// of the pamauth helper.
//
// Splunk runs it as "pamscripted <call>" and writes "--key=value" lines on
// standard input. Supported calls are userLogin, getUserInfo, getUsers and
// getSearchFilter.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Symantec/Dominator/lib/log/cmdlogger"
)

var (
	Version    = "No version provided"
	configFile = flag.String("config", "",
		"Configuration file with the helper path and role mappings")
)

func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s (version %s): %s [flags] <call>\n",
		os.Args[0], Version, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = Usage
	flag.Parse()
	logger := cmdlogger.New()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	configuration, err := loadConfig(*configFile)
	if err != nil {
		logger.Fatalf("Cannot load configuration: %s\n", err)
	}
	inputs, err := readInputs(os.Stdin)
	if err != nil {
		logger.Fatalf("Cannot read inputs: %s\n", err)
	}
	state := &scriptState{config: configuration, logger: logger}
	if err := state.dispatch(flag.Arg(0), inputs, os.Stdout); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

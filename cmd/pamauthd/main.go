// pamauthd answers HTTP auth requests (as issued by nginx auth_request and
// similar proxies) by checking the basic authentication credentials of each
// request through the PAM bridge.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Symantec/Dominator/lib/log"
	"github.com/Symantec/Dominator/lib/log/serverlogger"
	"github.com/Symantec/pamauth/lib/constants"
	"github.com/Symantec/pamauth/lib/pamsession"
	"github.com/Symantec/pamauth/lib/pwauth"
	"github.com/Symantec/pamauth/lib/pwauth/command"
	"github.com/Symantec/pamauth/lib/pwauth/pam"
	"github.com/Symantec/tricorder/go/tricorder"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Version    = "No version provided"
	configFile = flag.String("config", constants.DefaultPamauthdConfigFile,
		"Configuration file")
)

func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of %s (version %s):\n", os.Args[0], Version)
	flag.PrintDefaults()
}

func newAuthenticator(config *configurationType,
	logger log.DebugLogger) (pwauth.PasswordAuthenticator, string, error) {
	if config.AuthCommand != "" {
		authenticator, err := command.New(config.AuthCommand, nil,
			config.AuthTimeout, logger)
		if err != nil {
			return nil, "", err
		}
		return authenticator, "command", nil
	}
	backend, err := config.Bridge.NewBackend()
	if err != nil {
		return nil, "", err
	}
	session := pamsession.New(backend, config.Bridge.Params(), logger)
	return pam.New(session, config.Verbose), config.Bridge.Backend, nil
}

func main() {
	flag.Usage = Usage
	flag.Parse()
	tricorder.RegisterFlags()
	logger := serverlogger.New("")
	configuration, err := loadConfig(*configFile)
	if err != nil {
		logger.Fatalf("Cannot load configuration: %s\n", err)
	}
	authenticator, backendName, err := newAuthenticator(configuration, logger)
	if err != nil {
		logger.Fatalf("Cannot create authenticator: %s\n", err)
	}
	http.Handle(authPath, &authHandler{
		authenticator: authenticator,
		backendName:   backendName,
		realm:         configuration.Realm,
		logger:        logger,
	})
	http.Handle(metricsPath, promhttp.Handler())
	server := &http.Server{
		Addr:         configuration.HttpAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: configuration.AuthTimeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}
	logger.Printf("serving %s on %s", authPath, configuration.HttpAddress)
	if err := server.ListenAndServe(); err != nil {
		logger.Fatalf("Unable to serve: %s\n", err)
	}
}

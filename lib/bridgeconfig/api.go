// Package bridgeconfig loads the settings shared by the bridge binaries and
// builds the configured backend.
package bridgeconfig

import (
	"time"

	"github.com/Symantec/pamauth/lib/pamsession"
)

const (
	BackendPAM      = "pam"
	BackendHtpasswd = "htpasswd"
)

type Config struct {
	ServiceName      string        `yaml:"service_name"`
	Tty              string        `yaml:"tty"`
	FailDelay        time.Duration `yaml:"fail_delay"`
	Backend          string        `yaml:"backend"`
	HtpasswdFilename string        `yaml:"htpasswd_filename"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return defaultConfig()
}

// LoadConfig reads a YAML configuration from filename. Settings absent from
// the file keep their defaults. An empty filename yields the defaults.
func LoadConfig(filename string) (Config, error) {
	return loadConfig(filename)
}

// Check verifies that the configuration names a usable backend.
func (c Config) Check() error {
	return c.check()
}

// Params returns the session parameters derived from c.
func (c Config) Params() pamsession.Params {
	return pamsession.Params{
		ServiceName: c.ServiceName,
		Tty:         c.Tty,
		FailDelay:   c.FailDelay,
	}
}

// NewBackend constructs the backend named by c.
func (c Config) NewBackend() (pamsession.Backend, error) {
	return c.newBackend()
}

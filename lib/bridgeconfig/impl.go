package bridgeconfig

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/Symantec/pamauth/lib/constants"
	"github.com/Symantec/pamauth/lib/htpasswd"
	"github.com/Symantec/pamauth/lib/libpam"
	"github.com/Symantec/pamauth/lib/pamsession"
	"gopkg.in/yaml.v2"
)

func defaultConfig() Config {
	return Config{
		ServiceName: constants.DefaultServiceName,
		Tty:         constants.DefaultTty,
		FailDelay:   constants.DefaultFailDelay,
		Backend:     BackendPAM,
	}
}

func loadConfig(filename string) (Config, error) {
	config := defaultConfig()
	if filename == "" {
		return config, nil
	}
	source, err := ioutil.ReadFile(filename)
	if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(source, &config); err != nil {
		return config, fmt.Errorf("cannot parse config file %s: %s",
			filename, err)
	}
	return config, config.check()
}

func (c Config) check() error {
	switch c.Backend {
	case BackendPAM:
		return nil
	case BackendHtpasswd:
		if c.HtpasswdFilename == "" {
			return errors.New("htpasswd backend needs htpasswd_filename")
		}
		return nil
	}
	return fmt.Errorf("unknown backend: %q", c.Backend)
}

func (c Config) newBackend() (pamsession.Backend, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if c.Backend == BackendHtpasswd {
		return htpasswd.New(c.HtpasswdFilename, nil), nil
	}
	if err := libpam.Available(); err != nil {
		return nil, err
	}
	return libpam.New(), nil
}

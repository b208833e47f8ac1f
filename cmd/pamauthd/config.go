package main

import (
	"io/ioutil"
	"time"

	"github.com/Symantec/pamauth/lib/bridgeconfig"
	"github.com/Symantec/pamauth/lib/constants"
	"gopkg.in/yaml.v2"
)

type configurationType struct {
	HttpAddress string              `yaml:"http_address"`
	Realm       string              `yaml:"realm"`
	AuthCommand string              `yaml:"auth_command"`
	AuthTimeout time.Duration       `yaml:"auth_timeout"`
	Verbose     bool                `yaml:"verbose"`
	Bridge      bridgeconfig.Config `yaml:"bridge"`
}

func loadConfig(filename string) (*configurationType, error) {
	config := &configurationType{
		HttpAddress: constants.DefaultPamauthdHttpAddress,
		Realm:       constants.DefaultPamauthdRealm,
		AuthTimeout: 30 * time.Second,
		Bridge:      bridgeconfig.Default(),
	}
	rawConfig, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(rawConfig, config); err != nil {
		return nil, err
	}
	if config.AuthCommand == "" {
		if err := config.Bridge.Check(); err != nil {
			return nil, err
		}
	}
	return config, nil
}

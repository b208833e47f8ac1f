package main

import (
	"io/ioutil"

	"github.com/Symantec/pamauth/lib/constants"
	"gopkg.in/yaml.v2"
)

type configurationType struct {
	PamauthCommand      string              `yaml:"pamauth_command"`
	PasswdFilename      string              `yaml:"passwd_filename"`
	LoginShellSubstring string              `yaml:"login_shell_substring"`
	DefaultRoles        []string            `yaml:"default_roles"`
	UserRoles           map[string][]string `yaml:"user_roles"`
	SearchFilters       map[string][]string `yaml:"search_filters"`
}

func loadConfig(filename string) (*configurationType, error) {
	config := &configurationType{
		PamauthCommand:      constants.DefaultPamauthCommand,
		PasswdFilename:      constants.DefaultPasswdFilename,
		LoginShellSubstring: constants.DefaultLoginShellSubstring,
		DefaultRoles:        []string{"admin"},
	}
	if filename == "" {
		return config, nil
	}
	rawConfig, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(rawConfig, config); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *configurationType) rolesFor(username string) []string {
	if roles, ok := c.UserRoles[username]; ok {
		return roles
	}
	return c.DefaultRoles
}

package command

import (
	"os/exec"
	"strings"

	"github.com/Symantec/Dominator/lib/log"
)

func newAuthenticator(command string, args []string, logger log.Logger) (
	*Authenticator, error) {
	command, err := exec.LookPath(command)
	if err != nil {
		return nil, err
	}
	return &Authenticator{command, args, logger}, nil
}

func (au *Authenticator) authenticate(username, password string) bool {
	if strings.ContainsAny(password, "\n") {
		au.logger.Printf("refusing multi-line password for %s", username)
		return false
	}
	args := []string{username}
	args = append(args, au.args...)
	cmd := exec.Command(au.command, args...)
	cmd.Stdin = strings.NewReader(password + "\n")
	if err := cmd.Run(); err != nil {
		au.logger.Printf("%s %s: %s", au.command, username, err)
		return false
	}
	return true
}

package main

import (
	"bufio"
	"errors"
	"io"

	"github.com/Symantec/pamauth/lib/constants"
)

var errNoInput = errors.New("no password on standard input")

// readPassword reads a single line of at most constants.MaxPasswordLength
// bytes and strips one trailing newline. Anything after the line is left
// unread.
func readPassword(r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	line := make([]byte, 0, constants.MaxPasswordLength)
	for len(line) < constants.MaxPasswordLength {
		b, err := reader.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if b == '\n' {
			return string(line), nil
		}
		line = append(line, b)
	}
	if len(line) == 0 {
		return "", errNoInput
	}
	return string(line), nil
}

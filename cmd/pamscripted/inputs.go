package main

import (
	"bufio"
	"io"
	"strings"
)

// readInputs parses one "--key=value" argument per line. The value is kept
// verbatim apart from the line terminator, so passwords may contain spaces.
func readInputs(r io.Reader) (map[string]string, error) {
	inputs := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if !strings.HasPrefix(line, "--") {
			continue
		}
		fields := strings.SplitN(line[2:], "=", 2)
		if len(fields) != 2 {
			continue
		}
		inputs[fields[0]] = fields[1]
	}
	return inputs, scanner.Err()
}

package colorscheme

import (
	"os/exec"
)

// commandRunner runs a command and returns its stdout.
type commandRunner func(name string, args ...string) ([]byte, error)

// pathLooker reports whether a binary can be found on PATH.
type pathLooker func(file string) (string, error)

func execOutput(name string, args ...string) ([]byte, error) {
	return exec.Command(name, args...).Output()
}

package config

import (
	"os"
)

// GetShell is used to fetch the shell running command actions
func GetShell() string {
	s := os.Getenv("FORGE_SHELL")
	if s == "" {
		s = "/bin/sh"
	}

	return s
}

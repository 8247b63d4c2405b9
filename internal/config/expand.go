package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandTilde replaces ~ or ~/path with the user's home directory.
// Does not support ~username syntax - just ~ for the current user.
func ExpandTilde(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}

	return path
}

// Expand resolves a leading ~ and ${VAR} references in a local path.
// ${HOME} and ${USER} always resolve, with platform fallbacks; any other
// variable comes from the environment and is empty when unset.
func Expand(s string) string {
	if s == "" {
		return s
	}

	result := ExpandTilde(s)
	if !strings.Contains(result, "$") {
		return result
	}

	return os.Expand(result, func(name string) string {
		switch name {
		case "HOME":
			return getHome()
		case "USER":
			return getUser()
		default:
			return os.Getenv(name)
		}
	})
}

// getUser returns the current username for ${USER} expansion.
func getUser() string {
	for _, key := range []string{"USER", "LOGNAME", "USERNAME"} {
		if user := os.Getenv(key); user != "" {
			return user
		}
	}
	return "user"
}

// getHome returns the home directory for ${HOME} expansion.
func getHome() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}

	if home := os.Getenv("HOME"); home != "" {
		return home
	}

	return "~"
}

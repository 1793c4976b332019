package utils

import (
	"os"
	"os/user"
)

// GetUsername returns the current username.
func GetUsername() (string, error) {
	user, err := user.Current()
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// GetHostname returns the system hostname.
func GetHostname() (string, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return "", err
	}
	return hostname, nil
}

// Actor identifies who is running the command as user@host, falling back to
// whichever part is known.
func Actor() string {
	username, userErr := GetUsername()
	hostname, hostErr := GetHostname()

	switch {
	case userErr == nil && hostErr == nil:
		return username + "@" + hostname
	case userErr == nil:
		return username
	case hostErr == nil:
		return "unknown@" + hostname
	default:
		return "unknown"
	}
}

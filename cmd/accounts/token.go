package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// The token lives in a single fixed file, the terminal counterpart of
// the mobile app's "@token" storage key. Login overwrites it; nothing
// ever clears it (there is no logout), so it simply goes stale when
// the token expires.

func tokenPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "accounts", "token"), nil
}

func saveToken(token string) error {
	path, err := tokenPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0o600)
}

func loadToken() (string, error) {
	path, err := tokenPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("not logged in, run: accounts login")
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Package env loads stored environment variables from ~/.adsctl/env so that
// credentials survive between shells without living in the config file.
package env

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Load reads ~/.adsctl/env and sets every KEY=value line that is not already
// present in the environment. Missing files are ignored.
func Load() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	LoadFile(filepath.Join(home, ".adsctl", "env"))
}

// LoadFile applies one stored-env file. Lines starting with # and blank lines
// are skipped; quoted values are unquoted. Variables already set in the
// process environment win over the file.
func LoadFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	s := bufio.NewScanner(strings.NewReader(string(data)))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if os.Getenv(key) != "" {
			continue
		}

		value = strings.TrimSpace(value)
		if unquoted, err := strconv.Unquote(value); err == nil {
			value = unquoted
		}
		os.Setenv(key, value)
	}
}

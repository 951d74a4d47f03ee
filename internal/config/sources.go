package config

import (
	"os"
	"path/filepath"
)

const appName = "agenda"

// findProjectConfigFile returns agenda.toml or .agenda.toml from the working
// directory, whichever exists first.
func findProjectConfigFile() string {
	return firstExisting(appName+".toml", "."+appName+".toml")
}

// findUserConfigFile returns ~/.agenda/agenda.toml, or agenda/agenda.toml
// under the OS config directory (XDG_CONFIG_HOME, APPDATA, Library/Application
// Support).
func findUserConfigFile() string {
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "."+appName, appName+".toml"))
	}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, appName, appName+".toml"))
	}
	return firstExisting(candidates...)
}

func firstExisting(paths ...string) string {
	for _, p := range paths {
		if fi, err := os.Stat(p); err == nil && !fi.IsDir() {
			return p
		}
	}
	return ""
}

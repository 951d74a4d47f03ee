package config

import (
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// windowsVar matches %NAME% references.
var windowsVar = regexp.MustCompile(`%([^%]+)%`)

// expandPath resolves $VAR references (and %VAR% on Windows) and a leading
// "~" in configured file paths. Unset Windows variables are left as written.
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		p = windowsVar.ReplaceAllStringFunc(p, func(ref string) string {
			if val, ok := os.LookupEnv(strings.Trim(ref, "%")); ok {
				return val
			}
			return ref
		})
	}

	rest, ok := strings.CutPrefix(p, "~")
	if !ok || (rest != "" && !os.IsPathSeparator(rest[0])) {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}

package config

import (
	"os"
	"path/filepath"
)

// executableDir returns the directory of the running binary, falling back to
// the working directory when it cannot be determined.
func executableDir() string {
	execPath, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	return filepath.Dir(execPath)
}

// resolvePath makes p absolute relative to the executable directory. Absolute
// and empty paths are returned unchanged.
func resolvePath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(executableDir(), p)
}

package filesystem

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// OwnerReadWriteExec is the mode of directories created for wallet data.
const OwnerReadWriteExec = 0o700

// GetUserHomeDirectory returns the user home directory if one is set.
func GetUserHomeDirectory() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// GetCanonicalPath returns an os-specific full path:
// ~ is replaced with the user's home dir, ${vars} are expanded and the result is cleaned.
func GetCanonicalPath(p string) string {
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, "~\\") {
		if home := GetUserHomeDirectory(); home != "" {
			p = home + p[1:]
		}
	}
	return filepath.Clean(os.ExpandEnv(p))
}

// GetFullDirectoryPath returns the canonical path for a directory, creating it if needed.
func GetFullDirectoryPath(fs afero.Fs, name string) (string, error) {
	path := GetCanonicalPath(name)
	return path, fs.MkdirAll(path, OwnerReadWriteExec)
}

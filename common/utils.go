package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileExist returns whether a file or directory exists at path
func FileExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}

// CurrentDir returns the working directory
func CurrentDir() (string, error) {
	return os.Getwd()
}

// AbsolutePath returns path if it is absolute, otherwise path joined to datadir.
// A leading "~/" is expanded to the home directory.
func AbsolutePath(datadir, path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(datadir, path)
}

// StorageSize is a byte count with a human readable String
type StorageSize float64

func (s StorageSize) String() string {
	switch {
	case s > 1099511627776:
		return fmt.Sprintf("%.2f TiB", s/1099511627776)
	case s > 1073741824:
		return fmt.Sprintf("%.2f GiB", s/1073741824)
	case s > 1048576:
		return fmt.Sprintf("%.2f MiB", s/1048576)
	case s > 1024:
		return fmt.Sprintf("%.2f KiB", s/1024)
	default:
		return fmt.Sprintf("%.2f B", s)
	}
}

// Package application holds process-wide identity and filesystem layout.
package application

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

const (
	// AppName is the application name used for directories and identification
	AppName = "routeguide"

	// AppExeName is the executable name (without extension)
	AppExeName = "routeguide"
)

var (
	once   sync.Once
	appDir string
	errDir error
)

// GetApplicationDirectory returns the routeguide configuration directory.
// Linux: ~/.config/routeguide (via os.UserConfigDir)
// Windows: C:\Users\{username}\AppData\Local\routeguide (via os.UserCacheDir)
func GetApplicationDirectory() (string, error) {
	once.Do(lazyLoad)

	if errDir != nil {
		return "", errDir
	}

	return appDir, nil
}

func lazyLoad() {
	var (
		baseDir string
		err     error
	)

	switch runtime.GOOS {
	case "windows":
		baseDir, err = os.UserCacheDir()
	default:
		baseDir, err = os.UserConfigDir()
	}

	if err != nil {
		errDir = fmt.Errorf("failed to get config directory: %w", err)
		return
	}

	appDir = filepath.Join(baseDir, AppName)
}

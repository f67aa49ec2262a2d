package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
)

// UserDataDir returns the per-user data location for the application:
//
//	linux, bsd: $XDG_DATA_HOME/<app> or ~/.local/share/<app>
//	windows:    %AppData%\<app>
//	darwin:     ~/Library/Application Support/<app>
//
// It falls back to "./userdata" when no home directory is known.
func UserDataDir(app string) string {
	switch runtime.GOOS {
	case "windows", "darwin", "ios":
		if dir, err := os.UserConfigDir(); err == nil {
			return filepath.Join(dir, app)
		}
	default:
		if dir := os.Getenv("XDG_DATA_HOME"); dir != "" && filepath.IsAbs(dir) {
			return filepath.Join(dir, app)
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".local", "share", app)
		}
	}
	return filepath.Join(".", "userdata")
}

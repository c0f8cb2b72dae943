package fonts

import (
	"os"
	"path/filepath"
	"runtime"
)

// SystemDirs returns the standard font directories for the current platform.
// Directories that do not exist are included anyway; scanners skip them.
func SystemDirs() []string {
	home, _ := os.UserHomeDir()

	switch runtime.GOOS {
	case "darwin":
		dirs := []string{
			"/System/Library/Fonts",
			"/Library/Fonts",
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	case "windows":
		dirs := []string{
			filepath.Join(os.Getenv("WINDIR"), "Fonts"),
		}
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			dirs = append(dirs, filepath.Join(localAppData, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	default:
		// Linux and other unixes
		dirs := []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
		}
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			dirs = append(dirs, filepath.Join(dataHome, "fonts"))
		} else if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"))
		}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}

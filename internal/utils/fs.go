package utils

import (
	"os"
	"path/filepath"
)

// ThemeDir is an explicit theme directory override set from the command
// line. When empty, assets resolve from ./themes and from themes/ beside
// the executable.
var ThemeDir string

// ResolveThemeAsset returns the first existing path for relPath across the
// theme search directories, or "" when the asset is absent everywhere.
func ResolveThemeAsset(relPath string) string {
	var dirs []string
	if ThemeDir != "" {
		dirs = append(dirs, ThemeDir)
	}
	dirs = append(dirs, "themes")
	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), "themes"))
	}

	for _, dir := range dirs {
		p := filepath.Join(dir, relPath)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// FindEmblemFile locates an emblem image by base name, preferring the native
// texture format over plain PNG.
func FindEmblemFile(name string) string {
	for _, ext := range []string{".wftx", ".png"} {
		if p := ResolveThemeAsset(name + ext); p != "" {
			return p
		}
	}
	return ""
}

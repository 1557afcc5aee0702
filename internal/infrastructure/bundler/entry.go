package bundler

import (
	"os"
	"path/filepath"
)

// resolvableExtensions are tried, in order, for an entry given without one
var resolvableExtensions = []string{".js", ".mjs", ".cjs", ".ts", ".jsx", ".tsx"}

// entryExists reports whether entry names a file, relative to workDir
func entryExists(workDir, entry string) bool {
	path := entry
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}
	if isFile(path) {
		return true
	}
	if filepath.Ext(path) != "" {
		return false
	}
	for _, ext := range resolvableExtensions {
		if isFile(path + ext) {
			return true
		}
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func absDir(dir string) string {
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

package input

import (
	"os"
	"path/filepath"
)

// ConfigFiles lists config file names searched by FindConfig, in priority order
var ConfigFiles = []string{"aoc.yaml", ".aoc.yaml"}

// FindConfig searches startDir and its parents for a config file.
// The search stops at a repository root (a directory containing .git) or at the home directory.
func FindConfig(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	homeDir := os.Getenv("HOME")
	for {
		for _, name := range ConfigFiles {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", false
		}
		parent := filepath.Dir(dir)
		if parent == dir || dir == homeDir {
			return "", false
		}
		dir = parent
	}
}

package config

import (
	"os"
	"path/filepath"
)

// FindEnvTest looks for filename in the working directory and then in each
// parent directory, returning the first path that exists. An empty filename
// means ".env". It returns os.ErrNotExist when the filesystem root is reached
// without a match, which lets tests in nested packages share the repo's env
// file.
func FindEnvTest(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

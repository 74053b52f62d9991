package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteDefaults copies the built-in tuning and levels into dir so they can be edited
func WriteDefaults(dir string) error {
	sub, err := fs.Sub(embedded, "configs")
	if err != nil {
		return err
	}
	return fs.WalkDir(sub, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(p))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(sub, p)
		if err != nil {
			return fmt.Errorf("failed to read embedded %s: %w", p, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		return nil
	})
}

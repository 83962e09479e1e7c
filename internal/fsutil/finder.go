// Package fsutil locates manifest files on disk.
package fsutil

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// ErrNoExtension is returned when FindManifests is asked for an empty extension.
var ErrNoExtension = errors.New("fsutil: manifest extension must not be empty")

// FindManifests walks root and returns every regular file whose extension is
// ext, in lexical order. Hidden files and hidden directories below root are
// skipped.
func FindManifests(root, ext string) ([]string, error) {
	if ext == "" {
		return nil, ErrNoExtension
	}

	var manifests []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && filepath.Ext(d.Name()) == ext {
			manifests = append(manifests, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find %s manifests in %s: %w", ext, root, err)
	}
	return manifests, nil
}

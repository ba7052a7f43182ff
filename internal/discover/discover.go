// Package discover lists candidate classifier output files.
package discover

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultExtension is the conventional suffix of classifier output files.
const DefaultExtension = ".out"

// Outputs returns the classifier output files directly inside dir,
// sorted by name. Hidden files and subdirectories are skipped. For the
// current directory, bare file names are returned so sample names never
// start with "./".
func Outputs(dir, ext string) ([]string, error) {
	if ext == "" {
		ext = DefaultExtension
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list %q: %w", dir, err)
	}
	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ext) {
			continue
		}
		if dir != "." {
			name = filepath.Join(dir, name)
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}

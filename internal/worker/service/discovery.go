package service

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverFiles lists the processable files directly under inputDir,
// returning base names sorted lexicographically. Only regular files
// with the given extension qualify. A missing or unreadable input
// directory is an error; an empty one is not.
func DiscoverFiles(inputDir, extension string) ([]string, error) {
	info, err := os.Stat(inputDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", inputDir)
	}

	pattern := filepath.Join(inputDir, "*"+extension)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, match := range matches {
		info, err := os.Lstat(match)
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			files = append(files, filepath.Base(match))
		}
	}
	sort.Strings(files)
	return files, nil
}

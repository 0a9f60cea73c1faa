package utils

import (
	"fmt"
	"path/filepath"
)

// ResolvePaths resolves a list of paths relative to a base directory.
// Absolute paths are returned unchanged, relative paths are resolved
// relative to the base directory.
func ResolvePaths(paths []string, baseDir string) []string {
	if len(paths) == 0 {
		return nil
	}

	resolved := make([]string, 0, len(paths))
	for _, path := range paths {
		if filepath.IsAbs(path) {
			resolved = append(resolved, path)
		} else {
			resolved = append(resolved, filepath.Join(baseDir, path))
		}
	}
	return resolved
}

// SeedFiles expands a file name pattern holding one %d verb for every seed
// and resolves the results against baseDir.
func SeedFiles(pattern string, seeds []int, baseDir string) []string {
	names := make([]string, 0, len(seeds))
	for _, s := range seeds {
		names = append(names, fmt.Sprintf(pattern, s))
	}
	return ResolvePaths(names, baseDir)
}

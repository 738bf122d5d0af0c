// Package input resolves the list of repository paths a run should scan.
package input

import (
	"path/filepath"
	"strings"
)

// ResolveRepoPaths picks the repository source and normalizes it into an
// ordered, deduplicated list of absolute paths.
//
// Source precedence: explicit CLI paths, then configured paths, then the
// working directory. Deduplication compares absolute paths
// case-insensitively and keeps the first occurrence, so the scan order
// always matches the order the user gave.
func ResolveRepoPaths(cliRepos, configRepos []string, workDir string) []string {
	source := cliRepos
	if len(source) == 0 {
		source = configRepos
	}
	if len(source) == 0 {
		source = []string{workDir}
	}

	seen := make(map[string]struct{}, len(source))
	var ordered []string

	for _, repo := range source {
		repo = strings.TrimSpace(repo)
		if repo == "" {
			continue
		}

		absPath, err := filepath.Abs(repo)
		if err != nil {
			continue
		}

		key := strings.ToLower(absPath)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ordered = append(ordered, absPath)
	}

	return ordered
}

package input

import (
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func abs(t *testing.T, path string) string {
	t.Helper()
	absPath, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("abs %s: %v", path, err)
	}
	return absPath
}

func TestResolveRepoPaths_SourcePrecedence(t *testing.T) {
	workDir := abs(t, "/work/dir")

	tests := []struct {
		name        string
		cliRepos    []string
		configRepos []string
		want        []string
	}{
		{
			name:        "cli paths win over config",
			cliRepos:    []string{"/code/api"},
			configRepos: []string{"/code/docs"},
			want:        []string{abs(t, "/code/api")},
		},
		{
			name:        "config paths used when no cli paths",
			configRepos: []string{"/code/docs"},
			want:        []string{abs(t, "/code/docs")},
		},
		{
			name: "working directory is the fallback",
			want: []string{workDir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveRepoPaths(tt.cliRepos, tt.configRepos, workDir)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestResolveRepoPaths_Dedup(t *testing.T) {
	got := ResolveRepoPaths([]string{
		"/code/api",
		"/code/API",
		"/code/docs",
		"/code/api",
	}, nil, "/work")

	want := []string{abs(t, "/code/api"), abs(t, "/code/docs")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestResolveRepoPaths_NormalizesRelativePaths(t *testing.T) {
	got := ResolveRepoPaths([]string{"repo", "  ", ""}, nil, "/work")

	if len(got) != 1 {
		t.Fatalf("expected one path, got %v", got)
	}
	if !filepath.IsAbs(got[0]) {
		t.Errorf("expected absolute path, got %q", got[0])
	}
	if !strings.HasSuffix(got[0], "repo") {
		t.Errorf("expected path ending in %q, got %q", "repo", got[0])
	}
}

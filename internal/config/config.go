package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// rcFileName is the optional per-user/per-project config file. The working
// directory copy wins over the home directory copy.
const rcFileName = ".standuprc"

// Config holds the resolved settings for one run. It is built once, before
// any repository is scanned, and passed down explicitly.
type Config struct {
	Format  string
	Team    string
	Repos   []string
	Copy    bool
	Verbose bool
	Quiet   bool
}

// Flags carries the raw CLI flag values into the merge.
type Flags struct {
	Format  string
	Team    string
	NoCopy  bool
	Verbose bool
	Quiet   bool
}

// fileConfig is the subset of settings a .standuprc may provide.
type fileConfig struct {
	Format string
	Team   string
	Repos  []string
	Copy   *bool
}

// Load merges CLI flags, environment variables, and the first .standuprc
// found. Precedence per setting: flag, then environment, then file, then
// default. A missing or malformed file degrades to defaults rather than
// failing the run.
func Load(flags Flags) *Config {
	// Pick up a .env file if one exists; silently ignore when absent.
	_ = godotenv.Load()

	file := loadFile(rcFilePaths())

	repos := normalizeRepos(os.Getenv("STANDUP_REPOS"))
	if len(repos) == 0 {
		repos = file.Repos
	}

	cfg := &Config{
		Format:  firstNonEmpty(flags.Format, os.Getenv("STANDUP_FORMAT"), file.Format, "plain"),
		Team:    firstNonEmpty(flags.Team, os.Getenv("STANDUP_TEAM"), file.Team),
		Repos:   repos,
		Copy:    true,
		Verbose: flags.Verbose && !flags.Quiet,
		Quiet:   flags.Quiet,
	}

	if file.Copy != nil {
		cfg.Copy = *file.Copy
	}
	if raw := os.Getenv("STANDUP_NO_COPY"); raw != "" {
		cfg.Copy = !parseBool(raw, false)
	}
	if flags.NoCopy {
		cfg.Copy = false
	}
	return cfg
}

// rcFilePaths lists candidate config locations in priority order.
func rcFilePaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, rcFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, rcFileName))
	}
	return paths
}

// loadFile reads the first existing candidate. Parse failures return an
// empty config: a broken rc file should never block the standup.
func loadFile(paths []string) fileConfig {
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return parseFile(string(raw))
	}
	return fileConfig{}
}

// parseFile accepts either a JSON object or key=value lines.
func parseFile(raw string) fileConfig {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fileConfig{}
	}

	var data map[string]any
	if strings.HasPrefix(raw, "{") {
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return fileConfig{}
		}
	} else {
		pairs, err := godotenv.Unmarshal(raw)
		if err != nil {
			return fileConfig{}
		}
		data = make(map[string]any, len(pairs))
		for key, value := range pairs {
			data[key] = value
		}
	}

	cfg := fileConfig{
		Format: stringValue(data["format"]),
		Team:   stringValue(data["team"]),
		Repos:  normalizeRepos(data["repos"]),
	}

	if value, ok := data["copy"]; ok {
		enabled := parseBool(value, true)
		cfg.Copy = &enabled
	}
	if value, ok := data["no_copy"]; ok {
		enabled := !parseBool(value, false)
		cfg.Copy = &enabled
	}
	return cfg
}

func stringValue(value any) string {
	s, _ := value.(string)
	return strings.TrimSpace(s)
}

// normalizeRepos accepts a comma-separated string or a JSON array of paths.
func normalizeRepos(value any) []string {
	var rawPaths []string
	switch v := value.(type) {
	case string:
		rawPaths = strings.Split(v, ",")
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				rawPaths = append(rawPaths, s)
			}
		}
	default:
		return nil
	}

	var repos []string
	for _, path := range rawPaths {
		if path = strings.TrimSpace(path); path != "" {
			repos = append(repos, path)
		}
	}
	return repos
}

// parseBool recognizes the usual truthy/falsy spellings and keeps the
// default for anything else.
func parseBool(value any, def bool) bool {
	switch v := value.(type) {
	case nil:
		return def
	case bool:
		return v
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
		return def
	case float64:
		// JSON numbers decode as float64; accept the 0/1 spellings.
		switch v {
		case 1:
			return true
		case 0:
			return false
		}
		return def
	default:
		return def
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}

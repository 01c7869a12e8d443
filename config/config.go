package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment and file layout.
const (
	// EnvPrefix is prepended to upper-cased key names for environment
	// variable lookup, so "base_branch" maps to GITKICK_BASE_BRANCH.
	EnvPrefix = "GITKICK_"

	// LocalName is the per-repository settings file, looked up in the
	// git root.
	LocalName = ".gitkick.yaml"

	globalDirName  = "gitkick"
	globalFileName = "config.yaml"
)

// Recognized settings keys.
const (
	// KeyRemote names the git remote branches are pushed to.
	KeyRemote = "remote"

	// KeyBaseBranch is the branch pull requests target.
	KeyBaseBranch = "base_branch"

	// KeyEditor overrides $EDITOR for description editing.
	KeyEditor = "editor"

	// KeyNoColor disables colored plan output when "true".
	KeyNoColor = "no_color"
)

// KnownKeys lists every key the settings files accept. Unknown keys in
// a settings file are ignored during resolution and rejected on save.
var KnownKeys = []string{KeyRemote, KeyBaseBranch, KeyEditor, KeyNoColor}

func defaults() map[string]string {
	return map[string]string{
		KeyRemote:     "origin",
		KeyBaseBranch: "main",
		KeyEditor:     "",
		KeyNoColor:    "false",
	}
}

// Resolver merges settings from defaults, the global file, the local
// file, and the environment.
type Resolver struct {
	globalPath string
	localPath  string
	gitRoot    string
	errWriter  io.Writer

	// Warnings collects non-fatal issues during resolution.
	Warnings []string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithGlobalPath overrides the global settings file location.
func WithGlobalPath(path string) Option {
	return func(r *Resolver) {
		r.globalPath = path
	}
}

// WithGitRoot overrides git root detection. The local settings file is
// looked up inside root.
func WithGitRoot(root string) Option {
	return func(r *Resolver) {
		r.gitRoot = root
	}
}

// WithErrWriter sets where resolution warnings are printed.
// Default os.Stderr.
func WithErrWriter(w io.Writer) Option {
	return func(r *Resolver) {
		r.errWriter = w
	}
}

// NewResolver creates a resolver. Unless overridden, the global file
// sits at ~/.config/gitkick/config.yaml and the local file at
// .gitkick.yaml in the enclosing git root.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		errWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}

	if r.gitRoot == "" {
		r.gitRoot = findGitRoot(".")
	}
	if r.localPath == "" && r.gitRoot != "" {
		r.localPath = filepath.Join(r.gitRoot, LocalName)
	}
	if r.globalPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			r.globalPath = filepath.Join(home, ".config", globalDirName, globalFileName)
		}
	}

	return r
}

// warn records a warning and prints it.
func (r *Resolver) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
	if r.errWriter != nil {
		fmt.Fprintf(r.errWriter, "Warning: %s\n", msg)
	}
}

// Settings holds the merged configuration with per-key provenance.
type Settings struct {
	values  map[string]string
	sources map[string]Source
}

// Get returns the value for a key, or empty string if not set.
func (s *Settings) Get(key string) string {
	return s.values[key]
}

// Source returns where a key's value came from.
func (s *Settings) Source(key string) Source {
	return s.sources[key]
}

// GetWithSource returns both the value and its source.
func (s *Settings) GetWithSource(key string) (string, Source) {
	return s.values[key], s.sources[key]
}

// All returns a copy of all key-value pairs.
func (s *Settings) All() map[string]string {
	result := make(map[string]string, len(s.values))
	for k, v := range s.values {
		result[k] = v
	}
	return result
}

// Keys returns all settings keys in sorted order.
func (s *Settings) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Remote is the git remote branches are pushed to.
func (s *Settings) Remote() string {
	return s.values[KeyRemote]
}

// BaseBranch is the branch pull requests target.
func (s *Settings) BaseBranch() string {
	return s.values[KeyBaseBranch]
}

// Editor is the configured editor command, empty when unset.
func (s *Settings) Editor() string {
	return s.values[KeyEditor]
}

// NoColor reports whether colored output is disabled.
func (s *Settings) NoColor() bool {
	v := s.values[KeyNoColor]
	return v == "true" || v == "1"
}

// Resolve builds the final settings by merging all sources.
// Priority (highest to lowest): flags > env > local > global > defaults.
func (r *Resolver) Resolve() *Settings {
	s := &Settings{
		values:  make(map[string]string),
		sources: make(map[string]Source),
	}

	r.applyDefaults(s)
	r.applyFile(s, r.globalPath, SourceGlobal)
	r.applyFile(s, r.localPath, SourceLocal)
	r.applyEnv(s)

	return s
}

// ResolveWithFlags resolves settings and applies flag overrides.
func (r *Resolver) ResolveWithFlags(flags map[string]string) *Settings {
	s := r.Resolve()

	for key, value := range flags {
		if value != "" {
			s.values[key] = value
			s.sources[key] = SourceFlag
		}
	}

	return s
}

func (r *Resolver) applyDefaults(s *Settings) {
	for key, value := range defaults() {
		s.values[key] = value
		s.sources[key] = SourceDefault
	}
}

func (r *Resolver) applyFile(s *Settings, path string, source Source) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return // File doesn't exist - not an error
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		r.warn(fmt.Sprintf("could not parse %s: %v", path, err))
		return
	}

	for key, value := range parsed {
		if !contains(KnownKeys, key) {
			continue
		}
		if strVal := toString(value); strVal != "" {
			s.values[key] = strVal
			s.sources[key] = source
		}
	}
}

func (r *Resolver) applyEnv(s *Settings) {
	for _, key := range KnownKeys {
		envKey := EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		if value := os.Getenv(envKey); value != "" {
			s.values[key] = value
			s.sources[key] = SourceEnv
		}
	}

	// The standard NO_COLOR convention always applies, prefix or not.
	if _, hasNoColor := os.LookupEnv("NO_COLOR"); hasNoColor {
		s.values[KeyNoColor] = "true"
		s.sources[KeyNoColor] = SourceEnv
	}
}

// GitRoot returns the detected git root directory.
func (r *Resolver) GitRoot() string {
	return r.gitRoot
}

// GlobalPath returns the path to the global settings file.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// LocalPath returns the path to the local settings file.
func (r *Resolver) LocalPath() string {
	return r.localPath
}

// Helper functions

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int, int64, float64:
		return fmt.Sprintf("%v", val)
	default:
		return ""
	}
}

// findGitRoot finds the git root by looking for a .git directory.
func findGitRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached root
		}
		dir = parent
	}

	return ""
}

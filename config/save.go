package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveGlobal writes a key-value pair to the global settings file,
// creating it on first use.
func (r *Resolver) SaveGlobal(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if r.globalPath == "" {
		return fmt.Errorf("global settings path not resolved")
	}

	existing := loadFile(r.globalPath)
	existing[key] = parseValue(value)

	if err := os.MkdirAll(filepath.Dir(r.globalPath), 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(existing)
	if err != nil {
		return err
	}

	return os.WriteFile(r.globalPath, data, 0o600)
}

// SaveLocal writes a key-value pair to the local settings file in the
// git root. The file is meant to be committed, so it stays readable.
func (r *Resolver) SaveLocal(key, value string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if r.localPath == "" {
		return fmt.Errorf("not inside a git repository")
	}

	existing := loadFile(r.localPath)
	existing[key] = parseValue(value)

	data, err := yaml.Marshal(existing)
	if err != nil {
		return err
	}

	return os.WriteFile(r.localPath, data, 0o644) //nolint:gosec
}

// DeleteGlobal removes a key from the global settings file. Removing a
// key that isn't set is a no-op.
func (r *Resolver) DeleteGlobal(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if r.globalPath == "" {
		return fmt.Errorf("global settings path not resolved")
	}
	return deleteKey(r.globalPath, key, 0o600)
}

// DeleteLocal removes a key from the local settings file.
func (r *Resolver) DeleteLocal(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if r.localPath == "" {
		return fmt.Errorf("not inside a git repository")
	}
	return deleteKey(r.localPath, key, 0o644)
}

func deleteKey(path, key string, mode os.FileMode) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil // Nothing to delete
	}

	var existing map[string]interface{}
	if err := yaml.Unmarshal(data, &existing); err != nil {
		return nil
	}

	delete(existing, key)

	data, err = yaml.Marshal(existing)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, mode) //nolint:gosec
}

// ValidateKey reports whether key names a recognized setting.
func ValidateKey(key string) error {
	if !contains(KnownKeys, key) {
		return fmt.Errorf("unknown config key: %s\n\nValid keys: %s",
			key, strings.Join(KnownKeys, ", "))
	}
	return nil
}

// loadFile reads a settings file into a map, returning an empty map
// when the file is missing or unreadable.
func loadFile(path string) map[string]interface{} {
	var existing map[string]interface{}
	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, &existing)
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}
	return existing
}

// parseValue converts string values to appropriate types for YAML.
func parseValue(value string) interface{} {
	lower := strings.ToLower(value)
	if lower == "true" {
		return true
	}
	if lower == "false" {
		return false
	}
	return value
}

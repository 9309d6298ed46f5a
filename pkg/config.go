package bumpversion

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	DefaultManifest = "pyproject.toml"
	DefaultSection  = "project"
	DefaultMetadata = "addon.json"

	// MetadataPathEnv names a single metadata file to sync instead of
	// searching for one.
	MetadataPathEnv = "ADDON_JSON_PATH"
)

// Config holds everything the Bumper needs. Relative paths resolve against
// Root.
type Config struct {
	Root             string // repository root
	Manifest         string // manifest path, default pyproject.toml
	Section          string // designated section, default project
	MetadataName     string // metadata file name for discovery, default addon.json
	MetadataOverride string // explicit metadata path; disables discovery
	Parser           string // locator strategy: line, regex or toml
	DryRun           bool
}

// withDefaults fills empty fields with their defaults.
func (c Config) withDefaults() Config {
	if c.Root == "" {
		c.Root = "."
	}
	if c.Manifest == "" {
		c.Manifest = DefaultManifest
	}
	if c.Section == "" {
		c.Section = DefaultSection
	}
	if c.MetadataName == "" {
		c.MetadataName = DefaultMetadata
	}
	return c
}

// Validate checks the fields that cannot be defaulted.
func (c Config) Validate() error {
	if c.Root == "" {
		return fmt.Errorf("%w: empty root", ErrUsage)
	}
	if filepath.Base(c.MetadataName) != c.MetadataName {
		return fmt.Errorf("%w: metadata name %q must be a file name, not a path", ErrUsage, c.MetadataName)
	}
	if _, err := ParseLocator(c.Parser); err != nil {
		return err
	}
	return nil
}

// ManifestPath returns the manifest location resolved against Root.
func (c Config) ManifestPath() string {
	if filepath.IsAbs(c.Manifest) {
		return c.Manifest
	}
	return filepath.Join(c.Root, c.Manifest)
}

// LocateRoot walks up from startDir until it finds a directory containing
// manifest. Returns fs.ErrNotExist if none is found.
func LocateRoot(startDir, manifest string) (string, error) {
	d, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(d, manifest)); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}
	return "", fs.ErrNotExist
}

// MetadataOverrideFromEnv returns the metadata override from the process
// environment, falling back to a .env file in root. A missing .env file is
// not an error.
func MetadataOverrideFromEnv(root string) (string, error) {
	if v := os.Getenv(MetadataPathEnv); v != "" {
		return v, nil
	}
	env, err := godotenv.Read(filepath.Join(root, ".env"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("reading .env: %w", err)
	}
	return env[MetadataPathEnv], nil
}

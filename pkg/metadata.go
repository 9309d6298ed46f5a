package bumpversion

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// SyncStatus is the outcome of syncing one metadata file.
type SyncStatus int

const (
	Skipped SyncStatus = iota
	Updated
)

func (s SyncStatus) String() string {
	if s == Updated {
		return "updated"
	}
	return "skipped"
}

// SyncResult records what happened to one metadata file.
type SyncResult struct {
	Path   string
	Status SyncStatus
	Reason string // why the file was skipped; empty when updated
}

func skipped(path, format string, args ...any) SyncResult {
	return SyncResult{Path: path, Status: Skipped, Reason: fmt.Sprintf(format, args...)}
}

// jsonOptions matches a 2-space indented document with key order preserved.
// Width 0 puts every array element on its own line.
var jsonOptions = &pretty.Options{Width: 0, Prefix: "", Indent: "  ", SortKeys: false}

// DiscoverMetadata lists the metadata files to sync. With an override the
// single resolved path is returned whether it exists or not. Otherwise the
// file named name is looked up at root and one directory level below it.
func DiscoverMetadata(root, name, override string) []string {
	if override != "" {
		if !filepath.IsAbs(override) {
			override = filepath.Join(root, override)
		}
		return []string{override}
	}

	var found []string
	if isFile(filepath.Join(root, name)) {
		found = append(found, filepath.Join(root, name))
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		return found
	}
	for _, e := range entries {
		// Stat rather than e.IsDir so symlinked directories are searched too.
		dir := filepath.Join(root, e.Name())
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			continue
		}
		p := filepath.Join(dir, name)
		if isFile(p) {
			found = append(found, p)
		}
	}
	return found
}

func isFile(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// SyncMetadataFile sets the top-level "version" key of the JSON document at
// path and rewrites it pretty-printed. It never returns an error; anything
// that prevents the update is reported as Skipped with a reason. With dryRun
// the file is inspected but not written.
func SyncMetadataFile(path, version string, dryRun bool) SyncResult {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return skipped(path, "file not found")
		}
		return skipped(path, "read failed: %v", err)
	}
	if !gjson.ValidBytes(data) {
		return skipped(path, "invalid JSON")
	}
	if !gjson.ParseBytes(data).IsObject() {
		return skipped(path, "document is not a JSON object")
	}
	if !gjson.GetBytes(data, "version").Exists() {
		return skipped(path, "no version field")
	}

	updated, err := sjson.SetBytes(data, "version", version)
	if err != nil {
		return skipped(path, "set version: %v", err)
	}
	out := pretty.PrettyOptions(updated, jsonOptions)

	if !dryRun && !bytes.Equal(out, data) {
		if err := writeFilePreservingMode(path, out); err != nil {
			return skipped(path, "write failed: %v", err)
		}
	}
	return SyncResult{Path: path, Status: Updated}
}

// writeFilePreservingMode overwrites path and keeps its permission bits.
func writeFilePreservingMode(path string, data []byte) error {
	perm := fs.FileMode(0644)
	if fi, err := os.Stat(path); err == nil {
		perm = fi.Mode().Perm()
	}
	return os.WriteFile(path, data, perm)
}

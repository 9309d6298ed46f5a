// Package main implements the bumpversion CLI tool.
//
// The bumpversion tool is a small release helper. It reads the version from the
// designated section of a project manifest (default: the [project] table of
// ./pyproject.toml), bumps it by major, minor or patch, rewrites only that
// literal in place, and mirrors the new version into any addon.json metadata
// files it can find. The new version is printed on standard output and nothing
// else, so the tool composes with shell pipelines:
//
//	git commit -am "$(bumpversion patch)"
//
// Command Usage:
//
//	bumpversion [flags] <major|minor|patch>
//
// Flags:
//
//	-root:     Repository root. Defaults to the nearest directory at or above the
//	           working directory that contains the manifest.
//	-manifest: Manifest path relative to the root. (Defaults to "pyproject.toml")
//	-section:  Section holding the authoritative version, e.g. "tool.poetry".
//	           (Defaults to "project")
//	-parser:   How the manifest is read: "line" (default), "regex" or "toml".
//	           All three replace exactly the version literal and nothing else.
//	-metadata: Metadata file name searched for at the root and one directory
//	           below it. (Defaults to "addon.json")
//	-dry:      Compute and print the new version without writing any file.
//	-v:        Log per-file details to standard error.
//	-version:  Displays the version of the bumpversion CLI tool and exits.
//
// Environment:
//
//	ADDON_JSON_PATH: A single metadata file to sync, relative to the root,
//	                 instead of searching. May also be set in <root>/.env.
//
// Metadata sync never fails the run: files that are missing, are not JSON
// objects, or have no "version" key are skipped and a note is printed when
// nothing was updated.
//
// Examples:
//
//	# Bump the patch version (e.g. 1.2.3 → 1.2.4)
//	bumpversion patch
//
//	# Bump the minor version (e.g. 2.9.9 → 2.10.0)
//	bumpversion minor
//
//	# Bump the major version, dropping any suffix (e.g. 1.2.3-rc1 → 2.0.0)
//	bumpversion major
//
//	# Bump a Poetry project and sync a specific descriptor
//	ADDON_JSON_PATH=extension/addon.json bumpversion -section tool.poetry patch
//
// For the library API, see the documentation in the "pkg" package.
package main

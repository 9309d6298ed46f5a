// Package main implements a CLI tool to bump the version in a project
// manifest and sync it into secondary metadata files.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	bumpversion "github.com/bcomnes/bumpversion/pkg"
)

const shortUsage = "usage: bumpversion [options] <major|minor|patch>"

func usage(w io.Writer, fs *flag.FlagSet) {
	msg := `Usage:
  bumpversion [options] <major|minor|patch>

Bumps the version in the [project] section of pyproject.toml (by default), prints the new version,
and mirrors it into any addon.json found at the repository root or one directory below it.
Set ADDON_JSON_PATH (in the environment or in <root>/.env) to sync one specific file instead.

Examples:
  bumpversion patch
  bumpversion -section tool.poetry minor
  bumpversion -root ./myproject -parser toml -dry major

Positional arguments:
  <major|minor|patch>  Which component to increment; lower components reset to zero

Exit codes:
  0 success, 1 usage, 2 section or field missing, 3 invalid version,
  4 unparsable version line, 5 manifest read/write failure

Options:
`
	fmt.Fprint(w, msg)
	fs.PrintDefaults()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bumpversion", flag.ContinueOnError)
	fs.SetOutput(stderr)

	root := fs.String("root", "", "Repository root (default: nearest parent directory containing the manifest)")
	manifest := fs.String("manifest", bumpversion.DefaultManifest, "Manifest path, relative to the root")
	section := fs.String("section", bumpversion.DefaultSection, "Manifest section holding the authoritative version")
	parser := fs.String("parser", "line", "Manifest parser: "+strings.Join(bumpversion.Locators, ", "))
	metadata := fs.String("metadata", bumpversion.DefaultMetadata, "Metadata file name searched at the root and one level below")
	dryRun := fs.Bool("dry", false, "Compute and print the new version without modifying any files")
	verbose := fs.Bool("v", false, "Log per-file details to stderr")
	showVersion := fs.Bool("version", false, "Show CLI version and exit")
	help := fs.Bool("help", false, "Show help message and exit")

	fs.Usage = func() { usage(stderr, fs) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return bumpversion.ExitOK
		}
		return bumpversion.ExitUsage
	}

	if *help {
		usage(stderr, fs)
		return bumpversion.ExitOK
	}
	if *showVersion {
		fmt.Fprintln(stdout, "bumpversion CLI version", Version)
		return bumpversion.ExitOK
	}

	log := bumpversion.NewLogger(stderr, *verbose)

	// Guard against misplaced flags after the positional arg.
	for _, arg := range fs.Args() {
		if strings.HasPrefix(arg, "-") {
			log.Error("flags must be specified before the bump kind")
			fmt.Fprintln(stderr, shortUsage)
			return bumpversion.ExitUsage
		}
	}
	if fs.NArg() != 1 {
		log.Error("<major|minor|patch> positional argument is required")
		fmt.Fprintln(stderr, shortUsage)
		return bumpversion.ExitUsage
	}
	kind, err := bumpversion.ParseBumpKind(fs.Arg(0))
	if err != nil {
		log.Error(err)
		fmt.Fprintln(stderr, shortUsage)
		return bumpversion.ExitUsage
	}

	rootDir, err := resolveRoot(*root, *manifest)
	if err != nil {
		log.Error(err)
		return bumpversion.ExitManifestIO
	}

	override, err := bumpversion.MetadataOverrideFromEnv(rootDir)
	if err != nil {
		// A broken .env only affects metadata sync, which is best-effort.
		log.Warn(err)
	}

	b, err := bumpversion.New(bumpversion.Config{
		Root:             rootDir,
		Manifest:         *manifest,
		Section:          *section,
		MetadataName:     *metadata,
		MetadataOverride: override,
		Parser:           *parser,
		DryRun:           *dryRun,
	}, bumpversion.WithLogger(log))
	if err != nil {
		log.Error(err)
		return bumpversion.ExitCode(err)
	}

	res, err := b.Run(kind)
	if err != nil {
		log.Error(err)
		return bumpversion.ExitCode(err)
	}

	if *dryRun {
		log.Infof("dry run: %s would go from %s to %s", res.ManifestPath, res.OldVersion, res.NewVersion)
		for _, p := range res.UpdatedMetadata() {
			log.Infof("dry run: %s would be updated", p)
		}
	}
	fmt.Fprintln(stdout, res.NewVersion)
	return bumpversion.ExitOK
}

// resolveRoot returns the explicit root if given, the manifest's directory
// for an absolute manifest path, or the nearest directory at or above the
// working directory that contains the manifest.
func resolveRoot(root, manifest string) (string, error) {
	if root != "" {
		return root, nil
	}
	if filepath.IsAbs(manifest) {
		return filepath.Dir(manifest), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %v", bumpversion.ErrManifestIO, err)
	}
	if found, err := bumpversion.LocateRoot(wd, manifest); err == nil {
		return found, nil
	}
	return wd, nil
}

package bumpversion

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Result describes a completed bump.
type Result struct {
	OldVersion   string       // version literal as found in the manifest
	NewVersion   string       // bumped version
	BumpType     BumpKind     // kind used for the bump
	ManifestPath string       // manifest that was (or would be) rewritten
	Metadata     []SyncResult // one entry per discovered metadata file
	DryRun       bool
}

// UpdatedMetadata returns the paths of metadata files that were updated.
func (r Result) UpdatedMetadata() []string {
	var paths []string
	for _, m := range r.Metadata {
		if m.Status == Updated {
			paths = append(paths, m.Path)
		}
	}
	return paths
}

// Bumper rewrites the manifest version and syncs metadata files.
type Bumper struct {
	cfg     Config
	locator Locator
	log     *logrus.Logger
}

// Option configures a Bumper.
type Option func(*Bumper)

// WithLogger sets the logger used for advisory notes and debug output.
func WithLogger(l *logrus.Logger) Option {
	return func(b *Bumper) { b.log = l }
}

// WithLocator overrides the strategy selected by Config.Parser.
func WithLocator(l Locator) Option {
	return func(b *Bumper) { b.locator = l }
}

// New validates cfg and returns a Bumper.
func New(cfg Config, opts ...Option) (*Bumper, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := ParseLocator(cfg.Parser)
	if err != nil {
		return nil, err
	}
	b := &Bumper{cfg: cfg, locator: loc, log: discardLogger()}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Config returns the effective configuration.
func (b *Bumper) Config() Config {
	return b.cfg
}

// Current reads the manifest and returns the located span and the parsed
// version without modifying anything.
func (b *Bumper) Current() (Span, Version, error) {
	path := b.cfg.ManifestPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return Span{}, Version{}, fmt.Errorf("%w: %v", ErrManifestIO, err)
	}
	return b.current(path, data)
}

func (b *Bumper) current(path string, data []byte) (Span, Version, error) {
	span, err := b.locator.Locate(data, b.cfg.Section)
	if err != nil {
		return Span{}, Version{}, fmt.Errorf("%s: %w", path, err)
	}
	v, err := ParseVersion(span.Value)
	if err != nil {
		return Span{}, Version{}, fmt.Errorf("%s:%d: %w", path, span.Line, err)
	}
	return span, v, nil
}

// Run bumps the manifest version by kind, writes the manifest back and then
// syncs metadata files. Every fatal check happens before the manifest is
// written; metadata problems never fail the run.
func (b *Bumper) Run(kind BumpKind) (Result, error) {
	res := Result{BumpType: kind, ManifestPath: b.cfg.ManifestPath(), DryRun: b.cfg.DryRun}
	if !kind.Valid() {
		return res, fmt.Errorf("%w: %q", ErrUnknownBumpKind, string(kind))
	}

	data, err := os.ReadFile(res.ManifestPath)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrManifestIO, err)
	}
	span, cur, err := b.current(res.ManifestPath, data)
	if err != nil {
		return res, err
	}
	res.OldVersion = span.Value

	next, err := cur.Bump(kind)
	if err != nil {
		return res, err
	}
	res.NewVersion = next.String()

	b.log.WithFields(logrus.Fields{
		"file": res.ManifestPath,
		"line": span.Line,
		"old":  res.OldVersion,
		"new":  res.NewVersion,
	}).Debug("bumping manifest version")

	if !b.cfg.DryRun {
		if err := writeFilePreservingMode(res.ManifestPath, ReplaceSpan(data, span, res.NewVersion)); err != nil {
			return res, fmt.Errorf("%w: %v", ErrManifestIO, err)
		}
	}

	res.Metadata = b.SyncMetadata(res.NewVersion)
	return res, nil
}

// SyncMetadata mirrors version into every discovered metadata file and
// reports the per-file outcome. A note is logged when no file was updated.
func (b *Bumper) SyncMetadata(version string) []SyncResult {
	paths := DiscoverMetadata(b.cfg.Root, b.cfg.MetadataName, b.cfg.MetadataOverride)

	results := make([]SyncResult, 0, len(paths))
	updated := false
	for _, p := range paths {
		r := SyncMetadataFile(p, version, b.cfg.DryRun)
		results = append(results, r)
		if r.Status == Updated {
			updated = true
			b.log.WithField("file", p).Debug("synced metadata version")
		} else {
			b.log.WithFields(logrus.Fields{"file": p, "reason": r.Reason}).Debug("skipped metadata file")
		}
	}

	if !updated {
		b.log.Warnf("%s not found or no 'version' field to sync", b.metadataLabel())
	}
	return results
}

func (b *Bumper) metadataLabel() string {
	if b.cfg.MetadataOverride != "" {
		return b.cfg.MetadataOverride
	}
	return b.cfg.MetadataName
}

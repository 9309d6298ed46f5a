// Package bumpversion bumps the semantic version held in a project manifest
// and mirrors it into secondary JSON metadata files.
//
// It provides functionalities for:
//   - Parsing "X.Y.Z" versions, discarding any pre-release or build suffix.
//   - Bumping by major, minor or patch, resetting lower components to zero.
//   - Locating the single version literal inside a designated manifest section
//     (for pyproject.toml, [project]) with interchangeable strategies: a line
//     scanner, a regular expression and a TOML decoder.
//   - Rewriting only that literal's bytes, so the rest of the manifest is
//     preserved exactly.
//   - Syncing the new version into addon.json style metadata files, best-effort,
//     with a per-file result instead of silent failures.
//
// Usage Example:
//
//	import (
//	    "fmt"
//	    "log"
//
//	    bumpversion "github.com/bcomnes/bumpversion/pkg"
//	)
//
//	func main() {
//	    b, err := bumpversion.New(bumpversion.Config{Root: "."})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    res, err := b.Run(bumpversion.Patch)
//	    if err != nil {
//	        log.Fatalf("version bump failed: %v", err)
//	    }
//	    fmt.Println(res.NewVersion)
//	}
//
// Errors are classified with sentinel values (ErrSectionNotFound,
// ErrInvalidVersion, ...) that ExitCode maps to distinct process exit codes.
package bumpversion

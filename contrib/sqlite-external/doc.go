// Package sqliteexternal provides optional external SQLite drivers.
//
// This package is part of the main github.com/versewright/versed module
// and provides a CGO-based SQLite driver for performance-critical
// deployments.
//
// # CGO SQLite Driver
//
// To use the CGO driver (github.com/mattn/go-sqlite3):
//
//	import _ "github.com/versewright/versed/contrib/sqlite-external"
//
// Build with:
//
//	CGO_ENABLED=1 go build -tags cgo_sqlite
//
// # Default Pure Go Driver
//
// By default, versed uses the pure Go modernc.org/sqlite implementation
// that requires no CGO. See github.com/versewright/versed/core/sqlite for
// details.
//
// # When to Use
//
// Use this package when:
//   - Query latency on large corpora matters (the CGO driver is faster)
//   - You already have CGO in your build pipeline
//
// Use the default pure Go driver when:
//   - Portability or cross-compilation is required
//   - You want simpler deployment (single static binary)
package sqliteexternal

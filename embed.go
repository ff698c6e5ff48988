// Package root exposes files embedded at the repository root, currently the
// goose SQL migrations consumed by the migrate subcommand and the test
// harness.
package root

import "embed"

// Migrations contains the embedded goose migration files.
//
//go:embed migrations
var Migrations embed.FS

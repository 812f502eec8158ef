// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains the goose migrations, one directory per dialect.
//
//go:embed migrations/*/*.sql
var Migrations embed.FS

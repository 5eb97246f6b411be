package infrastructure

import "embed"

// Migrations holds the goose migrations of the payments schema
//
//go:embed migrations/*.sql
var Migrations embed.FS

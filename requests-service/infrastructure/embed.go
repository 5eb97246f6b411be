package infrastructure

import "embed"

// Migrations holds the goose migrations of the requests schema
//
//go:embed migrations/*.sql
var Migrations embed.FS

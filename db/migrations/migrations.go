// Package migrations embeds the escrow schema.
package migrations

import (
	"embed"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// Version is the schema version the service runs against.
const Version = 1

// Source opens the embedded files as a golang-migrate source. The caller
// closes it.
func Source() (source.Driver, error) {
	return iofs.New(files, ".")
}

// Package migrations embeds the schema for every supported database driver.
// Each driver has its own directory of golang-migrate files.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

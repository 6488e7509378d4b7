// Package gamedata provides the embedded fleet catalog and display legend.
package gamedata

import "embed"

//go:embed fleet.json symbols.json
var dataFS embed.FS

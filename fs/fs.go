// Package appfs exposes the embedded static assets (database migrations).
package appfs

import "embed"

//go:embed migrations
var FS embed.FS

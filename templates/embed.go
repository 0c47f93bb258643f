// Package templates embeds the HTML template files so the compiled binary is
// self-contained.
package templates

import "embed"

//go:embed layouts/*.html pages/*.html
var FS embed.FS

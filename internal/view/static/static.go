// Package static holds the site's stylesheet and images.
package static

import "embed"

//go:embed *.css *.svg
var FS embed.FS

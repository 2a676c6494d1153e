// Package static embeds the single-page client served at /static/.
package static

import "embed"

// FS holds index.html and the client assets
//
//go:embed index.html app.js style.css
var FS embed.FS

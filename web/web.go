// Package web embeds the static demo page.
package web

import "embed"

//go:embed index.html
var Content embed.FS

// Package templates хранит HTML-шаблоны дашборда внутри бинарника.
package templates

import "embed"

//go:embed dashboard/*.html
var FS embed.FS

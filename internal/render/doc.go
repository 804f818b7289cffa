// Package render turns a palette into terminal output.
//
// Each output style is a Renderer. The caller resolves a single Mode from
// the raw command-line switches with ResolveMode and then asks New for the
// matching Renderer, so flag precedence lives in one place.
//
// Coloured output uses 24-bit SGR background sequences (ESC[48;2;R;G;Bm)
// and is reset with ESC[0m.
package render

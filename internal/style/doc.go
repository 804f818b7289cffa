// Package style provides terminal styling for palette's own diagnostics.
//
// Palette output itself is written by package render with fixed escape
// sequences. This package only decorates messages on stderr, such as the
// "E:" prefix of an error line, and does so only when the destination is a
// terminal that supports colour. Output redirected to a file or pipe stays
// plain.
//
// # Theme
//
// Styles use lipgloss adaptive colours with a light and a dark variant:
//   - Error: failures that end the invocation
//   - Warning: recoverable problems, such as colourize reading no colours
//   - Muted: hints
//
// lipgloss picks the variant from the background of the destination terminal.
package style

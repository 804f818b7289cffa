package generator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"palette/internal/colour"
)

// ErrInput is returned when the colour stream cannot be read.
var ErrInput = errors.New("reading colours")

// Colourize reads one hex colour per line until EOF. Blank lines are
// skipped. The first malformed line aborts the read with a *colour.HexError
// naming that line.
func Colourize(r io.Reader, policy colour.Policy) (colour.Palette, error) {
	sc := bufio.NewScanner(r)

	p := colour.Palette{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		info, err := colour.InfoFromHex(text, policy)
		if err != nil {
			return nil, &colour.HexError{Text: text, Line: lineNo}
		}
		p = append(p, info)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInput, err)
	}
	return p, nil
}

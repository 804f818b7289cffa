package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedHex is matched by every hex decoding failure.
var ErrMalformedHex = errors.New("malformed hex colour")

// HexError reports text that could not be decoded.
type HexError struct {
	Text string
	// Line is the 1-based input line, or 0 when the text did not come from a
	// line-oriented source.
	Line int
}

func (e *HexError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s %q", e.Line, ErrMalformedHex, e.Text)
	}
	return fmt.Sprintf("%s %q", ErrMalformedHex, e.Text)
}

func (e *HexError) Unwrap() error {
	return ErrMalformedHex
}

// Policy selects how Decode treats chunks that are not valid hex.
type Policy int

const (
	// PolicyStrict fails on the first chunk that is not two hex digits.
	PolicyStrict Policy = iota
	// PolicyLenient drops chunks that fail to parse and requires exactly
	// three to remain.
	PolicyLenient
)

// DefaultPolicy is the policy used by Decode.
const DefaultPolicy = PolicyStrict

// String makes Policy satisfy the fmt.Stringer interface.
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyLenient:
		return "lenient"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a policy name to its Policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "strict":
		return PolicyStrict, nil
	case "lenient":
		return PolicyLenient, nil
	default:
		return PolicyStrict, fmt.Errorf("unknown hex policy %q (want strict or lenient)", name)
	}
}

// Decode parses text under DefaultPolicy.
func Decode(text string) (RGB, error) {
	return DecodeWith(text, DefaultPolicy)
}

// DecodeWith parses six hex digits, optionally prefixed with a single '#'.
func DecodeWith(text string, policy Policy) (RGB, error) {
	cleaned := strings.ToLower(strings.TrimPrefix(text, "#"))

	channels := make([]uint8, 0, 3)
	for i := 0; i < len(cleaned); i += 2 {
		chunk := cleaned[i:min(i+2, len(cleaned))]
		v, ok := parseChunk(chunk)
		if !ok {
			if policy == PolicyLenient {
				continue
			}
			return RGB{}, &HexError{Text: text}
		}
		channels = append(channels, v)
	}

	if len(channels) != 3 {
		return RGB{}, &HexError{Text: text}
	}
	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func parseChunk(chunk string) (uint8, bool) {
	if len(chunk) != 2 {
		return 0, false
	}
	v, err := strconv.ParseUint(chunk, 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

// Encode formats c as six lowercase hex digits.
func Encode(c RGB) string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// InfoFromHex decodes text and returns its canonical Info.
func InfoFromHex(text string, policy Policy) (Info, error) {
	c, err := DecodeWith(text, policy)
	if err != nil {
		return Info{}, err
	}
	return NewInfo(c), nil
}

package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"palette/internal/colour"
)

var (
	// ErrConfigNotFound is returned when the wal file is missing or unreadable.
	ErrConfigNotFound = errors.New("wal colour file not found")
	// ErrConfigMalformed is returned when the wal file is not the expected JSON shape.
	ErrConfigMalformed = errors.New("wal colour file malformed")
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

const walColoursFile = ".cache/wal/colors.json"

// maxWalValueLen is the longest string value read from "colors"; longer
// values are skipped like non-string ones.
const maxWalValueLen = 30

// DefaultWalPath returns <home>/.cache/wal/colors.json.
func DefaultWalPath() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, walColoursFile), nil
}

// Wal loads the palette stored in the wal colour file at path.
func Wal(path string, policy colour.Policy) (colour.Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigNotFound, err)
	}
	p, err := ParseWal(bytes.NewReader(data), policy)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseWal decodes a document of the form {"colors": {"<key>": "<hex>", ...}}.
// Colours keep the order their keys appear in; values that are not strings,
// or are strings longer than 30 bytes, are skipped.
func ParseWal(r io.Reader, policy colour.Policy) (colour.Palette, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("%w: top level: %w", ErrConfigMalformed, err)
	}

	var (
		p     colour.Palette
		found bool
	)
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfigMalformed, err)
		}
		if key != "colors" {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrConfigMalformed, key, err)
			}
			continue
		}
		p, err = parseColours(dec, policy)
		if err != nil {
			return nil, err
		}
		found = true
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after top-level object", ErrConfigMalformed)
	}
	if !found {
		return nil, fmt.Errorf("%w: no \"colors\" object", ErrConfigMalformed)
	}
	return p, nil
}

func parseColours(dec *json.Decoder, policy colour.Policy) (colour.Palette, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("%w: \"colors\": %w", ErrConfigMalformed, err)
	}

	p := colour.Palette{}
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: \"colors\": %w", ErrConfigMalformed, err)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: colors.%s: %w", ErrConfigMalformed, key, err)
		}
		if len(raw) == 0 || raw[0] != '"' {
			continue
		}
		var hex string
		if err := json.Unmarshal(raw, &hex); err != nil {
			return nil, fmt.Errorf("%w: colors.%s: %w", ErrConfigMalformed, key, err)
		}
		if len(hex) > maxWalValueLen {
			continue
		}

		info, err := colour.InfoFromHex(hex, policy)
		if err != nil {
			return nil, fmt.Errorf("colors.%s: %w", key, err)
		}
		p = append(p, info)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("%w: \"colors\": %w", ErrConfigMalformed, err)
	}
	return p, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func objectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("expected object key, got %v", tok)
	}
	return key, nil
}

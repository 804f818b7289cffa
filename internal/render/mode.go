package render

import "fmt"

// Mode is the single output style chosen for one invocation.
type Mode int

const (
	// ModeSwatch prints a coloured block followed by the hex text.
	ModeSwatch Mode = iota
	// ModePlain prints bare hex text.
	ModePlain
	// ModePlainCode prints an uncoloured array literal.
	ModePlainCode
	// ModeLined prints one full line of colour per entry.
	ModeLined
	// ModeCode prints an array literal with each entry coloured.
	ModeCode
)

// String makes Mode satisfy the fmt.Stringer interface.
func (m Mode) String() string {
	switch m {
	case ModeSwatch:
		return "swatch"
	case ModePlain:
		return "plain"
	case ModePlainCode:
		return "plain-code"
	case ModeLined:
		return "lined"
	case ModeCode:
		return "code"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Flags are the raw output switches as given on the command line.
type Flags struct {
	Plain bool
	Code  bool
	Lined bool
}

// ResolveMode picks the output mode. Plain wins over everything and combines
// with Code; otherwise Lined beats Code, and the default is ModeSwatch.
func ResolveMode(f Flags) Mode {
	switch {
	case f.Plain && f.Code:
		return ModePlainCode
	case f.Plain:
		return ModePlain
	case f.Lined:
		return ModeLined
	case f.Code:
		return ModeCode
	default:
		return ModeSwatch
	}
}

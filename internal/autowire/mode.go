package autowire

import (
	"fmt"
	"strings"
)

// Mode selects which generation of factory the pass wires.
type Mode int

const (
	// ModeEager wires factories that hold live instances.
	ModeEager Mode = iota
	// ModeLazy wires factories that hold service ids.
	ModeLazy
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeEager:
		return "eager"
	case ModeLazy:
		return "lazy"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "eager" or "lazy", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "eager":
		return ModeEager, nil
	case "lazy":
		return ModeLazy, nil
	default:
		return 0, fmt.Errorf("invalid wiring mode %q: must be eager or lazy", s)
	}
}

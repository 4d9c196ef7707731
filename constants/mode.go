package constants

import "strings"

// Mode selects which remote recognition endpoint is used.
type Mode string

const (
	ModeGeneral     Mode = "general"     // standard text recognition
	ModeAccurate    Mode = "accurate"    // high-accuracy text recognition
	ModeTable       Mode = "table"       // table structure recognition
	ModeHandwriting Mode = "handwriting" // handwritten text recognition
)

var allModes = []Mode{ModeGeneral, ModeAccurate, ModeTable, ModeHandwriting}

// Modes returns the supported recognition modes.
func Modes() []Mode {
	out := make([]Mode, len(allModes))
	copy(out, allModes)
	return out
}

// ParseMode normalizes a user-supplied mode string. The zero Mode and ok=false
// are returned for anything unrecognized.
func ParseMode(s string) (Mode, bool) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allModes {
		if m == known {
			return m, true
		}
	}
	return "", false
}

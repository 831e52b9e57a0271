package theme

import (
	"strconv"
	"strings"
)

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// detectDark reads the environment's colour-scheme signal. An explicit
// MOODKEEPER_COLOR_SCHEME wins; otherwise the background index in COLORFGBG
// ("fg;bg" or "fg;default;bg") is used. ok is false when neither says
// anything usable.
func detectDark(lookup lookupFunc) (dark bool, ok bool) {
	if v, found := lookup("MOODKEEPER_COLOR_SCHEME"); found {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "dark":
			return true, true
		case "light":
			return false, true
		}
	}

	v, found := lookup("COLORFGBG")
	if !found || v == "" {
		return false, false
	}
	fields := strings.Split(v, ";")
	bg, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return false, false
	}
	// ANSI 0-6 and 8 are dark backgrounds; 7 and 9-15 are light.
	return bg <= 6 || bg == 8, true
}

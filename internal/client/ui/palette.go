// Package ui renders view state to a terminal: coloured banners, status
// lines, tables and sparkline charts. The active palette is the global style
// marker switched by the theme, so output produced outside any view follows
// the current theme too.
package ui

import (
	"sync"

	"github.com/fatih/color"
)

type Palette struct {
	Error   *color.Color
	Warn    *color.Color
	Success *color.Color
	Info    *color.Color
	Muted   *color.Color
	Accent  *color.Color
}

func lightPalette() Palette {
	return Palette{
		Error:   color.New(color.FgRed, color.Bold),
		Warn:    color.New(color.FgYellow),
		Success: color.New(color.FgGreen),
		Info:    color.New(color.FgBlue),
		Muted:   color.New(color.FgBlack, color.Faint),
		Accent:  color.New(color.FgMagenta, color.Bold),
	}
}

func darkPalette() Palette {
	return Palette{
		Error:   color.New(color.FgHiRed, color.Bold),
		Warn:    color.New(color.FgHiYellow),
		Success: color.New(color.FgHiGreen),
		Info:    color.New(color.FgHiCyan),
		Muted:   color.New(color.FgHiBlack),
		Accent:  color.New(color.FgHiMagenta, color.Bold),
	}
}

var (
	mu      sync.RWMutex
	dark    bool
	current = lightPalette()
)

// ApplyTheme installs the light or dark palette process-wide.
func ApplyTheme(darkMode bool) {
	mu.Lock()
	defer mu.Unlock()

	dark = darkMode
	if darkMode {
		current = darkPalette()
	} else {
		current = lightPalette()
	}
}

// DarkMode reports whether the dark palette is installed.
func DarkMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return dark
}

func Current() Palette {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
)

type BannerKind int

const (
	BannerError BannerKind = iota
	BannerWarn
	BannerInfo
	BannerSuccess
)

// Banner prints a one-line coloured message, e.g. "[!] Could not load".
func Banner(w io.Writer, kind BannerKind, format string, args ...any) {
	p := Current()
	msg := fmt.Sprintf(format, args...)

	switch kind {
	case BannerError:
		p.Error.Fprintln(w, "[!] "+msg)
	case BannerWarn:
		p.Warn.Fprintln(w, "[~] "+msg)
	case BannerSuccess:
		p.Success.Fprintln(w, "[✓] "+msg)
	default:
		p.Info.Fprintln(w, "[i] "+msg)
	}
}

// Heading prints a widget title.
func Heading(w io.Writer, title string) {
	Current().Accent.Fprintln(w, "== "+title+" ==")
}

// Loading prints the per-widget loading line.
func Loading(w io.Writer, what string) {
	Current().Muted.Fprintf(w, "… loading %s\n", what)
}

// SampleNotice marks a widget rendered from sample data.
func SampleNotice(w io.Writer) {
	Current().Warn.Fprintln(w, "(using sample data)")
}

// Empty prints an explicit empty state.
func Empty(w io.Writer, msg string) {
	Current().Muted.Fprintln(w, msg)
}

// Table writes rows as aligned columns. The first row is the header.
func Table(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// Sparkline scales values between lo and hi onto eight block characters.
// Values outside the range are clamped.
func Sparkline(values []float64, lo, hi float64) string {
	if len(values) == 0 {
		return ""
	}
	if hi <= lo {
		hi = lo + 1
	}

	var b strings.Builder
	for _, v := range values {
		v = math.Max(lo, math.Min(hi, v))
		idx := int(math.Round((v - lo) / (hi - lo) * float64(len(sparkRunes)-1)))
		b.WriteRune(sparkRunes[idx])
	}
	return b.String()
}

// Bar renders n as a horizontal bar of at most width cells relative to max.
func Bar(n, max, width int) string {
	if max <= 0 || n <= 0 {
		return ""
	}
	cells := n * width / max
	if cells == 0 {
		cells = 1
	}
	return strings.Repeat("█", cells)
}

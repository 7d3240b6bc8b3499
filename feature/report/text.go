package report

import (
	"fmt"
	"io"
	"strings"

	"deviceinfocompare/core/reconcile"

	"github.com/charmbracelet/lipgloss"
)

// Markers prefix every headline. They survive when colors are disabled.
const (
	markerGood    = "[+]"
	markerBad     = "[-]"
	markerNeutral = "[?]"
)

const (
	colorGreen  = "#50FA7B"
	colorRed    = "#FF5555"
	colorYellow = "#F1FA8C"
	colorMuted  = "#6272A4"
)

type textStyles struct {
	good, bad, neutral, muted lipgloss.Style
}

func newTextStyles(w io.Writer, noColor bool) textStyles {
	if noColor {
		plain := lipgloss.NewStyle()
		return textStyles{good: plain, bad: plain, neutral: plain, muted: plain}
	}
	r := lipgloss.NewRenderer(w)
	return textStyles{
		good:    r.NewStyle().Foreground(lipgloss.Color(colorGreen)),
		bad:     r.NewStyle().Foreground(lipgloss.Color(colorRed)).Bold(true),
		neutral: r.NewStyle().Foreground(lipgloss.Color(colorYellow)),
		muted:   r.NewStyle().Foreground(lipgloss.Color(colorMuted)),
	}
}

// TextRenderer prints a human readable summary of a report.
type TextRenderer struct {
	// NoColor disables terminal styling.
	NoColor bool
}

// Render implements Renderer.
func (t *TextRenderer) Render(w io.Writer, r *reconcile.Report) error {
	st := newTextStyles(w, t.NoColor)
	var b strings.Builder

	fmt.Fprintf(&b, "Previous device amount is %d\n", r.PreviousCount)
	switch {
	case r.Delta == 0:
		b.WriteString(st.good.Render(fmt.Sprintf("%s Current device amount is %d too", markerGood, r.CurrentCount)))
	case r.Delta > 0:
		b.WriteString(st.neutral.Render(fmt.Sprintf("%s Current device amount is %d %s", markerNeutral, r.CurrentCount, FormatDelta(r.Delta))))
	default:
		b.WriteString(st.bad.Render(fmt.Sprintf("%s Current device amount is %d %s", markerBad, r.CurrentCount, FormatDelta(r.Delta))))
	}
	b.WriteString("\n")

	writeSection(&b, st, r.Missing,
		st.bad.Render(fmt.Sprintf("%s %d device(s) are missing. These are:", markerBad, len(r.Missing))),
		st.good.Render(markerGood+" No devices are missing, hooray!"))
	writeSection(&b, st, r.New,
		st.neutral.Render(fmt.Sprintf("%s %d device(s) are new. These are:", markerNeutral, len(r.New))),
		st.muted.Render(markerNeutral+" No new devices found"))
	writeSection(&b, st, r.Broken,
		st.bad.Render(fmt.Sprintf("%s %d device(s) are broken since dump. These are:", markerBad, len(r.Broken))),
		st.good.Render(markerGood+" No devices are broken since dump"))
	writeSection(&b, st, r.Fixed,
		st.good.Render(fmt.Sprintf("%s %d device(s) are fixed since dump. These are:", markerGood, len(r.Fixed))),
		st.muted.Render(markerBad+" No devices are fixed since dump"))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, st textStyles, devices []reconcile.DeviceRecord, header, empty string) {
	b.WriteString("\n")
	if len(devices) == 0 {
		b.WriteString(empty)
		b.WriteString("\n")
		return
	}
	b.WriteString(header)
	b.WriteString("\n")
	for i, d := range devices {
		b.WriteString("\n")
		b.WriteString(entryLine(i+1, d))
		b.WriteString("\n")
	}
}

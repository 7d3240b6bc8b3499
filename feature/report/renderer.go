package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"deviceinfocompare/core/reconcile"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer writes a comparison report to w.
type Renderer interface {
	Render(w io.Writer, r *reconcile.Report) error
}

// New returns the renderer for the given output format.
func New(format string, noColor bool) (Renderer, error) {
	switch format {
	case "", FormatText:
		return &TextRenderer{NoColor: noColor}, nil
	case FormatJSON:
		return &JSONRenderer{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("unknown report format: %s", format)
	}
}

// FormatDelta formats a device count change as "(+3)" or "(-2)".
// No change yields the empty string.
func FormatDelta(delta int) string {
	switch {
	case delta > 0:
		return "(+" + strconv.Itoa(delta) + ")"
	case delta < 0:
		return "(" + strconv.Itoa(delta) + ")"
	default:
		return ""
	}
}

// JSONRenderer writes the report as JSON.
type JSONRenderer struct {
	Indent string
}

// Render implements Renderer.
func (j *JSONRenderer) Render(w io.Writer, r *reconcile.Report) error {
	enc := json.NewEncoder(w)
	if j.Indent != "" {
		enc.SetIndent("", j.Indent)
	}
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// entryLine formats one listed device.
func entryLine(n int, d reconcile.DeviceRecord) string {
	return fmt.Sprintf("%d. %s [%s]\n%s", n, d.DeviceName, d.DeviceClass, d.DeviceID)
}

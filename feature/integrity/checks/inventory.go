package checks

import (
	"context"
	"time"

	"deviceinfocompare/feature/inventory"
)

// InventoryReport is the result of an inventory check.
type InventoryReport struct {
	Available   bool   `json:"available"`
	DeviceCount int    `json:"device_count"`
	DurationMS  int64  `json:"duration_ms"`
	Error       string `json:"error,omitempty"`
}

// CheckInventory runs one live enumeration. A nil enumerator means the
// platform is unsupported.
func CheckInventory(ctx context.Context, enum inventory.Enumerator) *InventoryReport {
	if enum == nil {
		return &InventoryReport{Error: inventory.ErrUnsupportedPlatform.Error()}
	}

	start := time.Now()
	devices, err := enum.CurrentDevices(ctx)
	report := &InventoryReport{DurationMS: time.Since(start).Milliseconds()}
	if err != nil {
		report.Error = err.Error()
		return report
	}

	report.Available = true
	report.DeviceCount = len(devices)
	return report
}

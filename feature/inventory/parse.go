package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"deviceinfocompare/core/reconcile"
	"deviceinfocompare/core/utils"
)

// ErrEmptyOutput is returned when the inventory utility printed nothing.
var ErrEmptyOutput = errors.New("inventory utility returned no output")

// StatusOK is the Get-PnpDevice status of a working device.
const StatusOK = "OK"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ParsePnpJSON converts Get-PnpDevice ConvertTo-Json output into device
// records, preserving the utility's order.
//
// ConvertTo-Json prints a bare object instead of an array when exactly one
// device is present; both shapes are accepted. Null names and classes become
// empty strings.
func ParsePnpJSON(data []byte) ([]reconcile.DeviceRecord, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	data = bytes.ToValidUTF8(data, nil)
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyOutput
	}

	var raw []map[string]any
	if data[0] == '{' {
		var single map[string]any
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("failed to decode device list: %w", err)
		}
		raw = []map[string]any{single}
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode device list: %w", err)
	}

	devices := make([]reconcile.DeviceRecord, 0, len(raw))
	for _, item := range raw {
		devices = append(devices, reconcile.DeviceRecord{
			DeviceID:     utils.ToString(item["InstanceId"]),
			DeviceName:   utils.ToString(item["FriendlyName"]),
			DeviceClass:  utils.ToString(item["Class"]),
			DeviceStatus: utils.ToString(item["Status"]) == StatusOK,
		})
	}
	return devices, nil
}

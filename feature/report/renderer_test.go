package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"deviceinfocompare/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func sampleReport() *reconcile.Report {
	previous := reconcile.Snapshot{
		{DeviceID: "PCI\\VEN_8086", DeviceName: "Intel Ethernet", DeviceClass: "Net", DeviceStatus: true},
		{DeviceID: "USB\\VID_046D", DeviceName: "USB Receiver", DeviceClass: "USB", DeviceStatus: false},
		{DeviceID: "HDAUDIO\\FUNC_01", DeviceName: "Realtek Audio", DeviceClass: "MEDIA", DeviceStatus: true},
	}
	current := reconcile.Snapshot{
		{DeviceID: "PCI\\VEN_8086", DeviceName: "Intel Ethernet", DeviceClass: "Net", DeviceStatus: false},
		{DeviceID: "USB\\VID_046D", DeviceName: "USB Receiver", DeviceClass: "USB", DeviceStatus: true},
		{DeviceID: "BTH\\MS_BTHPAN", DeviceName: "Bluetooth PAN", DeviceClass: "Bluetooth", DeviceStatus: true},
		{DeviceID: "HID\\VID_1532", DeviceName: "Razer Mouse", DeviceClass: "Mouse", DeviceStatus: true},
	}
	return reconcile.Compare(current, previous)
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "(+3)", FormatDelta(3))
	assert.Equal(t, "(-2)", FormatDelta(-2))
	assert.Equal(t, "", FormatDelta(0))
}

func TestNew(t *testing.T) {
	r, err := New("", false)
	require.NoError(t, err)
	assert.IsType(t, &TextRenderer{}, r)

	r, err = New(FormatJSON, false)
	require.NoError(t, err)
	assert.IsType(t, &JSONRenderer{}, r)

	_, err = New("yaml", false)
	assert.Error(t, err)
}

func TestTextRenderer_Changes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{NoColor: true}).Render(&buf, sampleReport()))

	want := strings.Join([]string{
		"Previous device amount is 3",
		"[?] Current device amount is 4 (+1)",
		"",
		"[-] 1 device(s) are missing. These are:",
		"",
		"1. Realtek Audio [MEDIA]",
		"HDAUDIO\\FUNC_01",
		"",
		"[?] 2 device(s) are new. These are:",
		"",
		"1. Bluetooth PAN [Bluetooth]",
		"BTH\\MS_BTHPAN",
		"",
		"2. Razer Mouse [Mouse]",
		"HID\\VID_1532",
		"",
		"[-] 1 device(s) are broken since dump. These are:",
		"",
		"1. Intel Ethernet [Net]",
		"PCI\\VEN_8086",
		"",
		"[+] 1 device(s) are fixed since dump. These are:",
		"",
		"1. USB Receiver [USB]",
		"USB\\VID_046D",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestTextRenderer_NoChanges(t *testing.T) {
	same := reconcile.Snapshot{{DeviceID: "A", DeviceName: "Disk", DeviceClass: "DiskDrive", DeviceStatus: true}}

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{NoColor: true}).Render(&buf, reconcile.Compare(same, same)))

	want := strings.Join([]string{
		"Previous device amount is 1",
		"[+] Current device amount is 1 too",
		"",
		"[+] No devices are missing, hooray!",
		"",
		"[?] No new devices found",
		"",
		"[+] No devices are broken since dump",
		"",
		"[-] No devices are fixed since dump",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestTextRenderer_FewerDevices(t *testing.T) {
	previous := reconcile.Snapshot{{DeviceID: "A"}, {DeviceID: "B"}, {DeviceID: "C"}}
	current := reconcile.Snapshot{{DeviceID: "A"}}

	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{NoColor: true}).Render(&buf, reconcile.Compare(current, previous)))
	assert.Contains(t, buf.String(), "[-] Current device amount is 1 (-2)")
}

func TestTextRenderer_ColorKeepsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextRenderer{}).Render(&buf, sampleReport()))

	out := buf.String()
	assert.Contains(t, out, "device(s) are missing. These are:")
	assert.Contains(t, out, "1. Realtek Audio [MEDIA]\nHDAUDIO\\FUNC_01")
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{Indent: "  "}).Render(&buf, sampleReport()))

	var decoded reconcile.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Delta)
	assert.Equal(t, []string{"BTH\\MS_BTHPAN", "HID\\VID_1532"}, reconcile.Snapshot(decoded.New).IDs())
	assert.Contains(t, buf.String(), "\n  \"previous_count\": 3")
}

func TestJSONRenderer_EmptyListsAreArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONRenderer{}).Render(&buf, reconcile.Compare(nil, nil)))
	assert.Contains(t, buf.String(), `"missing":[]`)
	assert.NotContains(t, buf.String(), "null")
}

func TestLogRenderer(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := &LogRenderer{Logger: zap.New(core)}

	require.NoError(t, r.Render(nil, sampleReport()))

	summary := logs.FilterMessage("Device comparison").All()
	require.Len(t, summary, 1)
	fields := summary[0].ContextMap()
	assert.Equal(t, int64(3), fields["previous_count"])
	assert.Equal(t, "(+1)", fields["delta"])

	assert.Equal(t, 1, logs.FilterMessage("Device missing").Len())
	assert.Equal(t, 2, logs.FilterMessage("Device new").Len())
	assert.Equal(t, 1, logs.FilterMessage("Device broken").Len())
	assert.Equal(t, 1, logs.FilterMessage("Device fixed").Len())

	broken := logs.FilterMessage("Device broken").All()[0]
	assert.Equal(t, zapcore.WarnLevel, broken.Level)
	assert.Equal(t, "PCI\\VEN_8086", broken.ContextMap()["device_id"])
}

func TestLogRenderer_NilLogger(t *testing.T) {
	assert.NoError(t, (&LogRenderer{}).Render(nil, sampleReport()))
}

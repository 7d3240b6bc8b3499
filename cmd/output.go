package cmd

import (
	"fmt"
	"strconv"
	"time"

	"deviceinfocompare/core/reconcile"
	"deviceinfocompare/feature/dumps"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const timeLayout = "2006-01-02 15:04:05"

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// dumpTable lists stored dumps. Dump #0 is shown first as the live list.
func dumpTable(summaries []dumps.DumpSummary) string {
	t := newTable("ID", "Date", "Devices", "Description")
	t.Row("0", "now", "-", "Current devices")
	for _, s := range summaries {
		t.Row(
			strconv.FormatUint(uint64(s.ID), 10),
			s.Datetime.In(time.Local).Format(timeLayout),
			strconv.FormatInt(s.DeviceCount, 10),
			s.Description,
		)
	}
	return t.Render()
}

// deviceTable lists the devices of one snapshot.
func deviceTable(devices reconcile.Snapshot) string {
	t := newTable("#", "Name", "Class", "Status", "Instance ID")
	for i, d := range devices {
		t.Row(strconv.Itoa(i+1), d.DeviceName, d.DeviceClass, statusLabel(d.DeviceStatus), d.DeviceID)
	}
	return t.Render()
}

func statusLabel(ok bool) string {
	if ok {
		return "OK"
	}
	return "Error"
}

// dumpLabel describes a dump for the comparison header.
func dumpLabel(d *dumps.Dump) string {
	if d == nil {
		return "#0 (current devices)"
	}
	return fmt.Sprintf("#%d (%s, %s)", d.ID, d.Datetime.In(time.Local).Format(timeLayout), d.Description)
}

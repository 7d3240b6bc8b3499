package dumps

import (
	"time"

	"deviceinfocompare/core/reconcile"
)

// Dump is one stored inventory snapshot.
type Dump struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Datetime    time.Time `gorm:"column:datetime" json:"datetime"`
	Description string    `gorm:"column:description" json:"description"`
}

// TableName overrides the table name.
func (Dump) TableName() string {
	return "dump"
}

// Device is one device row belonging to a dump.
type Device struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement"`
	DeviceName   string `gorm:"column:device_name"`
	DeviceID     string `gorm:"column:device_id"`
	DeviceClass  string `gorm:"column:device_class"`
	DeviceStatus bool   `gorm:"column:device_status"`
	DumpID       uint   `gorm:"column:dump_id;index"`
}

// TableName overrides the table name.
func (Device) TableName() string {
	return "device"
}

// deviceColumns are the columns VerifySchema expects on the device table.
var deviceColumns = []string{"id", "device_name", "device_id", "device_class", "device_status", "dump_id"}

// ToRecord converts the row into the comparison engine's record type.
func (d Device) ToRecord() reconcile.DeviceRecord {
	return reconcile.DeviceRecord{
		DeviceID:     d.DeviceID,
		DeviceName:   d.DeviceName,
		DeviceClass:  d.DeviceClass,
		DeviceStatus: d.DeviceStatus,
	}
}

// newDevice builds a row for rec attached to dumpID.
func newDevice(dumpID uint, rec reconcile.DeviceRecord) Device {
	return Device{
		DeviceName:   rec.DeviceName,
		DeviceID:     rec.DeviceID,
		DeviceClass:  rec.DeviceClass,
		DeviceStatus: rec.DeviceStatus,
		DumpID:       dumpID,
	}
}

// DumpSummary is a dump with the number of devices it holds.
type DumpSummary struct {
	ID          uint      `json:"id"`
	Datetime    time.Time `json:"datetime"`
	Description string    `json:"description"`
	DeviceCount int64     `json:"device_count"`
}

// Comparison is the result of comparing two dumps.
// An ID of 0 refers to the live device list.
type Comparison struct {
	CurrentID  uint              `json:"current_id"`
	PreviousID uint              `json:"previous_id"`
	Report     *reconcile.Report `json:"report"`
}

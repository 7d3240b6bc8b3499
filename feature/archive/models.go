package archive

import (
	"time"

	"deviceinfocompare/core/reconcile"
)

// documentVersion is bumped when the Document layout changes incompatibly.
const documentVersion = 1

// Document is the archived form of one dump.
type Document struct {
	Version     int                      `json:"version"`
	DumpID      uint                     `json:"dump_id"`
	Datetime    time.Time                `json:"datetime"`
	Description string                   `json:"description"`
	Devices     []reconcile.DeviceRecord `json:"devices"`
}

// Entry describes one archived document in the bucket.
type Entry struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

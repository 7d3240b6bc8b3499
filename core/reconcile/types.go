package reconcile

// DeviceRecord is an immutable snapshot of one hardware device at capture time.
type DeviceRecord struct {
	// DeviceID is the stable hardware instance identifier.
	// It is the only field used to match devices across snapshots.
	DeviceID string `json:"device_id"`

	// DeviceName is the human-readable friendly name.
	DeviceName string `json:"device_name"`

	// DeviceClass is the device category label (e.g. "Net", "USB").
	DeviceClass string `json:"device_class"`

	// DeviceStatus is true when the device reports OK.
	DeviceStatus bool `json:"device_status"`
}

// Snapshot is an ordered sequence of devices captured at one moment.
type Snapshot []DeviceRecord

// IDs returns the device identifiers in snapshot order.
func (s Snapshot) IDs() []string {
	ids := make([]string, 0, len(s))
	for _, d := range s {
		ids = append(ids, d.DeviceID)
	}
	return ids
}

// VerdictKind identifies the outcome of a status classification.
type VerdictKind string

const (
	// VerdictNotFound means the device has no same-ID match in the reference.
	VerdictNotFound VerdictKind = "not_found"
	// VerdictUnchanged means the matched device has the same status.
	VerdictUnchanged VerdictKind = "unchanged"
	// VerdictChanged means the matched device has a different status.
	VerdictChanged VerdictKind = "changed"
)

// StatusVerdict is the result of ClassifyStatus.
// From and To are only meaningful when Kind is VerdictChanged.
type StatusVerdict struct {
	Kind VerdictKind
	From bool
	To   bool
}

// Fixed reports whether the verdict is a problem-to-OK transition.
func (v StatusVerdict) Fixed() bool {
	return v.Kind == VerdictChanged && v.To
}

// Broken reports whether the verdict is an OK-to-problem transition.
func (v StatusVerdict) Broken() bool {
	return v.Kind == VerdictChanged && !v.To
}

// Report is the output of one comparison.
// Every list preserves the iteration order of the snapshot it was taken from.
type Report struct {
	// PreviousCount is the number of devices in the previous snapshot.
	PreviousCount int `json:"previous_count"`

	// CurrentCount is the number of devices in the current snapshot.
	CurrentCount int `json:"current_count"`

	// Delta is CurrentCount - PreviousCount.
	Delta int `json:"delta"`

	// Missing lists previous devices with no match in current.
	Missing []DeviceRecord `json:"missing"`

	// New lists current devices with no match in previous.
	New []DeviceRecord `json:"new"`

	// Fixed lists current devices whose status went false -> true.
	Fixed []DeviceRecord `json:"fixed"`

	// Broken lists current devices whose status went true -> false.
	Broken []DeviceRecord `json:"broken"`
}

// Summary holds aggregate counts of a Report.
type Summary struct {
	PreviousCount int `json:"previous_count"`
	CurrentCount  int `json:"current_count"`
	Delta         int `json:"delta"`
	Missing       int `json:"missing"`
	New           int `json:"new"`
	Fixed         int `json:"fixed"`
	Broken        int `json:"broken"`
}

// Summary returns the aggregate counts of the report.
func (r *Report) Summary() Summary {
	return Summary{
		PreviousCount: r.PreviousCount,
		CurrentCount:  r.CurrentCount,
		Delta:         r.Delta,
		Missing:       len(r.Missing),
		New:           len(r.New),
		Fixed:         len(r.Fixed),
		Broken:        len(r.Broken),
	}
}

// HasChanges reports whether any device landed in one of the four lists.
func (r *Report) HasChanges() bool {
	return len(r.Missing)+len(r.New)+len(r.Fixed)+len(r.Broken) > 0
}

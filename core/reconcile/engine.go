package reconcile

// ConsumeMatch removes the first device in pool sharing target's ID.
// It returns true if a device was removed. The order of the remaining
// devices is preserved. If nothing matches, pool is left unchanged.
func ConsumeMatch(target DeviceRecord, pool *[]DeviceRecord) bool {
	p := *pool
	for i := range p {
		if p[i].DeviceID == target.DeviceID {
			*pool = append(p[:i], p[i+1:]...)
			return true
		}
	}
	return false
}

// ClassifyStatus looks up device in reference by ID and reports whether its
// status changed. Reference is never modified.
func ClassifyStatus(device DeviceRecord, reference []DeviceRecord) StatusVerdict {
	for _, ref := range reference {
		if ref.DeviceID != device.DeviceID {
			continue
		}
		if ref.DeviceStatus != device.DeviceStatus {
			return StatusVerdict{Kind: VerdictChanged, From: ref.DeviceStatus, To: device.DeviceStatus}
		}
		return StatusVerdict{Kind: VerdictUnchanged}
	}
	return StatusVerdict{Kind: VerdictNotFound}
}

// Compare reconciles the current snapshot against the previous one.
// Neither input is modified.
func Compare(current, previous Snapshot) *Report {
	report := &Report{
		PreviousCount: len(previous),
		CurrentCount:  len(current),
		Delta:         len(current) - len(previous),
		// Missing: present before, absent now
		Missing: unmatched(previous, current),
		// New: present now, absent before
		New:    unmatched(current, previous),
		Fixed:  []DeviceRecord{},
		Broken: []DeviceRecord{},
	}

	// Status transitions among devices present in both
	for _, device := range current {
		verdict := ClassifyStatus(device, previous)
		switch {
		case verdict.Fixed():
			report.Fixed = append(report.Fixed, device)
		case verdict.Broken():
			report.Broken = append(report.Broken, device)
		}
	}

	return report
}

// unmatched returns the devices of source that find no partner in a scratch
// copy of against, in source order.
func unmatched(source, against Snapshot) []DeviceRecord {
	pool := make([]DeviceRecord, len(against))
	copy(pool, against)

	result := []DeviceRecord{}
	for _, device := range source {
		if !ConsumeMatch(device, &pool) {
			result = append(result, device)
		}
	}
	return result
}

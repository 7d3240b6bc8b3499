// Package reconcile compares two device inventory snapshots.
//
// A snapshot is an ordered list of DeviceRecord values captured at one moment.
// Compare reconciles a current snapshot against a previous one and classifies
// every device into one of four categories:
//
//   - Missing: present in the previous snapshot, absent from the current one.
//   - New: present in the current snapshot, absent from the previous one.
//   - Fixed: present in both, status went from problem to OK.
//   - Broken: present in both, status went from OK to problem.
//
// # Architecture
//
// The engine consists of two helpers and one orchestration routine:
//
// 1. ConsumeMatch: finds and removes the first device with the same ID from a
//    working pool. Each pool element takes part in at most one match per pass.
//
// 2. ClassifyStatus: non-consuming lookup that reports whether a device's
//    status changed relative to a reference snapshot.
//
// 3. Compare: runs the missing pass, the new pass and the status pass over the
//    two snapshots and assembles a Report.
//
// Identity is the DeviceID alone. Names and classes are display-only.
//
// # Purity
//
// Compare performs no I/O, holds no state between calls and never mutates its
// inputs. Acquisition (live enumeration, database rehydration) and rendering
// live in the feature packages.
//
// # Usage Example
//
//	previous, _ := dumpSvc.Snapshot(ctx, lastID)
//	current, _ := dumpSvc.Snapshot(ctx, 0)
//
//	report := reconcile.Compare(current, previous)
//	if report.HasChanges() {
//	    renderer.Render(os.Stdout, report)
//	}
package reconcile

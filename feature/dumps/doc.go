// Package dumps stores device snapshots ("dumps") in the database and
// compares them.
//
// Dump #0 is not stored: it always means the devices present right now,
// as reported by the inventory enumerator. Every other id refers to a row
// in the dump table whose devices live in the device table.
//
// The package exposes a Service for the CLI and an HTTP Handler mounted
// through the feature loader:
//
//	GET    /dumps              list dumps
//	POST   /dumps              capture a new dump
//	DELETE /dumps              remove all dumps
//	GET    /dumps/:id/devices  devices of a dump (0 = live)
//	DELETE /dumps/:id          remove one dump
//	GET    /compare            compare ?current= against ?previous=
package dumps

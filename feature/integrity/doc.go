// Package integrity checks that the pieces the comparison workflow depends
// on are usable.
//
// # Checks Provided
//
//   - Schema: the dump and device tables exist with every column the gorm models map.
//   - Archive: the archive bucket exists and only holds well formed dump documents.
//   - Inventory: live device enumeration works on this host.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/archive : Runs the archive check.
//   - GET /integrity/inventory : Runs the inventory check.
package integrity

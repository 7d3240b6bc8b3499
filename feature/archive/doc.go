// Package archive copies dumps to and from object storage.
//
// Each exported dump becomes one JSON document under the "dumps/" prefix of
// the configured bucket, named after the dump id. Restoring a document
// stores it locally as a new dump, so a machine can be compared against a
// snapshot taken on another machine or before a reinstall.
package archive

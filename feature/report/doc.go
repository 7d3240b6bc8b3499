// Package report renders comparison reports for people and machines.
//
// TextRenderer prints the human summary used by the CLI, JSONRenderer emits
// the report as indented JSON, and LogRenderer sends the same information
// through zap so the HTTP server and scheduled runs leave a trace in the logs.
package report

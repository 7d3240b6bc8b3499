// Package server holds the HTTP server configuration.
//
// The start command serves the dump and compare API with Fiber. This package
// only defines the settings it needs: listen port, API key and body limit.
package server

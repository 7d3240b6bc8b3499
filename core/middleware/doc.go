// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: validates the API key to protect the dump and compare endpoints.
//   - RayID: assigns a unique Request ID (RayID) to every request, stores it in
//     the context locals and echoes it in the response headers for tracing.
//
// These components are registered globally in the start command.
package middleware

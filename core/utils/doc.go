// Package utils provides common conversion helpers.
// They normalize loosely typed values (decoded JSON, CLI arguments, URL
// parameters) before they reach domain types.
package utils

// Package internalcheck holds static policy tests for the binding.
//
// The tests load the module with golang.org/x/tools/go/packages and walk the
// syntax trees looking for patterns the binding forbids: cgo outside the
// backend package, and credentials reaching fmt or log calls where the
// redacting slog.LogValuer on connection parameters does not apply.
//
// # Internal Use Only
//
// This package has no API. It exists so that "go test ./..." enforces the
// policies on every change.
package internalcheck

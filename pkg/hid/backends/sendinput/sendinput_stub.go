//go:build !windows
// +build !windows

// On non-Windows platforms the package compiles to nothing and
// registers no factories, so auto-selection falls through to the other
// backends.
package sendinput

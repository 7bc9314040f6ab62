//go:build !linux
// +build !linux

// On non-Linux platforms the package compiles to nothing and registers
// no factories, so auto-selection falls through to the other backends.
package v4l2

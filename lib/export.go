// Package main provides C-compatible library exports for Sage
package main

import "C"

import (
	"github.com/ecco-mesh/ecco/core"
	"github.com/ecco-mesh/ecco/crypto"
	"github.com/ecco-mesh/ecco/did"
)

// SageVersion returns the library version
//
//export SageVersion
func SageVersion() *C.char {
	return C.CString("1.0.0")
}

// SageInit returns 0; it performs no initialization
//
//export SageInit
func SageInit() C.int {
	return 0
}

// SageCleanup is a no-op; the library holds no resources to release
//
//export SageCleanup
func SageCleanup() {
}

// These are placeholder references to ensure packages are included in the library
var (
	_ = core.NewVerificationService
	_ = crypto.NewManager
	_ = did.NewManager
)

func main() {
	// Required for buildmode=c-shared/c-archive
}

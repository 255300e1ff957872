// Package backend hosts the thin cgo layer that links the Go API to the
// native disk and mount libraries. It is the only package in the module that
// imports "C". The real implementation lives behind build tags so that the
// rest of the repository compiles and tests without cgo.
//
// Build tags:
//
//	cgo && linux       disk library bindings (disklib.go, exports.go)
//	!vddk_nomntapi     also link the mount library (mntapi.go)
//	vddkfault          install the Go fault table as the native fault hook
//
// Headers and libraries are expected under
// /usr/local/vmware-vix-disklib-distrib; set CGO_CFLAGS and CGO_LDFLAGS to
// point elsewhere.
package backend

// Package vddk binds the VMware Virtual Disk Development Kit disk library.
//
// A process initializes the native library once with Init, opens
// connections to hosts or the local file system, and opens disks on those
// connections:
//
//	lib, err := vddk.Init(vddk.Config{MajorVersion: 7, MinorVersion: 0})
//	if err != nil {
//	    return err
//	}
//	defer lib.Exit()
//
//	conn, err := lib.ConnectEx(p, vddk.ConnectOptions{ReadOnly: true, SnapshotRef: "snapshot-42"})
//	if err != nil {
//	    return err
//	}
//	defer conn.Disconnect()
//
//	disk, err := conn.Open("[datastore1] vm/vm.vmdk", params.OpenReadOnly)
//	if err != nil {
//	    return err
//	}
//	defer disk.Close()
//
// Native failures are returned as *Error carrying the native code verbatim.
// Binaries built without cgo, or on platforms other than linux, link a stub
// backend in which every call fails with CodeFail and errors.Is(err,
// ErrNotBuilt) holds.
//
// Reads and writes come in two forms. Read and Write take Go byte slices
// that the runtime keeps in place for the duration of the call. ReadBuffer,
// WriteBuffer and the asynchronous variants take a *buffer.Buffer whose
// memory lives outside the Go heap, which the native library may keep using
// after the call returns.
package vddk

// Package mntapi binds the VDDK mount library, which opens the disks of a
// virtual machine as a disk set, inspects the guest operating system and
// mounts its volumes on the local host.
//
// The mount library sits on top of the disk library: initialize both,
// connect with the disk library and pass the connection to OpenDisks.
//
//	set, err := mnt.OpenDisks(conn, []string{"[ds1] vm/vm.vmdk"}, params.OpenReadOnly)
//	if err != nil {
//	    return err
//	}
//	defer set.Close()
//
//	vols, err := set.Volumes()
//
// Binaries built without the mount library (no cgo, not linux, or the
// vddk_nomntapi tag) link a stub in which every call fails and
// errors.Is(err, vddk.ErrNotBuilt) holds.
package mntapi

// Package params defines the values that cross the disk library boundary:
// connection parameters with their credential and target variants, disk
// creation parameters, disk info, allocated block ranges and the mount
// library's OS and volume descriptions.
//
// Connection parameters are modelled twice. ConnectParams is what callers
// build: Credentials and Spec are sealed variant interfaces, so exactly one
// arm of each is ever populated. ConnectRecord mirrors the native struct, a
// pair of discriminants followed by every arm, and is what the binding
// reads and writes. The two conversions, ConnectParams.Record and
// ConnectRecord.Params, are the only places the discriminants are packed
// or unpacked.
//
// Text fields in records are *string. A nil pointer is a null native string
// and an empty string is an empty native string; the binding never merges
// the two.
package params

// Package mem provides typed buffer allocation on the Go heap.
//
// # Sized Allocation
//
// Alloc validates the requested element count against MaxLen before calling
// make, so an impossible request is reported as an error instead of a
// runtime panic. A zero count yields a nil buffer.
package mem

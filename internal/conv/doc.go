// Package conv provides checked size arithmetic for buffer allocation.
//
// Element counts arrive as Go ints and element sizes as uintptr. Before a
// buffer is charged against a budget or allocated, the byte size must be
// known to fit in the signed offset range; these helpers perform that
// check and report overflow as an error instead of wrapping silently.
package conv

// Package mem supplies manual reference counting for in-memory data
// structures. Note that Types and Functions exported by this package
// are not thread safe.
//
// Every reference counted allocation carries a hidden header, the Hdr
// type, embedded as the first field of the payload type. The header
// holds the reference count and an optional finalizer. An object is
// created with one reference through Allocate, aliased with Retain
// and disposed with Release. When the count drops below one the
// finalizer runs exactly once, releasing whatever sub-references the
// payload owns, and the header is poisoned so that any further use of
// the handle fails loudly instead of corrupting memory.
//
// Leak tracking is a debug aid with an explicit lifecycle: install a
// tracker with TrackLeaks, run the workload, then drain it with
// Report. It never affects production semantics.
package mem

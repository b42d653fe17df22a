package mem

// refcount value stamped into the header after the finalizer has run.
// Any operation on a poisoned header is a caller contract violation.
const released = int64(-1)

// Hdr is the hidden header of a reference counted heap object. Embed
// it as the first field of the payload type and initialize it with
// Allocate.
type Hdr struct {
	refcount int64
	finalize func()
}

// Header implement Object{}.
func (h *Hdr) Header() *Hdr {
	return h
}

// Object is any reference counted heap allocation, obtained by
// embedding Hdr as the first field of the payload type.
type Object interface {
	Header() *Hdr
}

// Allocate initializes obj with a single owned reference and an
// optional finalizer, and returns obj for chaining. The finalizer's
// responsibility is to release the sub-references owned by the
// payload, left-right-contents for a tree node, never non-owning
// back-references. Initializing the same object twice panics.
func Allocate(obj Object, finalize func()) Object {
	h := obj.Header()
	if h.refcount != 0 {
		panicerr("mem.Allocate(): object already live (%v references)", h.refcount)
	}
	h.refcount, h.finalize = 1, finalize
	if t := tracker; t != nil {
		t.register(obj)
	}
	return obj
}

// Retain acquires an additional owned reference on obj and returns
// obj for chaining. Retaining a released object panics.
func Retain(obj Object) Object {
	h := obj.Header()
	if h.refcount < 1 {
		panicerr("mem.Retain(): object already released")
	}
	h.refcount++
	return obj
}

// Release drops one owned reference from obj. When the count reaches
// zero the finalizer, if any, runs exactly once and the header is
// poisoned. Releasing a released object panics.
func Release(obj Object) {
	h := obj.Header()
	if h.refcount < 1 {
		panicerr("mem.Release(): object already released")
	}
	h.refcount--
	if h.refcount < 1 {
		if t := tracker; t != nil {
			t.deregister(obj)
		}
		if h.finalize != nil {
			h.finalize()
		}
		h.refcount, h.finalize = released, nil
	}
}

// NumReferences returns the current reference count on obj. Meant for
// tests and diagnostics, never for production control flow.
func NumReferences(obj Object) int64 {
	h := obj.Header()
	if h.refcount < 1 {
		panicerr("mem.NumReferences(): object already released")
	}
	return h.refcount
}

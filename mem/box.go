package mem

// Boxed wraps a primitive integer as a heap object. Used to make ad
// hoc payloads, sentinel values and integer keys.
type Boxed struct {
	Hdr
	val int64
}

// Box val as a heap object with a single owned reference.
func Box(val int64) *Boxed {
	box := &Boxed{val: val}
	Allocate(box, nil)
	return box
}

// Unbox returns the integer wrapped by box.
func Unbox(box *Boxed) int64 {
	return box.val
}

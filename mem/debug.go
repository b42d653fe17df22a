package mem

import "fmt"
import "io"
import "runtime"

import "github.com/bnclabs/golog"

// active tracker, nil when leak tracking is disabled.
var tracker *LeakTracker

type allocsite struct {
	file string
	line int
}

// LeakTracker records every live allocation along with its allocation
// site. Construct one at harness setup with TrackLeaks, drain it with
// Report at teardown and uninstall it with Stop.
type LeakTracker struct {
	live map[Object]allocsite
}

// TrackLeaks installs a new tracker. Subsequent Allocate calls record
// an entry until the matching Release-to-zero removes it. Installing
// a second tracker without stopping the first panics.
func TrackLeaks() *LeakTracker {
	if tracker != nil {
		panicerr("mem.TrackLeaks(): leak tracking already enabled")
	}
	tracker = &LeakTracker{live: make(map[Object]allocsite)}
	return tracker
}

func (t *LeakTracker) register(obj Object) {
	_, file, line, _ := runtime.Caller(2)
	t.live[obj] = allocsite{file: file, line: line}
}

func (t *LeakTracker) deregister(obj Object) {
	delete(t.live, obj)
}

// Report writes one line per still-live allocation, its address,
// allocation site and outstanding reference count, followed by a
// summary line when leaks were found. Returns the number of leaks.
func (t *LeakTracker) Report(w io.Writer) int {
	for obj, site := range t.live {
		fmt.Fprintf(w, "%p %s (line %d): %d references to object\n",
			obj, site.file, site.line, obj.Header().refcount)
	}
	if len(t.live) > 0 {
		fmt.Fprintln(w, "Memory leak(s) detected!")
		log.Warnf("mem: %v leaked object(s)\n", len(t.live))
	}
	return len(t.live)
}

// Stop uninstalls the tracker and clears its registry.
func (t *LeakTracker) Stop() {
	if tracker == t {
		tracker = nil
	}
	t.live = nil
}

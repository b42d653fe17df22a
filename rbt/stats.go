package rbt

import "unsafe"

import humanize "github.com/dustin/go-humanize"

// per-node heap footprint, not counting contents.
const nodesize = int64(unsafe.Sizeof(Node{}))

// Stats returns rbt statistics:
//
//	"n_count"       number of entries in the tree
//	"n_inserts"     cumulative number of inserts
//	"n_deletes"     cumulative number of deletes
//	"n_lookups"     cumulative number of lookups
//	"n_misses"      lookups that returned nothing
//	"nodememory"    estimated heap footprint of the nodes
//	"memcapacity"   configured memory budget
//	"h_insertdepth" histogram of insertion depths
func (t *RBT) Stats() map[string]interface{} {
	stats := make(map[string]interface{})
	stats["n_count"] = t.n_count
	stats["n_inserts"] = t.n_inserts
	stats["n_deletes"] = t.n_deletes
	stats["n_lookups"] = t.n_lookups
	stats["n_misses"] = t.n_misses
	stats["nodememory"] = t.n_count * nodesize
	stats["memcapacity"] = t.memcapacity
	stats["h_insertdepth"] = t.h_insertdepth.Fullstats()
	return stats
}

// Log vital statistics through the configured logger.
func (t *RBT) Log() {
	nodememory := humanize.Bytes(uint64(t.n_count * nodesize))
	capacity := humanize.Bytes(uint64(t.memcapacity))
	fmsg := "%v entries: %v, nodememory: %v of %v\n"
	infof(fmsg, t.logprefix, t.n_count, nodememory, capacity)
	infof("%v insertdepth: %v\n", t.logprefix, t.h_insertdepth.Logstring())
	if t.n_count*nodesize > t.memcapacity {
		warnf("%v nodememory exceeds memcapacity\n", t.logprefix)
	}
}

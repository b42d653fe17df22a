package rbt

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for rbt instance.
//
// "memcapacity" (int64, default: free RAM)
//      Memory budget for nodes and their contents. Advisory, used by
//      Stats() and Log() to report utilization against the budget.
//
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	setts := s.Settings{
		"memcapacity": int64(free),
	}
	return setts
}

func getsysmem() (total, used, free uint64) {
	m := sigar.Mem{}
	m.Get()
	return m.Total, m.Used, m.Free
}

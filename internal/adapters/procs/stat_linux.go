//go:build linux

package procs

import (
	"os"
	"syscall"
	"time"
)

func ownerUID(info os.FileInfo) (uint32, bool) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return 0, false
	}

	return st.Uid, true
}

func changeTime(info os.FileInfo) time.Time {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime()
	}

	return time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
}

//go:build !linux

package procs

import (
	"os"
	"time"
)

func ownerUID(_ os.FileInfo) (uint32, bool) {
	return 0, false
}

func changeTime(info os.FileInfo) time.Time {
	return info.ModTime()
}

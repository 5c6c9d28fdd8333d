//go:build linux

package archive

import (
	"io/fs"
	"syscall"

	"github.com/iqlusioninc/sear/archive/schema"
)

// createdTimeAttribute reports the filesystem's recorded creation time
// when available. Linux's syscall.Stat_t has no portable birth-time
// field across filesystems, so this tolerates its absence and reports
// nil, matching the original implementation's "tolerate unavailable
// creation time" behavior.
func createdTimeAttribute(info fs.FileInfo) *schema.Tai64n {
	_, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}
	return nil
}

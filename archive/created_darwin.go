//go:build darwin

package archive

import (
	"io/fs"
	"syscall"
	"time"

	"github.com/iqlusioninc/sear/archive/schema"
)

// createdTimeAttribute reports the filesystem's recorded creation time.
// Darwin's syscall.Stat_t exposes Birthtimespec, unlike Linux.
func createdTimeAttribute(info fs.FileInfo) *schema.Tai64n {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return nil
	}

	t := time.Unix(st.Birthtimespec.Sec, st.Birthtimespec.Nsec)
	ts := schema.FromTime(t)
	return &ts
}

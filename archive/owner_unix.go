//go:build unix

package archive

import (
	"io/fs"
	"syscall"

	"github.com/iqlusioninc/sear/archive/schema"
)

func ownerForFile(info fs.FileInfo) schema.Owner {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return schema.Owner{Kind: schema.OwnerUnspecified}
	}

	return schema.Owner{
		Kind: schema.OwnerID,
		UID:  st.Uid,
		GID:  st.Gid,
	}
}

//go:build windows

package archive

import (
	"io/fs"

	"github.com/iqlusioninc/sear/archive/schema"
)

func ownerForFile(info fs.FileInfo) schema.Owner {
	return schema.Owner{Kind: schema.OwnerUnspecified}
}

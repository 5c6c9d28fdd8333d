package archive

import (
	"io/fs"

	"github.com/iqlusioninc/sear/archive/schema"
)

const defaultMode = 0o644

// permissionsForFile builds a schema.Permissions from info. ACL and
// SELinux label support are not implemented; those lists are always
// empty, matching the original reference implementation's reserved
// (unimplemented) support for them.
func permissionsForFile(info fs.FileInfo) schema.Permissions {
	mode := uint32(info.Mode().Perm())
	if mode == 0 {
		mode = defaultMode
	}

	return schema.Permissions{Mode: mode}
}

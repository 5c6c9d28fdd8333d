//go:build windows

package archive

import (
	"io/fs"

	"github.com/iqlusioninc/sear/archive/schema"
)

// createdTimeAttribute is unsupported on this build: fs.FileInfo exposes
// no portable creation time here.
func createdTimeAttribute(info fs.FileInfo) *schema.Tai64n {
	return nil
}

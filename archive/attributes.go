package archive

import (
	"io/fs"

	"github.com/gabriel-vasile/mimetype"

	"github.com/iqlusioninc/sear/archive/schema"
)

const symlinkContentType = "inode/symlink"

// attributesForFile builds a schema.Attributes from a path and its
// symlink-aware fs.FileInfo. Creation time is tolerated as unavailable on
// filesystems/platforms that don't expose it. Content type is fixed for
// symlinks and sniffed from content for everything else, matching the
// original reference implementation's tree_magic-based detection.
func attributesForFile(path string, info fs.FileInfo) (schema.Attributes, error) {
	attrs := schema.Attributes{}

	if mt := modTimeAttribute(info); mt != nil {
		attrs.ModifiedAt = mt
	}
	if ct := createdTimeAttribute(info); ct != nil {
		attrs.CreatedAt = ct
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		attrs.ContentType = symlinkContentType
		return attrs, nil
	}

	mt, err := mimetype.DetectFile(path)
	if err != nil {
		// Content-type sniffing failing on a readable regular file is not
		// itself fatal to archiving; fall back to the generic type.
		attrs.ContentType = "application/octet-stream"
		return attrs, nil
	}
	attrs.ContentType = mt.String()

	return attrs, nil
}

func modTimeAttribute(info fs.FileInfo) *schema.Tai64n {
	ts := schema.FromTime(info.ModTime())
	return &ts
}

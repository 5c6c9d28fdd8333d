package archive

import (
	"os"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/iqlusioninc/sear/archive/schema"

	sear "github.com/iqlusioninc/sear"
)

// BuildEntry constructs a schema.Entry for the file at p without following
// symlinks, populating ownership, permissions, attributes, and kind from
// the local filesystem.
func BuildEntry(p string) (*schema.Entry, error) {
	if !utf8.ValidString(p) {
		return nil, sear.Errorf(sear.ErrPath, "path is not valid utf-8")
	}
	if err := validatePathComponents(p); err != nil {
		return nil, err
	}

	info, err := os.Lstat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sear.NewError(sear.ErrFileNotFound, p, err)
		}
		return nil, sear.NewError(sear.ErrIO, "unable to stat "+p, err)
	}

	kind, length, err := kindForFile(p, info)
	if err != nil {
		return nil, err
	}

	attrs, err := attributesForFile(p, info)
	if err != nil {
		return nil, err
	}

	return &schema.Entry{
		Path:        p,
		Length:      length,
		Owner:       ownerForFile(info),
		Permissions: permissionsForFile(info),
		Attributes:  attrs,
		Kind:        kind,
	}, nil
}

// validatePathComponents rejects "." and ".." components and, unless
// preservation is requested by a future caller, absolute paths.
func validatePathComponents(p string) error {
	if path.IsAbs(p) {
		return sear.Errorf(sear.ErrPath, "absolute paths are not allowed: %q", p)
	}

	for _, part := range strings.Split(p, "/") {
		if part == "." || part == ".." {
			return sear.Errorf(sear.ErrPath, "%q component is not allowed in %q", part, p)
		}
	}

	return nil
}

func kindForFile(p string, info os.FileInfo) (schema.Kind, uint64, error) {
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		target, err := os.Readlink(p)
		if err != nil {
			return schema.Kind{}, 0, sear.NewError(sear.ErrIO, "unable to read symlink "+p, err)
		}
		return schema.Kind{Tag: schema.KindLink, Symbolic: true, Target: target}, 0, nil

	case info.Mode().IsRegular():
		return schema.Kind{Tag: schema.KindFile}, uint64(info.Size()), nil

	default:
		return schema.Kind{}, 0, sear.Errorf(sear.ErrPath, "%q is not a regular file or symlink (directories and device nodes are unsupported)", p)
	}
}

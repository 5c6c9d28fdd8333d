package schema

// OwnerKind discriminates the Owner tagged variant.
type OwnerKind uint8

const (
	// OwnerUnspecified marks a platform that exposes no ownership info.
	OwnerUnspecified OwnerKind = iota
	// OwnerID carries a numeric uid/gid pair.
	OwnerID
	// OwnerName carries a textual username/groupname pair.
	OwnerName
)

// Owner is the tagged {Id{uid,gid} | Name{username,groupname} |
// Unspecified} variant described in the data model.
type Owner struct {
	_ struct{} `cbor:",keyasint,omitempty"`

	Kind      OwnerKind `cbor:"1,keyasint"`
	UID       uint32    `cbor:"2,keyasint"`
	GID       uint32    `cbor:"3,keyasint"`
	Username  string    `cbor:"4,keyasint"`
	Groupname string    `cbor:"5,keyasint"`
}

// Permissions carries the POSIX mode plus optional ACL and SELinux label
// lists, empty unless the platform and caller provide them.
type Permissions struct {
	_ struct{} `cbor:",keyasint,omitempty"`

	Mode          uint32   `cbor:"1,keyasint"`
	PosixACLs     []string `cbor:"2,keyasint"`
	SELinuxLabels []string `cbor:"3,keyasint"`
}

// Attributes carries timestamps, the sniffed or fixed content type, and
// any extended attribute names collected for the entry.
type Attributes struct {
	_ struct{} `cbor:",keyasint,omitempty"`

	CreatedAt   *Tai64n  `cbor:"1,keyasint"`
	ModifiedAt  *Tai64n  `cbor:"2,keyasint"`
	ContentType string   `cbor:"3,keyasint"`
	Xattr       []string `cbor:"4,keyasint"`
}

// KindTag discriminates the Kind tagged variant.
type KindTag uint8

const (
	// KindFile marks a regular file entry.
	KindFile KindTag = iota
	// KindLink marks a symbolic (or, reserved, hard) link entry.
	KindLink
)

// Kind is the tagged {File | Link{symbolic,target}} variant.
type Kind struct {
	_ struct{} `cbor:",keyasint,omitempty"`

	Tag      KindTag `cbor:"1,keyasint"`
	Symbolic bool    `cbor:"2,keyasint"`
	Target   string  `cbor:"3,keyasint"`
}

// Entry describes one archived file: its logical path, exact payload
// length, ownership, permissions, attributes, and kind.
type Entry struct {
	_ struct{} `cbor:",keyasint,omitempty"`

	Path        string      `cbor:"1,keyasint"`
	Length      uint64      `cbor:"2,keyasint"`
	Owner       Owner       `cbor:"3,keyasint"`
	Permissions Permissions `cbor:"4,keyasint"`
	Attributes  Attributes  `cbor:"5,keyasint"`
	Kind        Kind        `cbor:"6,keyasint"`
}

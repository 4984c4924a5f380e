package data

import (
	"slices"
	"strings"
)

// Capability is a feature a file system may or may not provide.
type Capability int

const (
	CapabilityReadContent Capability = iota
	CapabilityWriteContent
	CapabilityAppendContent
	CapabilityRandomAccessRead
	CapabilityRandomAccessWrite
	CapabilityAttributes
	CapabilityLastModified
	CapabilityGetLastModified
	CapabilitySetLastModifiedFile
	CapabilitySetLastModifiedFolder
	CapabilitySigning
	CapabilityCreate
	CapabilityDelete
	CapabilityRename
	CapabilityGetType
	CapabilityListChildren
	CapabilityURI
	CapabilityFSAttributes
	CapabilityJunctions
	CapabilityManifestAttributes
	CapabilityDispatcher
	CapabilityVirtual
	CapabilityCompress
	CapabilityDirectoryReadContent
)

var capabilityNames = [...]string{
	CapabilityReadContent:           "read_content",
	CapabilityWriteContent:          "write_content",
	CapabilityAppendContent:         "append_content",
	CapabilityRandomAccessRead:      "random_access_read",
	CapabilityRandomAccessWrite:     "random_access_write",
	CapabilityAttributes:            "attributes",
	CapabilityLastModified:          "last_modified",
	CapabilityGetLastModified:       "get_last_modified",
	CapabilitySetLastModifiedFile:   "set_last_modified_file",
	CapabilitySetLastModifiedFolder: "set_last_modified_folder",
	CapabilitySigning:               "signing",
	CapabilityCreate:                "create",
	CapabilityDelete:                "delete",
	CapabilityRename:                "rename",
	CapabilityGetType:               "get_type",
	CapabilityListChildren:          "list_children",
	CapabilityURI:                   "uri",
	CapabilityFSAttributes:          "fs_attributes",
	CapabilityJunctions:             "junctions",
	CapabilityManifestAttributes:    "manifest_attributes",
	CapabilityDispatcher:            "dispatcher",
	CapabilityVirtual:               "virtual",
	CapabilityCompress:              "compress",
	CapabilityDirectoryReadContent:  "directory_read_content",
}

func (c Capability) String() string {
	if c < 0 || int(c) >= len(capabilityNames) {
		return "unknown"
	}
	return capabilityNames[c]
}

// ParseCapability returns the capability with the given name.
func ParseCapability(s string) (Capability, bool) {
	s = strings.ToLower(s)
	for i, name := range capabilityNames {
		if name == s {
			return Capability(i), true
		}
	}
	return 0, false
}

// Capabilities describes what a provider or file system supports.
// Extra holds capabilities outside the known set, added by third party
// backends.
type Capabilities struct {
	Capabilities []Capability `json:"capabilities"`
	Extra        []string     `json:"extra,omitempty"`
}

// NewCapabilities returns a set holding the given capabilities.
func NewCapabilities(caps ...Capability) *Capabilities {
	c := &Capabilities{}
	c.Add(caps...)
	return c
}

// Add inserts capabilities that are not yet present.
func (c *Capabilities) Add(caps ...Capability) {
	for _, cap := range caps {
		if !c.Contains(cap) {
			c.Capabilities = append(c.Capabilities, cap)
		}
	}
}

// AddExtra inserts named capabilities outside the known set.
func (c *Capabilities) AddExtra(names ...string) {
	for _, name := range names {
		if cap, ok := ParseCapability(name); ok {
			c.Add(cap)
			continue
		}
		if !slices.Contains(c.Extra, name) {
			c.Extra = append(c.Extra, name)
		}
	}
}

// Contains checks if a capability is supported
func (c *Capabilities) Contains(cap Capability) bool {
	if c == nil {
		return false
	}
	return slices.Contains(c.Capabilities, cap)
}

// ContainsExtra checks a named capability against both the known set and
// the extra names.
func (c *Capabilities) ContainsExtra(name string) bool {
	if c == nil {
		return false
	}
	if cap, ok := ParseCapability(name); ok {
		return c.Contains(cap)
	}
	return slices.Contains(c.Extra, name)
}

// Clone returns an independent copy.
func (c *Capabilities) Clone() *Capabilities {
	if c == nil {
		return &Capabilities{}
	}
	return &Capabilities{
		Capabilities: slices.Clone(c.Capabilities),
		Extra:        slices.Clone(c.Extra),
	}
}

package data

// NameScope constrains where a relative name may resolve to.
type NameScope int

const (
	// ScopeFileSystem accepts any name within the same file system.
	ScopeFileSystem NameScope = iota
	// ScopeChild accepts direct children of the base only.
	ScopeChild
	// ScopeDescendent accepts strict descendants of the base.
	ScopeDescendent
	// ScopeDescendentOrSelf accepts the base itself or any descendant.
	ScopeDescendentOrSelf
)

func (s NameScope) String() string {
	switch s {
	case ScopeFileSystem:
		return "filesystem"
	case ScopeChild:
		return "child"
	case ScopeDescendent:
		return "descendent"
	case ScopeDescendentOrSelf:
		return "descendent_or_self"
	default:
		return "unknown"
	}
}

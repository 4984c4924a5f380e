package sqlite

// Config selects the database of a sqlite file system.
type Config struct {
	// Path is a database file or ":memory:".
	Path string `json:"path"`
	// Table holds the entries and is created on open.
	Table string `json:"table"`
}

// Builder registers Config under the sqlite namespace.
type Builder struct{}

func (Builder) Namespace() string {
	return Scheme
}

func (Builder) DefaultConfig() any {
	return Config{
		Path:  ":memory:",
		Table: "vfs_entries",
	}
}

package postgres

import (
	"net/url"
	"strconv"

	"github.com/mwantia/vfsname/name"
)

// Config selects the database of a postgres file system. Host, port and
// credentials come from the root of the file name.
type Config struct {
	// ConnString overrides the connection built from the root.
	ConnString string `json:"conn_string"`
	Database   string `json:"database"`
	SSLMode    string `json:"ssl_mode"`
	Table      string `json:"table"`
}

// Builder registers Config under the postgres namespace.
type Builder struct{}

func (Builder) Namespace() string {
	return Scheme
}

func (Builder) DefaultConfig() any {
	return Config{
		Database: "postgres",
		SSLMode:  "disable",
		Table:    "vfs_entries",
	}
}

// connString returns the connection string for a file system rooted at root.
func (c Config) connString(root name.Root) string {
	if c.ConnString != "" {
		return c.ConnString
	}

	u := &url.URL{
		Scheme: "postgres",
		Path:   "/" + c.Database,
	}
	if host, ok := root.(*name.HostRoot); ok {
		u.Host = host.Host + ":" + strconv.Itoa(host.Port)
		if host.User != "" {
			u.User = url.UserPassword(host.User, host.Password)
		}
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.SSLMode}}.Encode()
	}

	return u.String()
}

package consul

// Config contains the options of a consul file system. The agent address
// comes from the root of the file name.
type Config struct {
	// Token for Consul ACL authentication (optional)
	Token string `json:"token"`

	// Datacenter to use (optional)
	Datacenter string `json:"datacenter"`

	// Namespace for Consul Enterprise (optional)
	Namespace string `json:"namespace"`

	// Prefix for all keys in Consul KV (default: "vfs/")
	Prefix string `json:"prefix"`
}

// Builder registers Config under the consul namespace.
type Builder struct{}

func (Builder) Namespace() string {
	return Scheme
}

func (Builder) DefaultConfig() any {
	return Config{
		Prefix: "vfs/",
	}
}

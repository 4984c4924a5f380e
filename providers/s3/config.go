package s3

// Config contains the options of an s3 file system. The endpoint comes
// from the root of the file name, as do the credentials when the root
// carries user info.
type Config struct {
	Bucket    string `json:"bucket"`
	AccessKey string `json:"access_key"`
	SecretKey string `json:"secret_key"`
	Region    string `json:"region"`
	UseSSL    bool   `json:"use_ssl"`
}

// Builder registers Config under the s3 namespace.
type Builder struct{}

func (Builder) Namespace() string {
	return Scheme
}

func (Builder) DefaultConfig() any {
	return Config{
		Bucket: "vfs",
	}
}

package config

// Configfile represents the structure of the cacheprobe.yaml configuration file.
type Configfile struct {
	Version string     `yaml:"version"`
	Backend string     `yaml:"backend"`
	Actions ActionsDTO `yaml:"actions"`
	Local   LocalDTO   `yaml:"local"`
	S3      S3DTO      `yaml:"s3"`
	Redis   RedisDTO   `yaml:"redis"`
	NATS    NATSDTO    `yaml:"nats"`
}

// ActionsDTO configures the GitHub Actions cache service client.
// A nil Compression keeps the default; an empty one disables it.
type ActionsDTO struct {
	URL         string  `yaml:"url"`
	Token       string  `yaml:"token"`
	Compression *string `yaml:"compression"`
	CrossOS     bool    `yaml:"crossOs"`
}

// LocalDTO configures the on-disk store.
type LocalDTO struct {
	Dir string `yaml:"dir"`
}

// S3DTO configures the S3 backend.
type S3DTO struct {
	Bucket   string `yaml:"bucket"`
	Prefix   string `yaml:"prefix"`
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
}

// RedisDTO configures the Redis backend.
type RedisDTO struct {
	Addr     string  `yaml:"addr"`
	Password string  `yaml:"password"`
	DB       *int    `yaml:"db"`
	Prefix   *string `yaml:"prefix"`
}

// NATSDTO configures the NATS backend.
type NATSDTO struct {
	URL    string `yaml:"url"`
	Bucket string `yaml:"bucket"`
}

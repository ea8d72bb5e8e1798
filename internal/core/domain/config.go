package domain

// Backend names a cache lookup implementation.
type Backend string

const (
	// BackendActions queries the GitHub Actions cache service.
	BackendActions Backend = "actions"
	// BackendLocal reads entries from a directory on disk.
	BackendLocal Backend = "local"
	// BackendS3 checks for objects in an S3 bucket.
	BackendS3 Backend = "s3"
	// BackendRedis checks for keys in Redis.
	BackendRedis Backend = "redis"
	// BackendNATS checks for keys in a NATS JetStream key-value bucket.
	BackendNATS Backend = "nats"
)

// Config selects and configures the cache backend.
type Config struct {
	Backend Backend       `validate:"oneof=actions local s3 redis nats"`
	Actions ActionsConfig `validate:"-"`
	Local   LocalConfig   `validate:"-"`
	S3      S3Config      `validate:"-"`
	Redis   RedisConfig   `validate:"-"`
	NATS    NATSConfig    `validate:"-"`
}

// ActionsConfig configures the GitHub Actions cache service client.
type ActionsConfig struct {
	URL         string `validate:"omitempty,url"`
	Token       string
	Compression string
	CrossOS     bool
}

// LocalConfig configures the on-disk store.
type LocalConfig struct {
	Dir string `validate:"required"`
}

// S3Config configures the S3 backend.
type S3Config struct {
	Bucket   string `validate:"required"`
	Prefix   string
	Region   string
	Endpoint string `validate:"omitempty,url"`
}

// RedisConfig configures the Redis backend.
type RedisConfig struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`
	Prefix   string
}

// NATSConfig configures the NATS JetStream key-value backend.
type NATSConfig struct {
	URL    string `validate:"required"`
	Bucket string `validate:"required"`
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Backend: BackendActions,
		Actions: ActionsConfig{
			Compression: "zstd",
		},
		Local: LocalConfig{
			Dir: DefaultStorePath(),
		},
		Redis: RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "cacheprobe",
		},
		NATS: NATSConfig{
			URL:    "nats://127.0.0.1:4222",
			Bucket: "cacheprobe",
		},
	}
}

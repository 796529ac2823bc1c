package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database, cache,
// object store, specialist writes, background worker and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"1m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// MaxUploadBytes caps the size of a multipart request body
		MaxUploadBytes int64 `env:"HTTP_MAX_UPLOAD_BYTES" env-default:"52428800" yaml:"maxUploadBytes"`
		// AllowedOrigins lists the origins accepted by the CORS middleware
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"*" yaml:"allowedOrigins"`
		// EnablePprof mounts the pprof handlers under /debug/pprof
		EnablePprof bool `env:"HTTP_ENABLE_PPROF" env-default:"false" yaml:"enablePprof"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"backoffice" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Redis configures the cache of published specialists. An empty Addr disables caching.
	Redis struct {
		// Addr is the host:port of the redis server
		Addr string `env:"REDIS_ADDR" yaml:"addr"`
		// Password for redis authentication
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		// DB is the redis logical database
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// DetailTTL is how long a published specialist stays cached
		DetailTTL time.Duration `env:"REDIS_DETAIL_TTL" env-default:"30s" yaml:"detailTTL"`
	} `yaml:"redis"`

	// ObjectStore configures where specialist media is uploaded.
	ObjectStore struct {
		// Driver is one of s3, gcs or memory
		Driver string `env:"OBJECT_STORE_DRIVER" env-default:"memory" yaml:"driver"`
		// Endpoint is the S3 compatible endpoint or a GCS endpoint override
		Endpoint string `env:"OBJECT_STORE_ENDPOINT" yaml:"endpoint"`
		// Region of the S3 bucket
		Region string `env:"OBJECT_STORE_REGION" yaml:"region"`
		// Bucket receives the uploads
		Bucket string `env:"OBJECT_STORE_BUCKET" env-default:"specialists" yaml:"bucket"`
		// AccessKeyID for S3 authentication
		AccessKeyID string `env:"OBJECT_STORE_ACCESS_KEY_ID" yaml:"accessKeyID"`
		// SecretAccessKey for S3 authentication
		SecretAccessKey string `env:"OBJECT_STORE_SECRET_ACCESS_KEY" yaml:"secretAccessKey"`
		// UseSSL switches the S3 client to https
		UseSSL bool `env:"OBJECT_STORE_USE_SSL" env-default:"false" yaml:"useSSL"`
		// CreateBucket creates a missing S3 bucket on startup
		CreateBucket bool `env:"OBJECT_STORE_CREATE_BUCKET" env-default:"false" yaml:"createBucket"`
		// KeyPrefix is prepended to every object key
		KeyPrefix string `env:"OBJECT_STORE_KEY_PREFIX" env-default:"specialists/" yaml:"keyPrefix"`
		// CredentialsFile is the GCS service account file
		CredentialsFile string `env:"OBJECT_STORE_CREDENTIALS_FILE" yaml:"credentialsFile"`
	} `yaml:"objectStore"`

	// Specialist tunes the specialist write pipeline.
	Specialist struct {
		// TxTimeout bounds a whole create or update
		TxTimeout time.Duration `env:"SPECIALIST_TX_TIMEOUT" env-default:"1m" yaml:"txTimeout"`
		// UploadTimeout bounds a single media upload
		UploadTimeout time.Duration `env:"SPECIALIST_UPLOAD_TIMEOUT" env-default:"30s" yaml:"uploadTimeout"`
		// UploadConcurrency is the number of files uploaded in parallel
		UploadConcurrency int `env:"SPECIALIST_UPLOAD_CONCURRENCY" env-default:"4" yaml:"uploadConcurrency"`
		// SweepOrphans enqueues deletion of media left behind by rolled back writes
		SweepOrphans bool `env:"SPECIALIST_SWEEP_ORPHANS" env-default:"false" yaml:"sweepOrphans"`
		// MaxPageSize caps the size of a listing page
		MaxPageSize uint `env:"SPECIALIST_MAX_PAGE_SIZE" env-default:"100" yaml:"maxPageSize"`
	} `yaml:"specialist"`

	// Worker configures the background job runner.
	Worker struct {
		// MaxWorkers is the number of jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

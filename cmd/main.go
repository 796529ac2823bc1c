// Package main provides the CLI entrypoint for the specialist back office.
// It wires subcommands (serve, migrate, seed), loads configuration, and initializes logging.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"backoffice/internal/config"
	"backoffice/pkg/cache"
	"backoffice/pkg/cache/redis"
	"backoffice/pkg/logger"
	"backoffice/pkg/objectstore"
	"backoffice/pkg/objectstore/gcs"
	"backoffice/pkg/objectstore/memory"
	"backoffice/pkg/objectstore/s3compat"
	"backoffice/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getObjectStore builds the media store selected by objectStore.driver.
func getObjectStore(ctx context.Context, cfg *config.Config) objectstore.Store {
	oc := cfg.ObjectStore

	var (
		store objectstore.Store
		err   error
	)
	switch oc.Driver {
	case "s3":
		store, err = s3compat.New(ctx, s3compat.Options{
			Endpoint:        oc.Endpoint,
			Region:          oc.Region,
			AccessKeyID:     oc.AccessKeyID,
			SecretAccessKey: oc.SecretAccessKey,
			Bucket:          oc.Bucket,
			UseSSL:          oc.UseSSL,
			KeyPrefix:       oc.KeyPrefix,
			CreateBucket:    oc.CreateBucket,
		})
	case "gcs":
		store, err = gcs.New(ctx, gcs.Options{
			Bucket:          oc.Bucket,
			CredentialsFile: oc.CredentialsFile,
			Endpoint:        oc.Endpoint,
			KeyPrefix:       oc.KeyPrefix,
		})
	case "memory", "":
		logger.Warn(ctx, "using in-memory object store, uploads are lost on restart")
		store = memory.New(oc.KeyPrefix)
	default:
		logger.Fatal(ctx, "unknown object store driver", zap.String("driver", oc.Driver))
	}
	if err != nil {
		logger.Fatal(ctx, "could not create object store", zap.String("driver", oc.Driver), zap.Error(err))
	}

	return store
}

// getCache connects to redis, or returns a no-op cache when no address is configured.
func getCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	if cfg.Redis.Addr == "" {
		return cache.Nop{}, func() {}
	}

	c, err := redis.New(ctx, redis.Options{
		Addr:      cfg.Redis.Addr,
		Password:  cfg.Redis.Password,
		DB:        cfg.Redis.DB,
		Namespace: "backoffice",
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return c, func() {
		logger.Info(ctx, "closing redis client...")
		if err := c.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

// main sets up the root Cobra command, loads configuration and logging, and
// registers subcommands before executing the CLI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "backoffice",
		Short: "Specialist back office API",
	}

	// there is no way to access flags before command execution in cobra.
	// configPath here is parsed using the standard flags package.
	// following line is just added to prevent errors when Cobra is parsing the flags.
	rootCmd.PersistentFlags().StringP("config", "c", "config.yml", "Config File Path")

	configPath := flag.String("c", "config.yml", "The config file path")
	flag.Parse()

	log.Println("loading config ...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("could not load config file", err)
	}

	if err := logger.Setup(cfg.Environment, cfg.LogLevel); err != nil {
		log.Fatal("could not setup logger", err)
	}

	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	rootCmd.AddCommand(
		migrateCommand(cfg),
		serveCommand(cfg),
		seedCommand(cfg),
	)

	err = rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

package main

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/kvcache"
	"github.com/unkn0wn-root/kvcache/counter"
	kvzap "github.com/unkn0wn-root/kvcache/log/zap"
	rp "github.com/unkn0wn-root/kvcache/provider/redis"
)

var (
	// Global flags.
	redisAddr string
	redisDB   int
	password  string
	namespace string
	timeout   time.Duration
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "kvcache",
	Short: "Store and read values in Redis under random keys",
	Long: `kvcache stores text, bytes, integers and floats in Redis under freshly
generated UUID keys and reads them back with optional type coercion.
Every store is counted under the kvcache.Cache.Store counter.

Examples:
  # Store an integer (prints the generated key)
  kvcache store --type int 42

  # Read it back as an integer
  kvcache get --as int 6f1c...

  # Wipe the database before storing
  kvcache store --fresh hello

  # Show how many times store was called
  kvcache calls`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&redisAddr, "addr", "a", "localhost:6379", "redis address")
	rootCmd.PersistentFlags().IntVar(&redisDB, "db", 0, "redis database number")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "redis password")
	rootCmd.PersistentFlags().StringVarP(&namespace, "namespace", "n", "", "key prefix for values and counters")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "deadline for the whole command")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// withCache opens a cache for the duration of fn. fresh selects OpenFresh.
func withCache(cmd *cobra.Command, fresh bool, fn func(ctx context.Context, c kvcache.Cache) error) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	rdb := goredis.NewClient(&goredis.Options{
		Addr:     redisAddr,
		DB:       redisDB,
		Password: password,
	})
	provider, err := rp.New(rp.Config{Client: rdb, CloseClient: true})
	if err != nil {
		return err
	}
	counters, err := counter.NewRedis(counter.RedisConfig{Client: rdb})
	if err != nil {
		_ = provider.Close(ctx)
		return err
	}

	opts := kvcache.Options{
		Provider:  provider,
		Counters:  counters,
		Namespace: namespace,
		Logger:    kvzap.New(logger),
	}
	open := kvcache.OpenExisting
	if fresh {
		open = kvcache.OpenFresh
	}
	c, err := open(ctx, opts)
	if err != nil {
		_ = provider.Close(ctx)
		return fmt.Errorf("open %s: %w", redisAddr, err)
	}
	defer func() { _ = c.Close(context.Background()) }()

	return fn(ctx, c)
}

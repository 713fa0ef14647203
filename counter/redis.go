package counter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 256

// Redis keeps counters as plain integer keys (INCR/GET/MGET), so they live
// in the same server as the cached values and survive process restarts.
type Redis struct {
	rdb         redis.UniversalClient
	prefix      string
	closeClient bool
}

var _ Store = (*Redis)(nil)

type RedisConfig struct {
	Client redis.UniversalClient
	// Prefix is prepended verbatim to every counter name. Empty means the
	// counter key is the name itself.
	Prefix string
	// CloseClient set true only if this store exclusively owns the client.
	CloseClient bool
}

func NewRedis(cfg RedisConfig) (*Redis, error) {
	if cfg.Client == nil {
		return nil, errors.New("counter: nil redis client")
	}
	return &Redis{rdb: cfg.Client, prefix: cfg.Prefix, closeClient: cfg.CloseClient}, nil
}

func (s *Redis) key(name string) string { return s.prefix + name }

func (s *Redis) Incr(ctx context.Context, name string) (int64, error) {
	return s.rdb.Incr(ctx, s.key(name)).Result()
}

// Get returns the current count.
// Missing keys are treated as 0.
func (s *Redis) Get(ctx context.Context, name string) (int64, error) {
	n, err := s.rdb.Get(ctx, s.key(name)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("counter %s: %w", name, err)
	}
	return n, nil
}

// GetMany returns counts for multiple names in one MGET.
// Missing keys map to 0.
func (s *Redis) GetMany(ctx context.Context, names []string) (map[string]int64, error) {
	if len(names) == 0 {
		return map[string]int64{}, nil
	}
	keys := make([]string, len(names))
	for i, n := range names {
		keys[i] = s.key(n)
	}
	vals, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	out := make(map[string]int64, len(names))
	for i, v := range vals {
		var raw string
		switch vv := v.(type) {
		case nil:
			out[names[i]] = 0
			continue
		case string:
			raw = vv
		case []byte:
			raw = string(vv)
		default:
			raw = fmt.Sprint(vv)
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("counter %s: %w", names[i], err)
		}
		out[names[i]] = n
	}
	return out, nil
}

// Flush runs FLUSHDB when no prefix is set. With a prefix only the keys
// under it are scanned and deleted.
func (s *Redis) Flush(ctx context.Context) error {
	if s.prefix == "" {
		return s.rdb.FlushDB(ctx).Err()
	}
	iter := s.rdb.Scan(ctx, 0, globEscape(s.prefix)+"*", scanBatch).Iterator()
	batch := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == scanBatch {
			if err := s.rdb.Del(ctx, batch...).Err(); err != nil {
				return err
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(batch) > 0 {
		return s.rdb.Del(ctx, batch...).Err()
	}
	return nil
}

// Close releases the underlying client only when this store owns it.
func (s *Redis) Close(context.Context) error {
	if s.closeClient {
		if err := s.rdb.Close(); err != nil && !errors.Is(err, redis.ErrClosed) {
			return err
		}
	}
	return nil
}

func globEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

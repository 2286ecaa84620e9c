package service

import (
	"context"
	"regexp"
	"strconv"

	"github.com/KehindeA533/openai-backend/core/cache"
	"github.com/KehindeA533/openai-backend/core/logger"
)

// SessionCounter allocates incrementing session ids for archived sessions.
type SessionCounter interface {
	Next(ctx context.Context) (int64, error)
}

type redisCounter struct {
	cache *cache.Cache
	key   string
}

// NewRedisCounter allocates ids with INCR, so concurrent uploads never
// collide.
func NewRedisCounter(c *cache.Cache, key string) SessionCounter {
	return &redisCounter{cache: c, key: key}
}

func (r *redisCounter) Next(ctx context.Context) (int64, error) {
	return r.cache.Incr(ctx, r.key)
}

var sessionFolderPattern = regexp.MustCompile(`^session_(\d+)$`)

type scanCounter struct {
	store  ObjectStore
	prefix string
}

// NewScanCounter derives the next id by listing existing session folders and
// taking max+1. Two concurrent uploads can observe the same listing and pick
// the same id; later files then overwrite earlier ones. Configure Redis to
// avoid this.
func NewScanCounter(store ObjectStore, prefix string) SessionCounter {
	return &scanCounter{store: store, prefix: prefix}
}

func (s *scanCounter) Next(ctx context.Context) (int64, error) {
	folders, err := s.store.ListFolders(ctx, s.prefix)
	if err != nil {
		logger.Warn("failed to list session folders, starting from 1", "error", err)
		return 1, nil
	}

	var max int64
	for _, folder := range folders {
		m := sessionFolderPattern.FindStringSubmatch(folder)
		if m == nil {
			continue
		}
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1, nil
}

package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "ideagen:completion:"

// CachedCompleter stores successful completions in Redis. A completion is
// successful when the provider returns it without error and it passes the
// request's Check. Lookups and writes that fail are logged and otherwise
// ignored.
type CachedCompleter struct {
	next  Completer
	rdb   *redis.Client
	ttl   time.Duration
	model string
	log   logrus.FieldLogger
}

func NewCachedCompleter(next Completer, rdb *redis.Client, ttl time.Duration, modelName string, log logrus.FieldLogger) *CachedCompleter {
	return &CachedCompleter{next: next, rdb: rdb, ttl: ttl, model: modelName, log: log}
}

func (c *CachedCompleter) Complete(ctx context.Context, req Request) (string, error) {
	key := c.key(req)

	val, err := c.rdb.Get(ctx, key).Result()
	switch {
	case err == nil:
		if check(req, val) == nil {
			return val, nil
		}
		c.log.Warn("cached completion rejected, calling provider")
	case !errors.Is(err, redis.Nil):
		c.log.WithError(err).Warn("completion cache lookup failed")
	}

	text, err := c.next.Complete(ctx, req)
	if err != nil {
		return "", err
	}
	if check(req, text) != nil {
		return text, nil
	}

	if err := c.rdb.Set(ctx, key, text, c.ttl).Err(); err != nil {
		c.log.WithError(err).Warn("completion cache write failed")
	}
	return text, nil
}

func check(req Request, text string) error {
	if req.Check == nil {
		return nil
	}
	return req.Check(text)
}

func (c *CachedCompleter) key(req Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%.2f\x00%d\x00%s", c.model, req.Role, req.Temperature, req.MaxTokens, req.Prompt)
	return cacheKeyPrefix + hex.EncodeToString(h.Sum(nil))
}

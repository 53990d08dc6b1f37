package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can take an interface
// and tests can substitute miniredis or a mock
type Client interface {
	redis.UniversalClient
}

// Nil is returned by Get when the key does not exist
const Nil = redis.Nil

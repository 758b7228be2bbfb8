package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories rely on. It is satisfied
// by *redis.Client and by the cluster and failover clients.
type Client interface {
	redis.UniversalClient
}

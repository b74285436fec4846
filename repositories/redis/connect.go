package redis

import (
	// Go Internal Packages
	"context"

	// Local Packages
	errors "tx-simulator/errors"

	// External Packages
	"github.com/redis/go-redis/v9"
)

// Connect connects to the redis server and returns the client once it answers a ping.
func Connect(ctx context.Context, uri, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     uri,      // Redis server address
		Password: password, // Redis password
		DB:       0,        // Default DB
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.E(errors.Unavailable, "cannot reach redis", err)
	}
	return rdb, nil
}

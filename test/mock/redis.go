package mock

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// NewTestRedis starts an embedded Redis and returns a client bound to it.
// Both are torn down with the test.
func NewTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	miniRedis, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: miniRedis.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		miniRedis.Close()
	})

	return client, miniRedis
}

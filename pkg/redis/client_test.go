package redis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourarttoy/arttoy-backend/pkg/config"
)

func TestOptionsFromConfigRequiresURL(t *testing.T) {
	_, err := optionsFromConfig(config.RedisConfig{})
	require.Error(t, err)
}

func TestOptionsFromConfigParsesURL(t *testing.T) {
	opts, err := optionsFromConfig(config.RedisConfig{
		URL:      "redis://localhost:6379/2",
		PoolSize: 7,
	})
	require.NoError(t, err)
	require.Equal(t, "localhost:6379", opts.Addr)
	require.Equal(t, 2, opts.DB)
	require.Equal(t, 7, opts.PoolSize)
}

func TestBuildKeyNamespacesAndSkipsEmptyParts(t *testing.T) {
	c := &Client{}
	require.Equal(t, "yat:rate_limit:ip:1.2.3.4", c.RateLimitKey("ip:1.2.3.4"))
	require.Equal(t, "yat:counter:orders", c.CounterKey("orders"))
	require.Equal(t, "yat:rate_limit", c.buildKey(rateLimitPrefix, "  "))
}

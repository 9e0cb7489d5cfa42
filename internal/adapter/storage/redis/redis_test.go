package redis

import (
	"context"
	"io"
	"strconv"
	"strings"
	"testing"

	"gaps-gateway/config"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)

	host, portStr, _ := strings.Cut(mr.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	client, err := NewClient(context.Background(), config.RedisConfig{Host: host, Port: port}, zerolog.New(io.Discard))
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
}

func TestNewClient_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, portStr, _ := strings.Cut(mr.Addr(), ":")
	port, _ := strconv.Atoi(portStr)
	mr.Close()

	_, err := NewClient(context.Background(), config.RedisConfig{Host: host, Port: port}, zerolog.New(io.Discard))
	assert.Error(t, err)
}

func TestHealthCheck(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	hc := NewHealthCheck(client)
	assert.Equal(t, "redis", hc.Name())
	assert.NoError(t, hc.Ping(context.Background()))

	mr.Close()
	assert.Error(t, hc.Ping(context.Background()))
}

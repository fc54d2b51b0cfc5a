package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/jsonrepair-go/jsonrepair/internal/repair"
)

func newTestRedisCache(t *testing.T) *Redis {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedis(client, "jsonrepair:test:")
}

func TestRedisGetSetRoundTrip(t *testing.T) {
	c := newTestRedisCache(t)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, `{"a":1}`)
	require.NoError(t, err)
	require.False(t, ok)

	report := repair.NewRepairReport()
	report.Status = repair.SuccessWithWarnings
	report.QualityScore = 0.9

	require.NoError(t, c.Set(ctx, `{"a":1}`, report, 0))

	got, ok, err := c.Get(ctx, `{"a":1}`)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, report.Status, got.Status)
	require.Equal(t, report.QualityScore, got.QualityScore)
}

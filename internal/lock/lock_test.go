package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLocker(t *testing.T) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, time.Second), mr
}

func lockers(t *testing.T) map[string]Locker {
	redisLocker, _ := newRedisLocker(t)
	return map[string]Locker{
		"local": NewLocalLocker(),
		"redis": redisLocker,
	}
}

func TestLockerMutualExclusion(t *testing.T) {
	for name, l := range lockers(t) {
		t.Run(name, func(t *testing.T) {
			var (
				inside  int32
				maxSeen int32
				wg      sync.WaitGroup
			)
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					release, err := l.Acquire(context.Background(), "attempt:1")
					if !assert.NoError(t, err) {
						return
					}
					n := atomic.AddInt32(&inside, 1)
					for {
						m := atomic.LoadInt32(&maxSeen)
						if n <= m || atomic.CompareAndSwapInt32(&maxSeen, m, n) {
							break
						}
					}
					time.Sleep(2 * time.Millisecond)
					atomic.AddInt32(&inside, -1)
					release()
				}()
			}
			wg.Wait()
			assert.Equal(t, int32(1), maxSeen)
		})
	}
}

func TestLockerHonoursContext(t *testing.T) {
	for name, l := range lockers(t) {
		t.Run(name, func(t *testing.T) {
			release, err := l.Acquire(context.Background(), "attempt:2")
			require.NoError(t, err)
			defer release()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
			defer cancel()
			_, err = l.Acquire(ctx, "attempt:2")
			assert.ErrorIs(t, err, context.DeadlineExceeded)
		})
	}
}

func TestLockerKeysAreIndependent(t *testing.T) {
	for name, l := range lockers(t) {
		t.Run(name, func(t *testing.T) {
			r1, err := l.Acquire(context.Background(), "attempt:3")
			require.NoError(t, err)
			defer r1()

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			r2, err := l.Acquire(ctx, "attempt:4")
			require.NoError(t, err)
			r2()
		})
	}
}

func TestLocalLockerForgetsReleasedKeys(t *testing.T) {
	l := NewLocalLocker()
	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, 1, l.size())
	release()
	release()
	assert.Equal(t, 0, l.size())
}

func TestRedisLockerReleaseOnlyDeletesOwnToken(t *testing.T) {
	l, mr := newRedisLocker(t)
	release, err := l.Acquire(context.Background(), "attempt:5")
	require.NoError(t, err)

	// Simulate expiry and takeover by another holder.
	mr.FastForward(2 * time.Second)
	require.False(t, mr.Exists(keyPrefix+"attempt:5"))
	require.NoError(t, mr.Set(keyPrefix+"attempt:5", "someone-else"))

	release()
	got, err := mr.Get(keyPrefix + "attempt:5")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", got)
}

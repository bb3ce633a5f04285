package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestMemoryFirstAttemptAllowed(t *testing.T) {
	m := NewMemory(5 * time.Minute)
	d, err := m.CheckAndRecord(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if !d.Allowed || d.RetryAfter != 0 {
		t.Fatalf("first attempt must be allowed: %+v", d)
	}
}

func TestMemorySecondAttemptDenied(t *testing.T) {
	base := time.Now()
	m := NewMemory(5 * time.Minute)
	m.now = func() time.Time { return base }

	_, _ = m.CheckAndRecord(context.Background(), "a@example.com")

	m.now = func() time.Time { return base.Add(2 * time.Minute) }
	d, _ := m.CheckAndRecord(context.Background(), "a@example.com")
	if d.Allowed {
		t.Fatal("second attempt inside window must be denied")
	}
	if d.RetryAfter != 3*time.Minute {
		t.Fatalf("want retry after 3m, got %v", d.RetryAfter)
	}
}

func TestMemoryDenialDoesNotExtendWindow(t *testing.T) {
	base := time.Now()
	m := NewMemory(5 * time.Minute)
	m.now = func() time.Time { return base }
	_, _ = m.CheckAndRecord(context.Background(), "a@example.com")

	m.now = func() time.Time { return base.Add(4 * time.Minute) }
	if d, _ := m.CheckAndRecord(context.Background(), "a@example.com"); d.Allowed {
		t.Fatal("still inside window")
	}

	// window measured from the first allowed attempt, not the denial
	m.now = func() time.Time { return base.Add(5*time.Minute + time.Second) }
	if d, _ := m.CheckAndRecord(context.Background(), "a@example.com"); !d.Allowed {
		t.Fatal("window elapsed, must be allowed again")
	}
}

func TestMemoryKeysIndependent(t *testing.T) {
	m := NewMemory(5 * time.Minute)
	_, _ = m.CheckAndRecord(context.Background(), "a@example.com")
	d, _ := m.CheckAndRecord(context.Background(), "b@example.com")
	if !d.Allowed {
		t.Fatal("different key must not be limited")
	}
}

func TestMemorySweepsStaleEntries(t *testing.T) {
	base := time.Now()
	m := NewMemory(5 * time.Minute)
	m.now = func() time.Time { return base }
	_, _ = m.CheckAndRecord(context.Background(), "old@example.com")

	m.now = func() time.Time { return base.Add(2 * time.Hour) }
	_, _ = m.CheckAndRecord(context.Background(), "new@example.com")

	if m.Len() != 1 {
		t.Fatalf("stale entry not swept, len=%d", m.Len())
	}
}

func newRedisLimiter(t *testing.T, window time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedis(rdb, window), mr
}

func TestRedisFirstAttemptAllowed(t *testing.T) {
	r, _ := newRedisLimiter(t, 5*time.Minute)
	d, err := r.CheckAndRecord(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if !d.Allowed {
		t.Fatal("first attempt must be allowed")
	}
}

func TestRedisSecondAttemptDenied(t *testing.T) {
	r, _ := newRedisLimiter(t, 5*time.Minute)
	_, _ = r.CheckAndRecord(context.Background(), "a@example.com")
	d, _ := r.CheckAndRecord(context.Background(), "a@example.com")
	if d.Allowed {
		t.Fatal("second attempt must be denied")
	}
	if d.RetryAfter <= 0 || d.RetryAfter > 5*time.Minute {
		t.Fatalf("bad retry after: %v", d.RetryAfter)
	}
}

func TestRedisWindowExpiry(t *testing.T) {
	r, mr := newRedisLimiter(t, 5*time.Minute)
	_, _ = r.CheckAndRecord(context.Background(), "a@example.com")

	mr.FastForward(5*time.Minute + time.Second)

	d, _ := r.CheckAndRecord(context.Background(), "a@example.com")
	if !d.Allowed {
		t.Fatal("expired window must allow again")
	}
}

func TestRedisFailsOpen(t *testing.T) {
	r, mr := newRedisLimiter(t, 5*time.Minute)
	mr.Close()

	d, err := r.CheckAndRecord(context.Background(), "a@example.com")
	if err != nil {
		t.Fatalf("fail-open must not return error: %v", err)
	}
	if !d.Allowed {
		t.Fatal("fail-open must allow")
	}
}

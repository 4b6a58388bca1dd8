package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"lms-api/internal/pkg/clock"

	"github.com/cespare/xxhash/v2"
)

const (
	DefaultShardCount = 32

	// SweepInterval is the number of writes to a shard between passes that
	// drop its expired entries.
	SweepInterval = 64
)

// MemoryStore is a process-local store split into independently locked
// shards so unrelated keys never contend on the same mutex.
type MemoryStore struct {
	shards []*memoryShard
	clock  clock.Clock
}

type memoryShard struct {
	sync.RWMutex

	items  map[string]memoryEntry
	writes int
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero => no TTL
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

func NewMemoryStore(shardCount int, clk clock.Clock) *MemoryStore {
	if shardCount <= 0 {
		shardCount = DefaultShardCount
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}

	shards := make([]*memoryShard, shardCount)
	for i := range shards {
		shards[i] = &memoryShard{items: make(map[string]memoryEntry)}
	}
	return &MemoryStore{shards: shards, clock: clk}
}

func (s *MemoryStore) shard(key string) *memoryShard {
	return s.shards[xxhash.Sum64String(key)%uint64(len(s.shards))]
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	sh := s.shard(key)
	now := s.clock.Now()

	sh.RLock()
	entry, ok := sh.items[key]
	sh.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if entry.expired(now) {
		sh.Lock()
		// re-check: a concurrent Set may have replaced the entry
		if cur, still := sh.items[key]; still && cur.expired(now) {
			delete(sh.items, key)
		}
		sh.Unlock()
		return nil, false, nil
	}

	return slices.Clone(entry.value), true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	entry := memoryEntry{value: slices.Clone(value)}
	if ttl > 0 {
		entry.expiresAt = s.clock.Now().Add(ttl)
	}

	sh := s.shard(key)
	sh.Lock()
	sh.items[key] = entry
	sh.writes++
	if sh.writes%SweepInterval == 0 {
		sh.sweep(s.clock.Now())
	}
	sh.Unlock()
	return nil
}

// sweep must be called with the shard lock held.
func (sh *memoryShard) sweep(now time.Time) {
	for k, e := range sh.items {
		if e.expired(now) {
			delete(sh.items, k)
		}
	}
}

// Len counts live and not yet collected entries.
func (s *MemoryStore) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.RLock()
		n += len(sh.items)
		sh.RUnlock()
	}
	return n
}

func (s *MemoryStore) Close() error {
	return nil
}

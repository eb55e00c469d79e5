package tablecache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/singleflight"

	"sheetmerge/core/storage"
	"sheetmerge/core/table"
	"sheetmerge/core/xlsx"
)

// entry is one cached parsed table.
type entry struct {
	table *table.Table
	built time.Time
	ttl   time.Duration
}

func (e *entry) expired() bool {
	return time.Since(e.built) > e.ttl
}

// store holds all cached tables keyed by bucket/object/sheet.
type store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	sf      singleflight.Group
}

var globalStore = &store{
	entries: make(map[string]*entry),
}

// Fetch returns the table parsed from an xlsx object in storage, caching
// the parse for ttl. A ttl of zero bypasses the cache entirely. Concurrent
// fetches of the same object share a single download (stampede protection).
// Returned tables are shared between callers; the engines treat tables as
// immutable, so this is safe.
func Fetch(ctx context.Context, client storage.Client, bucket, object, sheet string, ttl time.Duration) (*table.Table, error) {
	if ttl <= 0 {
		return load(ctx, client, bucket, object, sheet)
	}

	key := cacheKey(bucket, object, sheet)

	globalStore.mu.RLock()
	e, exists := globalStore.entries[key]
	globalStore.mu.RUnlock()

	if exists && !e.expired() {
		return e.table, nil
	}

	// The flight serves every concurrent waiter, so the download must not
	// die with the first caller's context.
	loadCtx := context.WithoutCancel(ctx)

	result, err, _ := globalStore.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot.
		globalStore.mu.RLock()
		e, exists := globalStore.entries[key]
		globalStore.mu.RUnlock()

		if exists && !e.expired() {
			return e.table, nil
		}

		t, err := load(loadCtx, client, bucket, object, sheet)
		if err != nil {
			return nil, err
		}

		globalStore.mu.Lock()
		globalStore.entries[key] = &entry{table: t, built: time.Now(), ttl: ttl}
		globalStore.mu.Unlock()

		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*table.Table), nil
}

// Invalidate drops a cached table, forcing the next Fetch to reload.
func Invalidate(bucket, object, sheet string) {
	key := cacheKey(bucket, object, sheet)
	globalStore.mu.Lock()
	delete(globalStore.entries, key)
	globalStore.mu.Unlock()
}

func cacheKey(bucket, object, sheet string) string {
	return bucket + "|" + object + "|" + sheet
}

func load(ctx context.Context, client storage.Client, bucket, object, sheet string) (*table.Table, error) {
	reader, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", object, err)
	}
	defer reader.Close()

	t, err := xlsx.Read(reader, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to parse object %s: %w", object, err)
	}
	return t, nil
}

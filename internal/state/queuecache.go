package state

import (
	"sync"

	"barberbook/internal/domain/queue"
)

// QueueCache holds the last-fetched queue snapshot per shop and the current
// user's queue position per (shop, user). It is pure storage: callers fetch
// from the network first and store only successful results, so a failed
// fetch can never leave the cache partially updated.
//
// Each shop has its own lock; operations on different shops never block
// each other.
type QueueCache struct {
	mu    sync.RWMutex // guards the shops map only
	shops map[int64]*shopState
}

type shopState struct {
	mu        sync.RWMutex
	snapshot  *queue.Snapshot
	positions map[string]queue.Position
}

func NewQueueCache() *QueueCache {
	return &QueueCache{
		shops: make(map[int64]*shopState),
	}
}

func (c *QueueCache) shop(shopID int64) *shopState {
	c.mu.RLock()
	s, ok := c.shops[shopID]
	c.mu.RUnlock()
	if ok {
		return s
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok = c.shops[shopID]; ok {
		return s
	}
	s = &shopState{positions: make(map[string]queue.Position)}
	c.shops[shopID] = s
	return s
}

// SetSnapshot replaces the cached snapshot for the shop unconditionally.
// The most recent successful fetch wins; no version ordering is attempted.
func (c *QueueCache) SetSnapshot(snap queue.Snapshot) {
	s := c.shop(snap.ShopID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = &snap
}

// Snapshot returns a copy of the cached snapshot for the shop, if any.
func (c *QueueCache) Snapshot(shopID int64) (queue.Snapshot, bool) {
	s := c.shop(shopID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return queue.Snapshot{}, false
	}
	return *s.snapshot, true
}

// SetPosition stores the user's queue position, superseding any prior
// position for the same (shop, user) pair.
func (c *QueueCache) SetPosition(pos queue.Position) {
	s := c.shop(pos.ShopID)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[pos.UserID] = pos
}

// Position returns the user's current position in the shop's queue, if any.
func (c *QueueCache) Position(shopID int64, userID string) (queue.Position, bool) {
	s := c.shop(shopID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	pos, ok := s.positions[userID]
	return pos, ok
}

// PositionCount reports how many positions are stored for the shop.
func (c *QueueCache) PositionCount(shopID int64) int {
	s := c.shop(shopID)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.positions)
}

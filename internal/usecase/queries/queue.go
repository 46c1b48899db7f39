package queries

import (
	"barberbook/internal/domain/identity"
	"barberbook/internal/state"
)

// IdentityReader is the read-only slice of the session gate the query side
// needs to resolve "my" position.
type IdentityReader interface {
	Current() (identity.Identity, bool)
}

type QueueQueries interface {
	Status(shopID int64) (*QueueStatusView, bool)
	MyPosition(shopID int64) (*PositionView, bool)
}

type queueQueriesImpl struct {
	cache *state.QueueCache
	gate  IdentityReader
}

func NewQueueQueries(cache *state.QueueCache, gate IdentityReader) QueueQueries {
	return &queueQueriesImpl{
		cache: cache,
		gate:  gate,
	}
}

// Status is a pure read of the cached snapshot; it never touches the
// network.
func (q *queueQueriesImpl) Status(shopID int64) (*QueueStatusView, bool) {
	snap, ok := q.cache.Snapshot(shopID)
	if !ok {
		return nil, false
	}
	return &QueueStatusView{
		ShopID:               snap.ShopID,
		BarberID:             snap.BarberID,
		QueueSize:            snap.QueueSize,
		EstimatedWaitMinutes: snap.EstimatedWaitMinutes,
		LastUpdated:          snap.LastUpdated,
	}, true
}

// MyPosition is a pure read. Without an identity there is no position.
func (q *queueQueriesImpl) MyPosition(shopID int64) (*PositionView, bool) {
	ident, ok := q.gate.Current()
	if !ok {
		return nil, false
	}
	pos, ok := q.cache.Position(shopID, ident.UserID())
	if !ok {
		return nil, false
	}
	return &PositionView{
		ShopID:   pos.ShopID,
		Position: pos.Position,
		JoinedAt: pos.JoinedAt,
	}, true
}

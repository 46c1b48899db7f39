package commands

import (
	"context"

	"barberbook/internal/domain/queue"
	"barberbook/internal/gateway"
	"barberbook/internal/pkg/errs"
	"barberbook/internal/state"
)

type QueueCommands interface {
	Refresh(ctx context.Context, shopID int64) (queue.Snapshot, error)
	Join(ctx context.Context, shopID int64) (queue.Position, error)
}

type queueCommandsImpl struct {
	queueGateway QueueGateway
	cache        *state.QueueCache
	gate         SessionGate
}

func NewQueueCommands(queueGateway QueueGateway, cache *state.QueueCache, gate SessionGate) QueueCommands {
	return &queueCommandsImpl{
		queueGateway: queueGateway,
		cache:        cache,
		gate:         gate,
	}
}

// Refresh fetches the latest snapshot for the shop and replaces the cached
// one. On failure the cache keeps whatever it had; it is never cleared.
func (q *queueCommandsImpl) Refresh(ctx context.Context, shopID int64) (queue.Snapshot, error) {
	snap, err := q.queueGateway.FetchQueue(ctx, shopID)
	if err != nil {
		if gateway.IsNetwork(err) {
			return queue.Snapshot{}, errs.Mark(err, errs.ErrTransport)
		}
		if gateway.IsKind(err, gateway.KindNotFound) {
			return queue.Snapshot{}, errs.Mark(err, errs.ErrShopNotFound)
		}
		return queue.Snapshot{}, errs.Mark(err, errs.ErrTransport)
	}

	q.cache.SetSnapshot(snap)
	return snap, nil
}

// Join requests a fresh position for the current user. Gated: without an
// identity it fails before any network call. A re-join supersedes the prior
// position for the (shop, user) pair.
func (q *queueCommandsImpl) Join(ctx context.Context, shopID int64) (queue.Position, error) {
	ident, ok := q.gate.Current()
	if !ok {
		return queue.Position{}, errs.ErrUnauthenticated
	}

	pos, err := q.queueGateway.JoinQueue(ctx, q.gate.Token(), shopID, ident.UserID())
	if err != nil {
		if gateway.IsKind(err, gateway.KindUnauthorized) {
			return queue.Position{}, errs.Mark(err, errs.ErrUnauthenticated)
		}
		return queue.Position{}, errs.Mark(err, errs.ErrTransport)
	}

	q.cache.SetPosition(pos)
	return pos, nil
}

//go:build unit

package queue_test

import (
	"testing"
	"time"

	"barberbook/internal/domain/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshot(t *testing.T) {
	updated := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("derives wait from queue size when server gives none", func(t *testing.T) {
		snap, err := queue.NewSnapshot(42, 7, 5, nil, 30, updated)
		require.NoError(t, err)

		assert.Equal(t, 150, snap.EstimatedWaitMinutes)
		assert.Equal(t, 5, snap.QueueSize)
		assert.Equal(t, updated, snap.LastUpdated)
	})

	t.Run("server estimate wins over the derived value", func(t *testing.T) {
		serverEstimate := 45
		snap, err := queue.NewSnapshot(42, 7, 5, &serverEstimate, 30, updated)
		require.NoError(t, err)

		assert.Equal(t, 45, snap.EstimatedWaitMinutes)
	})

	t.Run("server estimate of zero still wins", func(t *testing.T) {
		serverEstimate := 0
		snap, err := queue.NewSnapshot(42, 7, 5, &serverEstimate, 30, updated)
		require.NoError(t, err)

		assert.Equal(t, 0, snap.EstimatedWaitMinutes)
	})

	t.Run("empty queue means no wait", func(t *testing.T) {
		snap, err := queue.NewSnapshot(42, 7, 0, nil, 30, updated)
		require.NoError(t, err)

		assert.Equal(t, 0, snap.EstimatedWaitMinutes)
	})

	t.Run("negative queue size rejected", func(t *testing.T) {
		_, err := queue.NewSnapshot(42, 7, -1, nil, 30, updated)
		assert.ErrorIs(t, err, queue.ErrNegativeQueueSize)
	})

	t.Run("negative server estimate rejected", func(t *testing.T) {
		serverEstimate := -10
		_, err := queue.NewSnapshot(42, 7, 5, &serverEstimate, 30, updated)
		assert.ErrorIs(t, err, queue.ErrNegativeWait)
	})
}

func TestEstimateWaitMinutes(t *testing.T) {
	cases := []struct {
		name      string
		queueSize int
		avg       int
		want      int
	}{
		{name: "five waiting at half an hour each", queueSize: 5, avg: 30, want: 150},
		{name: "single customer", queueSize: 1, avg: 30, want: 30},
		{name: "empty queue", queueSize: 0, avg: 30, want: 0},
		{name: "negative size clamps to zero", queueSize: -3, avg: 30, want: 0},
		{name: "custom service time", queueSize: 4, avg: 15, want: 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, queue.EstimateWaitMinutes(tc.queueSize, tc.avg))
		})
	}
}

func TestNewPosition(t *testing.T) {
	joined := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("valid position", func(t *testing.T) {
		pos, err := queue.NewPosition(42, "user-1", 3, joined)
		require.NoError(t, err)

		assert.Equal(t, int64(42), pos.ShopID)
		assert.Equal(t, "user-1", pos.UserID)
		assert.Equal(t, 3, pos.Position)
	})

	t.Run("zero position rejected", func(t *testing.T) {
		_, err := queue.NewPosition(42, "user-1", 0, joined)
		assert.ErrorIs(t, err, queue.ErrInvalidPosition)
	})

	t.Run("negative position rejected", func(t *testing.T) {
		_, err := queue.NewPosition(42, "user-1", -1, joined)
		assert.ErrorIs(t, err, queue.ErrInvalidPosition)
	})
}

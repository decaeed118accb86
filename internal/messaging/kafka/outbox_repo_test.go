package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/bruno-marques98/CoreCrewApp/internal/shared/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T, now time.Time) *outboxRepository {
	db := testdb.Open(t, &OutboxEvent{})
	return &outboxRepository{db: db, now: func() time.Time { return now }}
}

func mustEvent(t *testing.T, aggregateID string) OutboxEvent {
	event, err := NewOutboxEvent("req-1", "users", aggregateID, "audit.recorded", "corecrew.audit.v1", map[string]string{"id": aggregateID})
	require.NoError(t, err)
	return event
}

func TestOutboxRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newTestRepo(t, now)

	first := mustEvent(t, "1")
	second := mustEvent(t, "2")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.JSONEq(t, `{"id":"1"}`, string(pending[0].Payload))

	require.NoError(t, repo.MarkSent(ctx, first.ID))
	require.NoError(t, repo.MarkFailed(ctx, pending[1], "broker down"))

	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending, "failed row waits for its backoff")

	var failed OutboxEvent
	require.NoError(t, repo.db.First(&failed, "id = ?", second.ID).Error)
	assert.Equal(t, OutboxStatusFailed, failed.Status)
	assert.Equal(t, 1, failed.RetryCount)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "broker down", *failed.ErrorMessage)

	later := &outboxRepository{db: repo.db, now: func() time.Time { return now.Add(time.Minute) }}
	pending, err = later.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

func TestOutboxRepository_PurgeSent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := newTestRepo(t, now)

	sent := mustEvent(t, "1")
	kept := mustEvent(t, "2")
	require.NoError(t, repo.Create(ctx, sent))
	require.NoError(t, repo.Create(ctx, kept))
	require.NoError(t, repo.MarkSent(ctx, sent.ID))

	n, err := repo.PurgeSent(ctx, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	var count int64
	require.NoError(t, repo.db.Model(&OutboxEvent{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	repo := newTestRepo(t, time.Now().UTC())
	err := repo.Create(context.Background(), OutboxEvent{ID: "x", Topic: "t"})
	assert.EqualError(t, err, "outbox payload is required")
}

func TestRetryBackoff(t *testing.T) {
	assert.Equal(t, 15*time.Second, RetryBackoff(0))
	assert.Equal(t, 45*time.Second, RetryBackoff(3))
	assert.Equal(t, 150*time.Second, RetryBackoff(42))
}

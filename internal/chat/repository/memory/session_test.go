package memory

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-agent/internal/chat/repository"
	"customer-support-agent/internal/model"
	"customer-support-agent/pkg/log"
)

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := New(log.NewNop(), 10, time.Hour)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	s, err := repo.CreateSession(ctx, repository.CreateSessionOptions{UserID: "u1", Channel: "api", Now: now})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, model.EscalationStatusNone, s.EscalationStatus)
	assert.Equal(t, now, s.LastActivity)

	_, err = repo.CreateSession(ctx, repository.CreateSessionOptions{ID: s.ID, UserID: "u2", Now: now})
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	s.History = append(s.History, model.HistoryEntry{Role: model.RoleUser, Content: "hi"})
	s.MessageCount = 1
	require.NoError(t, repo.UpdateSession(ctx, s))

	got, err := repo.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.MessageCount)
	require.Len(t, got.History, 1)

	// callers get their own copy of the history
	got.History[0].Content = "changed"
	again, err := repo.GetSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "hi", again.History[0].Content)

	require.NoError(t, repo.DeleteSession(ctx, s.ID))
	_, err = repo.GetSession(ctx, s.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteSession(ctx, s.ID), repository.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateSession(ctx, s), repository.ErrNotFound)
}

func TestListSessionsOrder(t *testing.T) {
	ctx := context.Background()
	repo := New(log.NewNop(), 10, time.Hour)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for _, opt := range []repository.CreateSessionOptions{
		{ID: "c", Now: base.Add(time.Minute)},
		{ID: "b", Now: base},
		{ID: "a", Now: base},
	} {
		_, err := repo.CreateSession(ctx, opt)
		require.NoError(t, err)
	}

	list, err := repo.ListSessions(ctx)
	require.NoError(t, err)
	ids := make([]string, len(list))
	for i, s := range list {
		ids[i] = s.ID
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestSessionsExpire(t *testing.T) {
	ctx := context.Background()
	repo := New(log.NewNop(), 10, 20*time.Millisecond)

	s, err := repo.CreateSession(ctx, repository.CreateSessionOptions{UserID: "u1", Now: time.Now()})
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, err := repo.GetSession(ctx, s.ID)
		return err != nil
	}, time.Second, 5*time.Millisecond)
}

func TestSessionsBounded(t *testing.T) {
	ctx := context.Background()
	repo := New(log.NewNop(), 2, time.Hour)

	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.CreateSession(ctx, repository.CreateSessionOptions{ID: id, Now: time.Now()})
		require.NoError(t, err)
	}
	_, err := repo.GetSession(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	list, err := repo.ListSessions(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestOnEvict(t *testing.T) {
	ctx := context.Background()
	var (
		mu      sync.Mutex
		evicted []string
	)
	seen := func() []string {
		mu.Lock()
		defer mu.Unlock()
		return slices.Clone(evicted)
	}
	repo := New(log.NewNop(), 2, 200*time.Millisecond, WithOnEvict(func(id string) {
		mu.Lock()
		defer mu.Unlock()
		evicted = append(evicted, id)
	}))

	for _, id := range []string{"a", "b", "c"} {
		_, err := repo.CreateSession(ctx, repository.CreateSessionOptions{ID: id, Now: time.Now()})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a"}, seen(), "oldest session evicted for space")

	s, err := repo.GetSession(ctx, "b")
	require.NoError(t, err)
	s.MessageCount = 1
	require.NoError(t, repo.UpdateSession(ctx, s))
	assert.Equal(t, []string{"a"}, seen(), "updates do not evict")

	require.NoError(t, repo.DeleteSession(ctx, "b"))
	assert.Equal(t, []string{"a", "b"}, seen())

	assert.Eventually(t, func() bool {
		return slices.Equal([]string{"a", "b", "c"}, seen())
	}, 2*time.Second, 10*time.Millisecond, "expired sessions are reported")
}

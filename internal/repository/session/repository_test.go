package repository

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yakkt/campervan-configurator/internal/model"
)

func newStoredSession(t *testing.T, r *repository) *model.Session {
	t.Helper()

	s := model.NewSession(uuid.New(), time.Now().UTC())
	require.NoError(t, r.Create(context.Background(), s))

	return s
}

func TestRepositoryCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewSessionRepository()

	s := newStoredSession(t, r)

	err := r.Create(ctx, s)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestRepositoryByID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewSessionRepository()

	_, err := r.ByID(ctx, uuid.New())
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	s := newStoredSession(t, r)

	got, err := r.ByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	// The returned session is a copy: mutating it must not leak back.
	got.Selection.ChassisID = "lwb-crafter"
	got.Selection.Add("roof-rack")

	again, err := r.ByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, again.Selection.ChassisID)
	assert.False(t, again.Selection.Has("roof-rack"))
}

func TestRepositoryUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("unknown session", func(t *testing.T) {
		t.Parallel()

		r := NewSessionRepository()

		_, err := r.Update(ctx, uuid.New(), func(s *model.Session) error { return nil })
		assert.ErrorIs(t, err, model.ErrSessionNotFound)
	})

	t.Run("mutation is persisted and timestamped", func(t *testing.T) {
		t.Parallel()

		r := NewSessionRepository()
		s := newStoredSession(t, r)

		got, err := r.Update(ctx, s.ID, func(s *model.Session) error {
			s.Selection.ChassisID = "mwb-crafter"
			s.Selection.Add("roof-rack")
			return nil
		})
		require.NoError(t, err)
		assert.True(t, got.Selection.Has("roof-rack"))
		assert.False(t, got.UpdatedAt.Before(s.UpdatedAt))

		stored, err := r.ByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, "mwb-crafter", stored.Selection.ChassisID)
	})

	t.Run("failed mutation leaves the session untouched", func(t *testing.T) {
		t.Parallel()

		r := NewSessionRepository()
		s := newStoredSession(t, r)

		wantErr := errors.New("mutate failed")
		_, err := r.Update(ctx, s.ID, func(s *model.Session) error {
			s.Selection.Add("roof-rack")
			return wantErr
		})
		assert.ErrorIs(t, err, wantErr)

		stored, err := r.ByID(ctx, s.ID)
		require.NoError(t, err)
		assert.False(t, stored.Selection.Has("roof-rack"))
	})
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewSessionRepository()

	assert.ErrorIs(t, r.Delete(ctx, uuid.New()), model.ErrSessionNotFound)

	s := newStoredSession(t, r)
	require.NoError(t, r.Delete(ctx, s.ID))

	_, err := r.ByID(ctx, s.ID)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestRepositoryConcurrentUpdates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewSessionRepository()
	s := newStoredSession(t, r)

	const workers = 16

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := r.Update(ctx, s.ID, func(s *model.Session) error {
				s.Price.TotalPrice++
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := r.ByID(ctx, s.ID)
	require.NoError(t, err)
	assert.InDelta(t, float64(workers), got.Price.TotalPrice, 1e-9)
}

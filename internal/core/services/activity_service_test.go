package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/services"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

func TestActivityService_LogManual(t *testing.T) {
	ctx := context.Background()

	t.Run("Success: Running for half an hour", func(t *testing.T) {
		repo := NewMockActivityRepo()
		svc := services.NewActivityService(repo, clock.NewFakeClock(logNow))

		a, err := svc.LogManual(ctx, services.LogActivityInput{UserID: "user-1", Type: "Running", Minutes: 30})
		require.NoError(t, err)

		assert.NotEmpty(t, a.ID)
		assert.Equal(t, "running", a.Type)
		assert.Equal(t, "Running", a.Name)
		assert.Equal(t, 288, a.Calories)
		assert.Equal(t, 2.4, a.Distance)
		assert.Equal(t, domain.SourceManual, a.Source)
		assert.Equal(t, "2024-06-01", a.Day)
		assert.Equal(t, logNow, a.EndTime)
		assert.Equal(t, logNow.Add(-30*time.Minute), a.StartTime)
		assert.Len(t, repo.store, 1)
	})

	t.Run("Fail: Zero minutes", func(t *testing.T) {
		repo := NewMockActivityRepo()
		svc := services.NewActivityService(repo, clock.NewFakeClock(logNow))

		_, err := svc.LogManual(ctx, services.LogActivityInput{UserID: "user-1", Type: "walking"})
		assert.ErrorIs(t, err, domain.ErrActivityTooShort)
		assert.Empty(t, repo.store)
	})
}

func TestActivityService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMockActivityRepo()
	svc := services.NewActivityService(repo, clock.NewFakeClock(logNow))

	mine, err := svc.LogManual(ctx, services.LogActivityInput{UserID: "user-1", Type: "cycling", Minutes: 20})
	require.NoError(t, err)
	_, err = svc.LogManual(ctx, services.LogActivityInput{UserID: "user-2", Type: "walking", Minutes: 10})
	require.NoError(t, err)

	list, err := svc.List(ctx, "user-1", logNow.AddDate(0, 0, -7), logNow)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, mine.ID, list[0].ID)

	t.Run("Fail: Cannot delete someone else's activity", func(t *testing.T) {
		err := svc.Delete(ctx, mine.ID, "user-2")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Fail: Unknown activity", func(t *testing.T) {
		err := svc.Delete(ctx, "missing", "user-1")
		assert.ErrorIs(t, err, domain.ErrActivityNotFound)
	})

	t.Run("Success: Owner deletes", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, mine.ID, "user-1"))
		list, err := svc.List(ctx, "user-1", logNow.AddDate(0, 0, -7), logNow)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

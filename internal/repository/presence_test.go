package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/NahoooMac/wedhabesha-sub007/internal/model"
	"github.com/NahoooMac/wedhabesha-sub007/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceRepository_SetOnline(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("creates the connection row", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewPresenceRepository(db)

		err := repo.SetOnline(context.Background(), &model.ConnectionStatus{
			UserID:   20,
			UserType: model.UserTypeVendor,
			IsOnline: true,
			LastSeen: base,
			SocketID: "socket-abc-123",
		})
		require.NoError(t, err)

		status, err := repo.Get(20)

		require.NoError(t, err)
		assert.True(t, status.IsOnline)
		assert.Equal(t, model.UserTypeVendor, status.UserType)
		assert.Equal(t, "socket-abc-123", status.SocketID)
	})

	t.Run("replaces the previous connection on reconnect", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewPresenceRepository(db)

		require.NoError(t, repo.SetOnline(context.Background(), &model.ConnectionStatus{
			UserID: 20, UserType: model.UserTypeVendor, IsOnline: true,
			LastSeen: base, SocketID: "socket-abc-123",
		}))
		require.NoError(t, repo.SetOnline(context.Background(), &model.ConnectionStatus{
			UserID: 20, UserType: model.UserTypeVendor, IsOnline: true,
			LastSeen: base.Add(time.Minute), SocketID: "socket-def-456",
		}))

		status, err := repo.Get(20)

		require.NoError(t, err)
		assert.Equal(t, "socket-def-456", status.SocketID)
		assert.True(t, status.LastSeen.Equal(base.Add(time.Minute)))
	})
}

func TestPresenceRepository_SetOffline(t *testing.T) {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("clears the connection but keeps the user type", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewPresenceRepository(db)

		require.NoError(t, repo.SetOnline(context.Background(), &model.ConnectionStatus{
			UserID: 20, UserType: model.UserTypeVendor, IsOnline: true,
			LastSeen: base, SocketID: "socket-abc-123",
		}))

		err := repo.SetOffline(context.Background(), 20, base.Add(time.Hour))
		require.NoError(t, err)

		status, err := repo.Get(20)

		require.NoError(t, err)
		assert.False(t, status.IsOnline)
		assert.Empty(t, status.SocketID)
		assert.Equal(t, model.UserTypeVendor, status.UserType)
		assert.True(t, status.LastSeen.Equal(base.Add(time.Hour)))
	})

	t.Run("records an offline row for a user never seen online", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewPresenceRepository(db)

		err := repo.SetOffline(context.Background(), 42, base)
		require.NoError(t, err)

		status, err := repo.Get(42)

		require.NoError(t, err)
		assert.False(t, status.IsOnline)
	})
}

func TestPresenceRepository_Get(t *testing.T) {
	t.Run("returns not found for unknown user", func(t *testing.T) {
		db := newTestDB(t)
		repo := repository.NewPresenceRepository(db)

		_, err := repo.Get(99)

		assert.Equal(t, repository.ErrConnectionNotFound, err)
	})
}

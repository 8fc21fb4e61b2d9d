package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote_backend/internal/feature/auth/domain/entity"
	"quote_backend/internal/feature/auth/usecase"
)

// testSession creates a session entity for testing.
func testSession(id string, userID uint, expiresIn time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(expiresIn),
	}
}

func TestSessionGorm_CreateAndFindByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionGorm(db)

	created := testSession("session-001", 42, time.Hour)
	require.NoError(t, repo.Create(context.Background(), created))

	found, err := repo.FindByID(context.Background(), "session-001")

	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, uint(42), found.UserID)
	assert.Equal(t, "test-agent", found.UserAgent)
	assert.Equal(t, "127.0.0.1", found.IPAddress)
	assert.Nil(t, found.RevokedAt)
	assert.True(t, found.IsValid())
}

func TestSessionGorm_FindByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionGorm(db)

	_, err := repo.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}

func TestSessionGorm_Revoke(t *testing.T) {
	t.Run("revoked session becomes invalid", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionGorm(db)

		require.NoError(t, repo.Create(context.Background(), testSession("session-001", 1, time.Hour)))

		require.NoError(t, repo.Revoke(context.Background(), "session-001"))

		found, err := repo.FindByID(context.Background(), "session-001")
		require.NoError(t, err)
		require.NotNil(t, found.RevokedAt)
		assert.True(t, found.IsRevoked())
		assert.False(t, found.IsValid())
	})

	t.Run("revoking twice is not an error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionGorm(db)

		require.NoError(t, repo.Create(context.Background(), testSession("session-001", 1, time.Hour)))

		require.NoError(t, repo.Revoke(context.Background(), "session-001"))
		assert.NoError(t, repo.Revoke(context.Background(), "session-001"))
	})

	t.Run("unknown session returns ErrSessionNotFound", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewSessionGorm(db)

		err := repo.Revoke(context.Background(), "missing")

		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

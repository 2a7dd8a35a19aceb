package repository_test

import (
	"testing"

	"github.com/recipe-share/internal/models"
	"github.com/recipe-share/internal/repository"
	"github.com/recipe-share/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	users := repository.NewUserRepository(testutil.NewTestDB(t))

	exists, err := users.ExistsByUsername("alice")
	require.NoError(t, err)
	assert.False(t, exists)

	alice := seedUser(t, users, "alice")

	exists, err = users.ExistsByUsername("alice")
	require.NoError(t, err)
	assert.True(t, exists)

	byName, err := users.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byName.ID)
	assert.True(t, byName.CheckPassword("pw"))

	byID, err := users.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)
}

func TestUserRepositoryNotFound(t *testing.T) {
	users := repository.NewUserRepository(testutil.NewTestDB(t))

	_, err := users.GetByID(7)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = users.GetByUsername("ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUsernameUniqueAtStorageLevel(t *testing.T) {
	users := repository.NewUserRepository(testutil.NewTestDB(t))
	seedUser(t, users, "alice")

	dup := &models.User{Username: "alice", PasswordHash: "x"}
	assert.Error(t, users.Create(dup))
}

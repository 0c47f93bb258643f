package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/store"
)

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	users := store.NewMemoryStore()
	auth := NewAuthService(users)

	user, err := auth.Register(context.Background(), RegisterInput{
		FullName: "Alice Smith",
		Age:      30,
		Location: "Norway",
		Username: "alice",
		Password: "alicepw123",
		Email:    "a@x.com",
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	stored, err := users.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "alicepw123", stored.PasswordHash)
	assert.True(t, CheckPassword("alicepw123", stored.PasswordHash))
	assert.False(t, stored.DateAdded.IsZero())
}

func TestAuthenticate(t *testing.T) {
	users := store.NewMemoryStore()
	auth := NewAuthService(users)

	_, err := auth.Register(context.Background(), RegisterInput{
		FullName: "Alice Smith",
		Age:      30,
		Location: "Norway",
		Username: "alice",
		Password: "alicepw123",
		Email:    "a@x.com",
	})
	require.NoError(t, err)

	user, err := auth.Authenticate(context.Background(), "alice", "alicepw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = auth.Authenticate(context.Background(), "alice", "wrongpw")
	wrongPassErr := err
	require.Error(t, err)

	_, err = auth.Authenticate(context.Background(), "nobody", "alicepw123")
	require.Error(t, err)

	// Unknown username and wrong password are indistinguishable
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	users := store.NewMemoryStore()
	auth := NewAuthService(users)

	_, err := auth.Register(context.Background(), RegisterInput{
		FullName: "Alice Smith", Age: 30, Location: "Norway",
		Username: "alice", Password: "alicepw123", Email: "a@x.com",
	})
	require.NoError(t, err)

	_, err = auth.Register(context.Background(), RegisterInput{
		FullName: "Other Alice", Age: 40, Location: "Sweden",
		Username: "alice", Password: "otherpw99", Email: "b@x.com",
	})
	assert.ErrorIs(t, err, store.ErrUsernameTaken)

	_, err = auth.Register(context.Background(), RegisterInput{
		FullName: "Bob Jones", Age: 25, Location: "Denmark",
		Username: "bobby", Password: "bobpw12345", Email: "a@x.com",
	})
	assert.ErrorIs(t, err, store.ErrEmailTaken)

	all, err := users.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

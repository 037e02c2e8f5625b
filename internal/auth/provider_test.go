package auth

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	return value, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func TestMockProvider_Login(t *testing.T) {
	store := newMemStore()
	p := NewMockProvider(store)
	ctx := context.Background()

	user, err := p.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "John Doe", user.Name)
	assert.True(t, strings.HasPrefix(user.Token, "mock_token_"))

	// Session persisted for later restore.
	token, found, err := store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, user.Token, token)
}

func TestMockProvider_LoginInvalidCredentials(t *testing.T) {
	p := NewMockProvider(newMemStore())
	ctx := context.Background()

	_, err := p.Login(ctx, "john@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = p.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMockProvider_Signup(t *testing.T) {
	store := newMemStore()
	p := NewMockProvider(store)
	ctx := context.Background()

	user, err := p.Signup(ctx, "new@example.com", "secret", "New User")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "new@example.com", user.Email)

	// The fresh account can log in.
	again, err := p.Login(ctx, "new@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestMockProvider_SignupDuplicateEmail(t *testing.T) {
	p := NewMockProvider(newMemStore())
	_, err := p.Signup(context.Background(), "john@example.com", "whatever", "Imposter")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestMockProvider_CurrentUserRestoresSession(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	first := NewMockProvider(store)
	logged, err := first.Login(ctx, "jane@example.com", "password123")
	require.NoError(t, err)

	// A fresh provider over the same store sees the session.
	second := NewMockProvider(store)
	restored, err := second.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, logged.ID, restored.ID)
	assert.Equal(t, logged.Email, restored.Email)
	assert.Equal(t, logged.Token, restored.Token)
}

func TestMockProvider_CurrentUserWithoutSession(t *testing.T) {
	p := NewMockProvider(newMemStore())
	_, err := p.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestMockProvider_Logout(t *testing.T) {
	store := newMemStore()
	p := NewMockProvider(store)
	ctx := context.Background()

	_, err := p.Login(ctx, "john@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, p.Logout(ctx))

	_, err = p.CurrentUser(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestMockProvider_LogoutWithoutSessionIsNoop(t *testing.T) {
	p := NewMockProvider(newMemStore())
	assert.NoError(t, p.Logout(context.Background()))
}

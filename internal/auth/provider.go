// Package auth defines the authentication provider boundary and ships a
// mock implementation backed by an in-memory user table. The session token
// and user record survive restarts through the key-value store; any real
// identity provider can replace MockProvider behind the same interface.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/alexivanou/skytrip-api/internal/repository"
	"github.com/google/uuid"
)

// Storage keys for the persisted session
const (
	TokenKey = "user_token"
	UserKey  = "user_data"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned on signup with an already registered email
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrNotAuthenticated is returned when no session is stored
	ErrNotAuthenticated = errors.New("not authenticated")
)

// User is an authenticated account with its session token
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Provider is the authentication boundary consumed by the API layer
type Provider interface {
	Login(ctx context.Context, email, password string) (*User, error)
	Signup(ctx context.Context, email, password, name string) (*User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*User, error)
}

type mockAccount struct {
	id       string
	email    string
	password string
	name     string
}

// MockProvider authenticates against a fixed in-memory account table.
// Sessions are persisted to the key-value store so they survive restarts.
type MockProvider struct {
	store repository.Store

	mu       sync.Mutex
	accounts []mockAccount
}

// NewMockProvider creates a mock provider seeded with two demo accounts
func NewMockProvider(store repository.Store) *MockProvider {
	return &MockProvider{
		store: store,
		accounts: []mockAccount{
			{id: "1", email: "john@example.com", password: "password123", name: "John Doe"},
			{id: "2", email: "jane@example.com", password: "password123", name: "Jane Smith"},
		},
	}
}

// Login matches email/password against the account table and persists the
// resulting session.
func (p *MockProvider) Login(ctx context.Context, email, password string) (*User, error) {
	p.mu.Lock()
	var account *mockAccount
	for i := range p.accounts {
		if p.accounts[i].email == email && p.accounts[i].password == password {
			account = &p.accounts[i]
			break
		}
	}
	p.mu.Unlock()

	if account == nil {
		return nil, ErrInvalidCredentials
	}

	user := &User{
		ID:    account.id,
		Email: account.email,
		Name:  account.name,
		Token: newToken(),
	}
	if err := p.saveSession(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Signup registers a new account and logs it in
func (p *MockProvider) Signup(ctx context.Context, email, password, name string) (*User, error) {
	p.mu.Lock()
	for i := range p.accounts {
		if p.accounts[i].email == email {
			p.mu.Unlock()
			return nil, ErrEmailTaken
		}
	}
	account := mockAccount{
		id:       uuid.NewString(),
		email:    email,
		password: password,
		name:     name,
	}
	p.accounts = append(p.accounts, account)
	p.mu.Unlock()

	user := &User{
		ID:    account.id,
		Email: account.email,
		Name:  account.name,
		Token: newToken(),
	}
	if err := p.saveSession(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout discards the persisted session
func (p *MockProvider) Logout(ctx context.Context) error {
	if err := p.store.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	if err := p.store.Delete(ctx, UserKey); err != nil {
		return fmt.Errorf("failed to delete user data: %w", err)
	}
	return nil
}

// CurrentUser restores the session from storage
func (p *MockProvider) CurrentUser(ctx context.Context) (*User, error) {
	token, found, err := p.store.Get(ctx, TokenKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}
	if !found {
		return nil, ErrNotAuthenticated
	}

	data, found, err := p.store.Get(ctx, UserKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read user data: %w", err)
	}
	if !found {
		return nil, ErrNotAuthenticated
	}

	var user User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to decode user data: %w", err)
	}
	user.Token = token
	return &user, nil
}

func (p *MockProvider) saveSession(ctx context.Context, user *User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user data: %w", err)
	}
	if err := p.store.Set(ctx, TokenKey, user.Token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := p.store.Set(ctx, UserKey, string(encoded)); err != nil {
		return fmt.Errorf("failed to persist user data: %w", err)
	}
	return nil
}

func newToken() string {
	return "mock_token_" + uuid.NewString()
}

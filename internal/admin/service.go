// Package admin manages review-panel operators: login sessions, account
// provisioning, and the safety rules around deleting accounts.
package admin

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/csg33k/madrasah-enrollment/internal/domain"
	"github.com/csg33k/madrasah-enrollment/internal/ports"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrLastAdmin          = errors.New("cannot delete the last admin account")
	ErrSelfDeletion       = errors.New("cannot delete your own account")
	ErrEmptyField         = errors.New("username and password are required")
)

// Service wraps the admin repository with login sessions and the account
// invariants the panel relies on.
type Service struct {
	repo ports.AdminRepository

	mu       sync.RWMutex
	sessions map[string]string // token -> admin ID
}

func NewService(repo ports.AdminRepository) *Service {
	return &Service{repo: repo, sessions: make(map[string]string)}
}

// Login matches the secret against the stored accounts and, on success,
// issues an opaque session token. The panel logs in with the secret alone;
// the username only identifies the account afterwards.
func (s *Service) Login(ctx context.Context, secret string) (string, *domain.AdminUser, error) {
	if secret == "" {
		return "", nil, ErrInvalidCredentials
	}
	u, err := s.repo.GetAdminBySecret(ctx, secret)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = u.ID
	s.mu.Unlock()
	return token, u, nil
}

// Logout invalidates a session token. Unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Session resolves a token to the logged-in admin, or nil when the token is
// unknown, expired by restart, or the account was deleted since login.
func (s *Service) Session(ctx context.Context, token string) (*domain.AdminUser, error) {
	s.mu.RLock()
	id, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	admins, err := s.repo.ListAdmins(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		if admins[i].ID == id {
			return &admins[i], nil
		}
	}

	// Account deleted out from under the session.
	s.Logout(token)
	return nil, nil
}

// List returns all admin accounts.
func (s *Service) List(ctx context.Context) ([]domain.AdminUser, error) {
	return s.repo.ListAdmins(ctx)
}

// Create provisions a new admin account. Usernames are unique; both fields
// must be non-blank.
func (s *Service) Create(ctx context.Context, username, secret string) (*domain.AdminUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || secret == "" {
		return nil, ErrEmptyField
	}

	existing, err := s.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUsername
	}

	u := &domain.AdminUser{
		ID:       uuid.NewString(),
		Username: username,
		Secret:   secret,
	}
	if err := s.repo.CreateAdmin(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes an admin account. An admin may not delete themselves, and
// the last remaining account can never be deleted, so the panel always stays
// reachable.
func (s *Service) Delete(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return ErrSelfDeletion
	}
	n, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n <= 1 {
		return ErrLastAdmin
	}
	return s.repo.DeleteAdmin(ctx, targetID)
}

// Seed creates the bootstrap account when the store holds no admins yet.
// Existing accounts are left alone so restarts never clobber edits.
func (s *Service) Seed(ctx context.Context, username, secret string) error {
	n, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err = s.Create(ctx, username, secret)
	return err
}

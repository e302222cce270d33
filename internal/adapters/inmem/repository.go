// Package inmem provides map-backed repositories. They serve the test suites
// and the DB_PATH=:memory:-style throwaway runs where durability is not
// wanted.
package inmem

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/csg33k/madrasah-enrollment/internal/domain"
)

// SubmissionRepository stores submissions in process memory, newest first.
type SubmissionRepository struct {
	mu   sync.RWMutex
	subs []domain.Submission
	now  func() time.Time
}

func NewSubmissionRepository() *SubmissionRepository {
	return &SubmissionRepository{now: time.Now}
}

func (r *SubmissionRepository) CreateSubmission(ctx context.Context, in domain.SubmissionInput) (*domain.Submission, error) {
	s := domain.Submission{
		ID:              uuid.NewString(),
		SubmittedAt:     r.now(),
		SubmissionInput: in,
	}
	r.mu.Lock()
	r.subs = append(r.subs, s)
	r.mu.Unlock()
	return &s, nil
}

func (r *SubmissionRepository) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.subs {
		if r.subs[i].ID == id {
			s := r.subs[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *SubmissionRepository) ListSubmissions(ctx context.Context) ([]domain.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Submission, len(r.subs))
	for i := range r.subs {
		out[len(r.subs)-1-i] = r.subs[i]
	}
	return out, nil
}

// AdminRepository stores admin accounts in process memory.
type AdminRepository struct {
	mu     sync.RWMutex
	admins []domain.AdminUser
	now    func() time.Time
}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{now: time.Now}
}

func (r *AdminRepository) CreateAdmin(ctx context.Context, a *domain.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = r.now()
	}
	r.admins = append(r.admins, *a)
	return nil
}

func (r *AdminRepository) GetAdminByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.admins {
		if r.admins[i].Username == username {
			a := r.admins[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AdminRepository) GetAdminBySecret(ctx context.Context, secret string) (*domain.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.admins {
		if r.admins[i].Secret == secret {
			a := r.admins[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *AdminRepository) ListAdmins(ctx context.Context) ([]domain.AdminUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.AdminUser, len(r.admins))
	copy(out, r.admins)
	return out, nil
}

func (r *AdminRepository) DeleteAdmin(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.admins {
		if r.admins[i].ID == id {
			r.admins = append(r.admins[:i], r.admins[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *AdminRepository) CountAdmins(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.admins), nil
}

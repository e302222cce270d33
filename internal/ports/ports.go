package ports

import (
	"context"
	"io"

	"github.com/csg33k/madrasah-enrollment/internal/domain"
)

// SubmissionRepository defines persistence operations for enrollment
// applications. Submissions are append-only: there is no update or delete.
type SubmissionRepository interface {
	// CreateSubmission persists the input with a fresh ID and server-side
	// submission timestamp and returns the stored record.
	CreateSubmission(ctx context.Context, in domain.SubmissionInput) (*domain.Submission, error)
	GetSubmission(ctx context.Context, id string) (*domain.Submission, error)
	// ListSubmissions returns all submissions, newest first.
	ListSubmissions(ctx context.Context) ([]domain.Submission, error)
}

// AdminRepository defines persistence operations for review-panel operators.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, a *domain.AdminUser) error
	GetAdminByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
	// GetAdminBySecret matches a login secret against the stored credentials.
	GetAdminBySecret(ctx context.Context, secret string) (*domain.AdminUser, error)
	ListAdmins(ctx context.Context) ([]domain.AdminUser, error)
	DeleteAdmin(ctx context.Context, id string) error
	CountAdmins(ctx context.Context) (int, error)
}

// DocumentGenerator defines the PDF export port.
type DocumentGenerator interface {
	// Application writes a single-application detail sheet.
	Application(ctx context.Context, s *domain.Submission, w io.Writer) error

	// Report writes a tabular overview of the given submissions. An empty
	// slice still produces a valid document with headers only.
	Report(ctx context.Context, subs []domain.Submission, w io.Writer) error
}

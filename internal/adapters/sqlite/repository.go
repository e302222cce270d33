package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/madrasah-enrollment/internal/domain"
)

type Repository struct {
	db *sql.DB
}

// New opens the SQLite database and applies the schema. The schema lives in
// code so a fresh file (or :memory:) is immediately usable.
func New(dsn string) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	r := &Repository{db: db}
	if err := r.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Repository) migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS submissions (
			id              TEXT PRIMARY KEY,
			submitted_at    TIMESTAMP NOT NULL,
			full_name       TEXT NOT NULL,
			gender          TEXT NOT NULL,
			date_of_birth   TEXT NOT NULL,
			country         TEXT NOT NULL,
			timezone        TEXT NOT NULL DEFAULT '',
			native_language TEXT NOT NULL,
			guardian_name   TEXT NOT NULL,
			relationship    TEXT NOT NULL,
			whatsapp_number TEXT NOT NULL,
			email           TEXT NOT NULL,
			level           TEXT NOT NULL,
			quran_ability   TEXT NOT NULL,
			tajweed_level   TEXT NOT NULL,
			previous_madrasah TEXT NOT NULL DEFAULT '',
			interest_areas  TEXT NOT NULL,
			preferred_days  TEXT NOT NULL,
			preferred_time  TEXT NOT NULL,
			class_type      TEXT NOT NULL,
			special_needs   TEXT NOT NULL DEFAULT '',
			referral_source TEXT NOT NULL DEFAULT '',
			questions       TEXT NOT NULL DEFAULT '',
			declaration     INTEGER NOT NULL DEFAULT 1
		);

		CREATE TABLE IF NOT EXISTS admins (
			id         TEXT PRIMARY KEY,
			username   TEXT NOT NULL UNIQUE,
			secret     TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_submissions_submitted_at
			ON submissions (submitted_at DESC);
	`)
	return err
}

func (r *Repository) Close() error { return r.db.Close() }

// ── Submissions ───────────────────────────────────────────────────────────────

func (r *Repository) CreateSubmission(ctx context.Context, in domain.SubmissionInput) (*domain.Submission, error) {
	s := &domain.Submission{
		ID:              uuid.NewString(),
		SubmittedAt:     time.Now(),
		SubmissionInput: in,
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO submissions (
			id, submitted_at, full_name, gender, date_of_birth, country,
			timezone, native_language, guardian_name, relationship,
			whatsapp_number, email, level, quran_ability, tajweed_level,
			previous_madrasah, interest_areas, preferred_days, preferred_time,
			class_type, special_needs, referral_source, questions, declaration
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		s.ID, s.SubmittedAt, s.FullName, string(s.Gender), s.DateOfBirth,
		s.Country, s.Timezone, s.NativeLanguage, s.GuardianName,
		string(s.Relationship), s.WhatsappNumber, s.Email, string(s.Level),
		string(s.QuranReadingAbility), string(s.TajweedKnowledge),
		s.PreviousMadrasah, joinInterests(s.InterestAreas), joinDays(s.PreferredDays),
		s.PreferredTime, string(s.ClassType), s.SpecialNeeds,
		string(s.ReferralSource), s.Questions, boolToInt(s.Declaration),
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repository) GetSubmission(ctx context.Context, id string) (*domain.Submission, error) {
	row := r.db.QueryRowContext(ctx, selectSubmission+` WHERE id=?`, id)
	s, err := scanSubmission(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return s, err
}

func (r *Repository) ListSubmissions(ctx context.Context) ([]domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx, selectSubmission+` ORDER BY submitted_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

const selectSubmission = `
	SELECT id, submitted_at, full_name, gender, date_of_birth, country,
	       timezone, native_language, guardian_name, relationship,
	       whatsapp_number, email, level, quran_ability, tajweed_level,
	       previous_madrasah, interest_areas, preferred_days, preferred_time,
	       class_type, special_needs, referral_source, questions, declaration
	FROM submissions`

type scanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row scanner) (*domain.Submission, error) {
	s := &domain.Submission{}
	var gender, relationship, level, quran, tajweed, classType, referral string
	var interests, days string
	var declaration int
	err := row.Scan(
		&s.ID, &s.SubmittedAt, &s.FullName, &gender, &s.DateOfBirth,
		&s.Country, &s.Timezone, &s.NativeLanguage, &s.GuardianName,
		&relationship, &s.WhatsappNumber, &s.Email, &level, &quran, &tajweed,
		&s.PreviousMadrasah, &interests, &days, &s.PreferredTime,
		&classType, &s.SpecialNeeds, &referral, &s.Questions, &declaration,
	)
	if err != nil {
		return nil, err
	}
	s.Gender = domain.Gender(gender)
	s.Relationship = domain.Relationship(relationship)
	s.Level = domain.Level(level)
	s.QuranReadingAbility = domain.QuranAbility(quran)
	s.TajweedKnowledge = domain.TajweedLevel(tajweed)
	s.ClassType = domain.ClassType(classType)
	s.ReferralSource = domain.ReferralSource(referral)
	s.InterestAreas = splitInterests(interests)
	s.PreferredDays = splitDays(days)
	s.Declaration = declaration != 0
	return s, nil
}

// ── Admins ────────────────────────────────────────────────────────────────────

func (r *Repository) CreateAdmin(ctx context.Context, a *domain.AdminUser) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO admins (id, username, secret, created_at) VALUES (?,?,?,?)`,
		a.ID, a.Username, a.Secret, a.CreatedAt,
	)
	return err
}

func (r *Repository) GetAdminByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	return r.adminBy(ctx, `username=?`, username)
}

func (r *Repository) GetAdminBySecret(ctx context.Context, secret string) (*domain.AdminUser, error) {
	return r.adminBy(ctx, `secret=?`, secret)
}

func (r *Repository) adminBy(ctx context.Context, where string, arg any) (*domain.AdminUser, error) {
	a := &domain.AdminUser{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, secret, created_at FROM admins WHERE `+where, arg).
		Scan(&a.ID, &a.Username, &a.Secret, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *Repository) ListAdmins(ctx context.Context) ([]domain.AdminUser, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, username, secret, created_at FROM admins ORDER BY created_at, username`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AdminUser
	for rows.Next() {
		var a domain.AdminUser
		if err := rows.Scan(&a.ID, &a.Username, &a.Secret, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repository) DeleteAdmin(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE id=?`, id)
	return err
}

func (r *Repository) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&n)
	return n, err
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Multi-select answers are stored as a comma-joined code list. The codes are
// closed enums without commas, so no escaping is needed.

func joinInterests(areas []domain.InterestArea) string {
	parts := make([]string, len(areas))
	for i, a := range areas {
		parts[i] = string(a)
	}
	return strings.Join(parts, ",")
}

func splitInterests(s string) []domain.InterestArea {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]domain.InterestArea, len(parts))
	for i, p := range parts {
		out[i] = domain.InterestArea(p)
	}
	return out
}

func joinDays(days []domain.Weekday) string {
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}

func splitDays(s string) []domain.Weekday {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]domain.Weekday, len(parts))
	for i, p := range parts {
		out[i] = domain.Weekday(p)
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/csg33k/madrasah-enrollment/internal/adapters/inmem"
)

func newService(t *testing.T, accounts ...[2]string) *Service {
	t.Helper()
	svc := NewService(inmem.NewAdminRepository())
	for _, acct := range accounts {
		if _, err := svc.Create(context.Background(), acct[0], acct[1]); err != nil {
			t.Fatalf("seed account %q: %v", acct[0], err)
		}
	}
	return svc
}

func TestLogin(t *testing.T) {
	svc := newService(t, [2]string{"admin", "admin23435"})
	ctx := context.Background()

	token, u, err := svc.Login(ctx, "admin23435")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Error("expected a session token")
	}
	if u.Username != "admin" {
		t.Errorf("username = %q, want admin", u.Username)
	}

	got, err := svc.Session(ctx, token)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got == nil || got.ID != u.ID {
		t.Errorf("session did not resolve to the logged-in admin: %+v", got)
	}
}

func TestLoginRejectsWrongSecret(t *testing.T) {
	svc := newService(t, [2]string{"admin", "admin23435"})

	for _, secret := range []string{"", "admin", "ADMIN23435", "admin23435 "} {
		if _, _, err := svc.Login(context.Background(), secret); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Login(%q) err = %v, want ErrInvalidCredentials", secret, err)
		}
	}
}

func TestLogout(t *testing.T) {
	svc := newService(t, [2]string{"admin", "pw"})
	ctx := context.Background()

	token, _, err := svc.Login(ctx, "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	svc.Logout(token)

	got, err := svc.Session(ctx, token)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got != nil {
		t.Error("token still valid after logout")
	}
}

func TestSessionUnknownToken(t *testing.T) {
	svc := newService(t, [2]string{"admin", "pw"})
	got, err := svc.Session(context.Background(), "nope")
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got != nil {
		t.Error("unknown token resolved to an admin")
	}
}

func TestSessionInvalidAfterAccountDeleted(t *testing.T) {
	svc := newService(t, [2]string{"first", "pw1"}, [2]string{"second", "pw2"})
	ctx := context.Background()

	token, second, err := svc.Login(ctx, "pw2")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	_, first, err := svc.Login(ctx, "pw1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Delete(ctx, first.ID, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := svc.Session(ctx, token)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if got != nil {
		t.Error("session survived account deletion")
	}
}

func TestCreateDuplicateUsername(t *testing.T) {
	svc := newService(t, [2]string{"admin", "pw"})
	if _, err := svc.Create(context.Background(), "admin", "other"); !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("err = %v, want ErrDuplicateUsername", err)
	}
}

func TestCreateRejectsBlankFields(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	if _, err := svc.Create(ctx, "  ", "pw"); !errors.Is(err, ErrEmptyField) {
		t.Errorf("blank username err = %v, want ErrEmptyField", err)
	}
	if _, err := svc.Create(ctx, "admin", ""); !errors.Is(err, ErrEmptyField) {
		t.Errorf("blank secret err = %v, want ErrEmptyField", err)
	}
}

func TestDeleteSelf(t *testing.T) {
	svc := newService(t, [2]string{"a", "pw1"}, [2]string{"b", "pw2"})
	admins, _ := svc.List(context.Background())
	if err := svc.Delete(context.Background(), admins[0].ID, admins[0].ID); !errors.Is(err, ErrSelfDeletion) {
		t.Errorf("err = %v, want ErrSelfDeletion", err)
	}
}

func TestDeleteLastAdmin(t *testing.T) {
	svc := newService(t, [2]string{"only", "pw"})
	admins, _ := svc.List(context.Background())
	if err := svc.Delete(context.Background(), "someone-else", admins[0].ID); !errors.Is(err, ErrLastAdmin) {
		t.Errorf("err = %v, want ErrLastAdmin", err)
	}
}

func TestDelete(t *testing.T) {
	svc := newService(t, [2]string{"a", "pw1"}, [2]string{"b", "pw2"})
	ctx := context.Background()
	admins, _ := svc.List(ctx)

	if err := svc.Delete(ctx, admins[0].ID, admins[1].ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	left, _ := svc.List(ctx)
	if len(left) != 1 || left[0].ID != admins[0].ID {
		t.Errorf("remaining admins = %+v", left)
	}
}

func TestSeed(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	if err := svc.Seed(ctx, "admin", "admin23435"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := svc.Seed(ctx, "admin", "different"); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	admins, _ := svc.List(ctx)
	if len(admins) != 1 {
		t.Fatalf("expected 1 admin after reseeding, got %d", len(admins))
	}
	if admins[0].Secret != "admin23435" {
		t.Error("reseed overwrote the original secret")
	}
}

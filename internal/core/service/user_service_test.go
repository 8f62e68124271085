package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wheelhouse/site-api/internal/core/domain"
)

type stubAuditRepo struct {
	entries []*domain.AuditEntry
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *stubAuditRepo) ListRecent(_ context.Context, _ int64) ([]*domain.AuditEntry, error) {
	return r.entries, nil
}

// fixedAuth reports a fixed session regardless of cookies.
type fixedAuth struct {
	user *domain.UserInfo
}

func (a *fixedAuth) Login(echo.Context, string, string) (*domain.UserInfo, error) {
	return a.user, nil
}

func (a *fixedAuth) Logout(echo.Context) error { return nil }

func (a *fixedAuth) VerifyAdminAuth(echo.Context, domain.SiteType) (*domain.UserInfo, error) {
	return a.user, nil
}

type userFixture struct {
	repo  *stubUserRepo
	audit *stubAuditRepo
	svc   *UserService
}

func newUserFixture(actor *domain.UserInfo) *userFixture {
	repo := newStubUserRepo()
	auditRepo := &stubAuditRepo{}
	audit := NewAuditRecorder(auditRepo, newTestResolver(), zerolog.Nop())
	svc := NewUserService(repo, &fixedAuth{user: actor}, audit, zerolog.Nop())
	return &userFixture{repo: repo, audit: auditRepo, svc: svc}
}

func validInput() CreateUserInput {
	role := domain.RoleAdmin
	return CreateUserInput{
		Email:    "a@x.com",
		Password: "longenough",
		Name:     "A",
		Role:     &role,
		SiteType: domain.SiteTypeAdmin,
	}
}

func TestUserService_CreateUser(t *testing.T) {
	e := echo.New()
	actor := &domain.UserInfo{ID: "boss", Role: domain.RoleSuperAdmin}
	f := newUserFixture(actor)

	c, _ := newTestContext(e, adminHost)
	id, err := f.svc.CreateUser(c, validInput())
	if err != nil {
		t.Fatalf("CreateUser returned error: %v", err)
	}
	if id == "" {
		t.Fatalf("expected id")
	}

	stored, err := f.repo.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if !stored.Active {
		t.Fatalf("new user must start active")
	}
	if stored.PasswordHash == "longenough" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("longenough")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}

	if len(f.audit.entries) != 1 {
		t.Fatalf("expected one audit entry, got %d", len(f.audit.entries))
	}
	entry := f.audit.entries[0]
	if entry.Action != "create-user" || entry.Towards != id || entry.UserID != "boss" {
		t.Fatalf("unexpected audit entry: %+v", entry)
	}
}

func TestUserService_CreateUserValidation(t *testing.T) {
	e := echo.New()
	f := newUserFixture(nil)
	c, _ := newTestContext(e, adminHost)

	cases := map[string]func(*CreateUserInput){
		"bad email":      func(in *CreateUserInput) { in.Email = "not-an-email" },
		"short password": func(in *CreateUserInput) { in.Password = "short" },
		"empty name":     func(in *CreateUserInput) { in.Name = "" },
		"missing role":   func(in *CreateUserInput) { in.Role = nil },
		"bad site type":  func(in *CreateUserInput) { in.SiteType = "intranet" },
	}
	for name, mutate := range cases {
		in := validInput()
		mutate(&in)
		_, err := f.svc.CreateUser(c, in)
		var ve *domain.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestUserService_CreateUserValidationListsFields(t *testing.T) {
	e := echo.New()
	f := newUserFixture(nil)
	c, _ := newTestContext(e, adminHost)

	in := validInput()
	in.Email = "nope"
	in.Password = "short"
	_, err := f.svc.CreateUser(c, in)
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "email") || !strings.Contains(msg, "password") {
		t.Fatalf("expected both offending fields in %q", msg)
	}
}

func TestUserService_CreateUserDuplicateEmailSameVariant(t *testing.T) {
	e := echo.New()
	f := newUserFixture(nil)
	c, _ := newTestContext(e, adminHost)

	if _, err := f.svc.CreateUser(c, validInput()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := f.svc.CreateUser(c, validInput()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// Same email on the other variant is a different identity.
	other := validInput()
	other.SiteType = domain.SiteTypeCustomer
	if _, err := f.svc.CreateUser(c, other); err != nil {
		t.Fatalf("cross-variant create failed: %v", err)
	}
}

func TestUserService_CreateUserMixedCaseEmailCanLogIn(t *testing.T) {
	e := echo.New()
	f := newUserFixture(nil)
	svc := newAuthService(f.repo, nil)

	in := validInput()
	in.Email = "Admin@x.com"
	cc, _ := newTestContext(e, adminHost)
	id, err := f.svc.CreateUser(cc, in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	c, _ := newTestContext(e, adminHost)
	info, err := svc.Login(c, "Admin@x.com", in.Password)
	if err != nil {
		t.Fatalf("login with the created email failed: %v", err)
	}
	if info.ID != id {
		t.Fatalf("expected user %s, got %s", id, info.ID)
	}

	// The stored form is lowercased, so the lowercase spelling works too.
	c2, _ := newTestContext(e, adminHost)
	if _, err := svc.Login(c2, "admin@x.com", in.Password); err != nil {
		t.Fatalf("login with lowercased email failed: %v", err)
	}

	// Uniqueness is case-insensitive: the lowercase spelling conflicts.
	dup := validInput()
	dup.Email = "admin@x.com"
	c3, _ := newTestContext(e, adminHost)
	if _, err := f.svc.CreateUser(c3, dup); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists for case-variant email, got %v", err)
	}
}

func TestUserService_SetUserActive(t *testing.T) {
	e := echo.New()
	f := newUserFixture(&domain.UserInfo{ID: "boss"})
	c, _ := newTestContext(e, adminHost)

	id, err := f.svc.CreateUser(c, validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	ok, err := f.svc.SetUserActive(c, id, false)
	if err != nil || !ok {
		t.Fatalf("SetUserActive failed: %v", err)
	}
	stored, _ := f.repo.FindByID(context.Background(), id)
	if stored.Active {
		t.Fatalf("expected user deactivated")
	}

	if len(f.audit.entries) != 2 {
		t.Fatalf("expected audit entries for create and toggle, got %d", len(f.audit.entries))
	}
	if f.audit.entries[1].Action != "set-user-active" {
		t.Fatalf("unexpected audit action: %s", f.audit.entries[1].Action)
	}
}

func TestUserService_SetUserActiveNotFound(t *testing.T) {
	e := echo.New()
	f := newUserFixture(nil)
	c, _ := newTestContext(e, adminHost)

	if _, err := f.svc.SetUserActive(c, "missing", true); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ListUsersScopedToAdminVariant(t *testing.T) {
	e := echo.New()
	f := newUserFixture(nil)
	c, _ := newTestContext(e, adminHost)

	id, err := f.svc.CreateUser(c, validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	customer := validInput()
	customer.Email = "c@x.com"
	customer.SiteType = domain.SiteTypeCustomer
	if _, err := f.svc.CreateUser(c, customer); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	users, err := f.svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers returned error: %v", err)
	}
	if len(users) != 1 || users[0].ID != id || !users[0].Active {
		t.Fatalf("unexpected listing: %+v", users)
	}
}

func TestUserService_GetUserInfoHidesInactive(t *testing.T) {
	f := newUserFixture(nil)
	id := f.repo.seed(t, "a@x.com", "longenough", domain.RoleAdmin, false)

	if info := f.svc.GetUserInfo(context.Background(), id); info != nil {
		t.Fatalf("expected nil for inactive user, got %+v", info)
	}
	if info := f.svc.GetUserInfo(context.Background(), "missing"); info != nil {
		t.Fatalf("expected nil for missing user, got %+v", info)
	}
}

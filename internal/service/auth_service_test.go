package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nmacchitella/fashion-inventory/internal/config"
	"github.com/nmacchitella/fashion-inventory/internal/dto"
	"github.com/nmacchitella/fashion-inventory/internal/model"
	"github.com/nmacchitella/fashion-inventory/internal/repository"
	"github.com/nmacchitella/fashion-inventory/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	return u, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errors.New("record not found")
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Active {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) ListAll(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *stubUserRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("record not found")
	}
	u.Active = false
	return nil
}

func (r *stubUserRepo) Reactivate(_ context.Context, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return errors.New("record not found")
	}
	u.Active = true
	return nil
}

var _ repository.UserRepository = (*stubUserRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

func buildAuthSvc(t *testing.T) (service.AuthService, *stubUserRepo, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
	repo := newStubUserRepo()
	return service.NewAuthService(repo, cfg), repo, cfg
}

func seedUser(t *testing.T, repo *stubUserRepo, email, password string, role model.Role) *model.User {
	t.Helper()
	// Low cost keeps the test fast; production uses cost 12.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLogin_Succeeds(t *testing.T) {
	svc, repo, cfg := buildAuthSvc(t)
	u := seedUser(t, repo, "ana@atelier.example", "s3cretpass", model.RoleAdmin)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@atelier.example",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, cfg.JWTExpirationHours*3600, resp.ExpiresIn)
	assert.Equal(t, u.ID.String(), resp.User.ID)
	assert.Equal(t, "ADMIN", resp.User.Role)

	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, u.ID.String(), claims["user_id"])
	assert.Equal(t, "ADMIN", claims["role"])
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo, _ := buildAuthSvc(t)
	seedUser(t, repo, "ana@atelier.example", "s3cretpass", model.RoleUser)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@atelier.example",
		Password: "wrong",
	})
	assert.EqualError(t, err, "invalid credentials")
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _, _ := buildAuthSvc(t)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@atelier.example",
		Password: "whatever",
	})
	assert.EqualError(t, err, "invalid credentials")
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	svc, repo, _ := buildAuthSvc(t)
	seedUser(t, repo, "ana@atelier.example", "s3cretpass", model.RoleUser)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@atelier.example",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, login.User.ID, refreshed.User.ID)
}

func TestRefresh_DeactivatedUserRejected(t *testing.T) {
	svc, repo, _ := buildAuthSvc(t)
	u := seedUser(t, repo, "ana@atelier.example", "s3cretpass", model.RoleUser)

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@atelier.example",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateUser(context.Background(), u.ID))

	_, err = svc.Refresh(context.Background(), login.RefreshToken)
	assert.Error(t, err)
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc, _, _ := buildAuthSvc(t)

	_, err := svc.Refresh(context.Background(), "not.a.token")
	assert.Error(t, err)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	svc, repo, _ := buildAuthSvc(t)
	seedUser(t, repo, "ana@atelier.example", "s3cretpass", model.RoleUser)

	_, err := svc.CreateUser(context.Background(), dto.CreateUserRequest{
		Email:    "ana@atelier.example",
		Password: "anotherpass",
		Role:     string(model.RoleUser),
	})
	assert.Error(t, err)
}

func TestListUsers_FiltersInactive(t *testing.T) {
	svc, repo, _ := buildAuthSvc(t)
	seedUser(t, repo, "active@atelier.example", "s3cretpass", model.RoleUser)
	gone := seedUser(t, repo, "gone@atelier.example", "s3cretpass", model.RoleUser)
	require.NoError(t, svc.DeactivateUser(context.Background(), gone.ID))

	active, err := svc.ListUsers(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := svc.ListUsers(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

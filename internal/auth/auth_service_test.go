package auth

import (
	"context"
	"errors"
	"testing"

	autherrors "github.com/Netosantos999/controle-ponto-app/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn        func(ctx context.Context, user *User) error
	getByUsernameFn func(ctx context.Context, username string) (*User, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*User, error)
}

func (f *fakeRepo) Create(ctx context.Context, user *User) error {
	return f.createFn(ctx, user)
}
func (f *fakeRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	return f.getByUsernameFn(ctx, username)
}
func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return f.getByIDFn(ctx, id)
}

func TestService_Register_InvalidRole(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "admin", Password: "secret123", Role: "SUPERUSER",
	})
	assert.ErrorIs(t, err, autherrors.ErrInvalidRole)
}

func TestService_Register_HashesPassword(t *testing.T) {
	var persisted *User
	repo := &fakeRepo{
		createFn: func(_ context.Context, user *User) error {
			persisted = user
			return nil
		},
	}
	svc := NewService(repo)

	resp, err := svc.Register(context.Background(), RegisterRequest{
		Username: "admin", Password: "secret123", Role: "admin",
	})
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, resp.Role)
	assert.NotNil(t, persisted)
	assert.NotEqual(t, "secret123", persisted.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(persisted.Password), []byte("secret123")))
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(context.Context, *User) error {
			return errors.New(`ERROR: duplicate key value violates unique constraint "uq_user_username"`)
		},
	}
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "admin", Password: "secret123", Role: "STAFF",
	})
	assert.ErrorIs(t, err, autherrors.ErrUserAlreadyExists)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	assert.NoError(t, err)

	repo := &fakeRepo{
		getByUsernameFn: func(context.Context, string) (*User, error) {
			return &User{ID: uuid.New(), Username: "admin", Password: string(hash), Role: RoleAdmin, IsActive: true}, nil
		},
	}
	svc := NewService(repo)

	_, _, _, err = svc.Login(context.Background(), "admin", "wrong-password")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_InactiveUser(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	repo := &fakeRepo{
		getByUsernameFn: func(context.Context, string) (*User, error) {
			return &User{ID: uuid.New(), Username: "admin", Password: string(hash), IsActive: false}, nil
		},
	}
	svc := NewService(repo)

	_, _, _, err := svc.Login(context.Background(), "admin", "secret123")
	assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
}

func TestService_Login_IssuesSignedTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	assert.NoError(t, err)

	repo := &fakeRepo{
		getByUsernameFn: func(context.Context, string) (*User, error) {
			return &User{ID: userID, Username: "admin", Password: string(hash), Role: RoleAdmin, IsActive: true}, nil
		},
	}
	svc := NewService(repo)

	access, refresh, resp, err := svc.Login(context.Background(), "admin", "secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.Equal(t, userID.String(), resp.ID)

	token, err := jwt.Parse(access, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, RoleAdmin, claims["role"])
}

func TestService_RefreshToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	user := &User{ID: userID, Username: "admin", Role: RoleAdmin, IsActive: true}
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	user.Password = string(hash)

	repo := &fakeRepo{
		getByUsernameFn: func(context.Context, string) (*User, error) { return user, nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*User, error) {
			assert.Equal(t, userID, id)
			return user, nil
		},
	}
	svc := NewService(repo)

	_, refresh, _, err := svc.Login(context.Background(), "admin", "secret123")
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := svc.RefreshToken(context.Background(), refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, "admin", resp.Username)
}

func TestService_RefreshToken_Garbage(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, _, _, err := svc.RefreshToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
}

func TestService_GetMe_NotFound(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(context.Context, uuid.UUID) (*User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewService(repo)

	_, err := svc.GetMe(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
}

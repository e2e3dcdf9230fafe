package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
)

type fakeUserRepo struct {
	byUsername map[string]*entity.User
	created    []*entity.User
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.created = append(f.created, u)
	f.byUsername[u.Username] = u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return f.byUsername[username], nil
}

type fakeTokenRepo struct {
	byHash map[string]*entity.Token
}

func (f *fakeTokenRepo) Create(ctx context.Context, t *entity.Token) error {
	f.byHash[t.TokenHash] = t
	return nil
}

func (f *fakeTokenRepo) GetByHash(ctx context.Context, hash string) (*entity.Token, error) {
	return f.byHash[hash], nil
}

func (f *fakeTokenRepo) DeleteByHash(ctx context.Context, hash string) error {
	delete(f.byHash, hash)
	return nil
}

func newTestAuth() (*AuthUseCase, *fakeUserRepo, *fakeTokenRepo) {
	users := &fakeUserRepo{byUsername: make(map[string]*entity.User)}
	tokens := &fakeTokenRepo{byHash: make(map[string]*entity.Token)}
	uc := NewAuthUseCase(users, tokens, TokenConfig{
		Secret:     "secreto-de-test",
		ExpMinutes: 60,
		Issuer:     "despensa-test",
	})
	return uc, users, tokens
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("crea el usuario con password hasheado", func(t *testing.T) {
		uc, users, _ := newTestAuth()
		out, err := uc.Register(ctx, dto.RegisterRequest{
			Username: "maria",
			Password: "secreta123",
			Email:    "maria@example.com",
			Phone:    "55512345",
		})
		require.NoError(t, err)
		assert.Equal(t, "maria", out.Username)

		require.Len(t, users.created, 1)
		assert.NotEqual(t, "secreta123", users.created[0].PasswordHash, "nunca se guarda el password en claro")
	})

	t.Run("username duplicado", func(t *testing.T) {
		uc, _, _ := newTestAuth()
		_, err := uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "x"})
		require.NoError(t, err)

		_, err = uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "y"})
		require.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("validación de campos", func(t *testing.T) {
		uc, _, _ := newTestAuth()
		tests := []struct {
			name  string
			in    dto.RegisterRequest
			field string
		}{
			{"username requerido", dto.RegisterRequest{Password: "x"}, "username"},
			{"password requerido", dto.RegisterRequest{Username: "maria"}, "password"},
			{"phone muy largo", dto.RegisterRequest{Username: "maria", Password: "x", Phone: "123456789"}, "phone"},
			{"phone con letras", dto.RegisterRequest{Username: "maria", Password: "x", Phone: "55a12"}, "phone"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := uc.Register(ctx, tt.in)
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, tt.field)
			})
		}
	})
}

func TestLoginAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	uc, _, tokens := newTestAuth()

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)

	t.Run("login correcto emite token autenticable", func(t *testing.T) {
		out, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "secreta123"})
		require.NoError(t, err)
		require.NotEmpty(t, out.Token)
		assert.Len(t, tokens.byHash, 1, "la sesión queda persistida por hash")

		userID, err := uc.Authenticate(ctx, out.Token)
		require.NoError(t, err)
		assert.Equal(t, out.User.ID, userID)
	})

	t.Run("password incorrecto", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "otra"})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("usuario inexistente responde igual que password malo", func(t *testing.T) {
		_, err := uc.Login(ctx, dto.LoginRequest{Username: "nadie", Password: "x"})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("token basura no autentica", func(t *testing.T) {
		_, err := uc.Authenticate(ctx, "no-es-un-jwt")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newTestAuth()

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	out, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)

	t.Run("revoca la sesión aunque el JWT siga firmado y vigente", func(t *testing.T) {
		require.NoError(t, uc.Logout(ctx, out.Token))

		_, err := uc.Authenticate(ctx, out.Token)
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("logout repetido es idempotente", func(t *testing.T) {
		assert.NoError(t, uc.Logout(ctx, out.Token))
	})
}

func TestAuthenticateExpiredSession(t *testing.T) {
	ctx := context.Background()
	uc, _, tokens := newTestAuth()

	_, err := uc.Register(ctx, dto.RegisterRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)
	out, err := uc.Login(ctx, dto.LoginRequest{Username: "maria", Password: "secreta123"})
	require.NoError(t, err)

	// Forzar la expiración de la fila de sesión.
	for _, session := range tokens.byHash {
		session.ExpiresAt = time.Now().Add(-time.Minute)
	}

	_, err = uc.Authenticate(ctx, out.Token)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

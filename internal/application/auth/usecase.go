// Package auth implementa registro, login, logout y la autenticación de
// requests por bearer token.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/domain"
	"github.com/jhoicas/despensa-api/internal/domain/entity"
	"github.com/jhoicas/despensa-api/internal/domain/repository"
	"github.com/jhoicas/despensa-api/pkg/token"
)

const maxPhoneLen = 8

// TokenConfig configuración para emisión de tokens de sesión.
type TokenConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y
// validación de tokens para el middleware.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	tokenCfg  TokenConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, tokenCfg TokenConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokenRepo: tokenRepo, tokenCfg: tokenCfg}
}

// Register crea un usuario: valida, hashea el password con bcrypt y persiste.
// Devuelve ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if verr := validateRegister(in); !verr.Empty() {
		return nil, verr
	}
	existing, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password, firma un token de sesión y persiste su
// hash para poder revocarlo. Credenciales malas devuelven ErrUnauthorized sin
// distinguir si el usuario existe.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	signed, err := token.Generate(uc.tokenCfg.Secret, user.ID, uc.tokenCfg.Issuer, uc.tokenCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &entity.Token{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		TokenHash: token.Hash(signed),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(uc.tokenCfg.ExpMinutes) * time.Minute),
	}
	if err := uc.tokenRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: signed, User: *toUserResponse(user)}, nil
}

// Logout revoca la sesión del token presentado. Idempotente: un token ya
// revocado no es un error.
func (uc *AuthUseCase) Logout(ctx context.Context, rawToken string) error {
	return uc.tokenRepo.DeleteByHash(ctx, token.Hash(rawToken))
}

// Authenticate valida un bearer token: firma y expiración del JWT más la
// existencia de la fila de sesión (falla cerrado si fue revocada). Devuelve el
// ID del usuario autenticado.
func (uc *AuthUseCase) Authenticate(ctx context.Context, rawToken string) (string, error) {
	userID, err := token.Parse(uc.tokenCfg.Secret, rawToken)
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	session, err := uc.tokenRepo.GetByHash(ctx, token.Hash(rawToken))
	if err != nil {
		return "", err
	}
	if session == nil || session.UserID != userID || session.Expired(time.Now()) {
		return "", domain.ErrUnauthorized
	}
	return userID, nil
}

func validateRegister(in dto.RegisterRequest) *domain.ValidationError {
	verr := domain.NewValidationError()
	if in.Username == "" {
		verr.Add("username", "es requerido")
	}
	if in.Password == "" {
		verr.Add("password", "es requerido")
	}
	if in.Phone != "" {
		if len(in.Phone) > maxPhoneLen {
			verr.Add("phone", "máximo 8 caracteres")
		}
		for _, r := range in.Phone {
			if r < '0' || r > '9' {
				verr.Add("phone", "solo dígitos")
				break
			}
		}
	}
	return verr
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/domain"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
	"github.com/tu-usuario/mentoria-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// loginCaser normaliza logins con case folding Unicode (case-insensitive únicos).
var loginCaser = cases.Fold()

// NormalizeLogin devuelve el login canónico: fold + trim.
func NormalizeLogin(login string) string {
	return loginCaser.String(strings.TrimSpace(login))
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tx       AccountsTxRunner
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tx AccountsTxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tx: tx, jwtCfg: jwtCfg}
}

// Register crea un usuario: normaliza el login, hashea el password con bcrypt y
// persiste usuario + perfil vacío en una sola transacción. Devuelve
// ErrLoginExists si el login ya está en uso (incluida la carrera contra el
// constraint único de la DB).
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	login := NormalizeLogin(in.Login)
	if login == "" || strings.TrimSpace(in.Password) == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByLogin(login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrLoginExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Login:        login,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Phone:        strings.TrimSpace(in.Phone),
		Timezone:     strings.TrimSpace(in.Timezone),
		Level:        entity.LevelStandard,
		Status:       entity.AccountNormal,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		UserID:    user.ID,
		UpdatedAt: now,
	}
	err = uc.tx.RunAccounts(ctx, func(users repository.UserRepository, profiles repository.ProfileRepository) error {
		if err := users.Create(user); err != nil {
			return err
		}
		return profiles.Create(profile)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica login/password, genera JWT y retorna token + usuario.
// Cuenta suspendida o bloqueada no puede entrar (ErrAccountDisabled).
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByLogin(NormalizeLogin(in.Login))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.CanAct() {
		return nil, domain.ErrAccountDisabled
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Login, user.Level, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:             u.ID,
		Login:          u.Login,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		Timezone:       u.Timezone,
		Level:          u.Level,
		Status:         u.Status,
		MentorEligible: u.MentorEligible,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

package usecase

import (
	"strings"
	"time"

	"github.com/tu-usuario/mentoria-pro/internal/application/dto"
	"github.com/tu-usuario/mentoria-pro/internal/domain"
	"github.com/tu-usuario/mentoria-pro/internal/domain/entity"
	"github.com/tu-usuario/mentoria-pro/internal/domain/repository"
)

// UserUseCase lectura de usuarios/perfiles, actualización del perfil propio y
// moderación de cuentas (admin).
type UserUseCase struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// NewUserUseCase construye el caso de uso con sus puertos.
func NewUserUseCase(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, profileRepo: profileRepo}
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List devuelve el padrón de usuarios paginado. Operación de admin; el gate
// vive en el middleware HTTP.
func (uc *UserUseCase) List(page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// GetProfile obtiene el perfil del usuario.
func (uc *UserUseCase) GetProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile actualiza el perfil propio (bio, foto, nombre a mostrar).
func (uc *UserUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if len(in.Bio) > entity.ProfileBioMax || len(in.DisplayName) > entity.ProfileDisplayNameMax {
		return nil, domain.ErrInvalidInput
	}
	profile, err := uc.profileRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	profile.Bio = strings.TrimSpace(in.Bio)
	profile.PhotoURL = strings.TrimSpace(in.PhotoURL)
	profile.DisplayName = strings.TrimSpace(in.DisplayName)
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// SetMentorEligible activa o desactiva la elegibilidad como mentor del propio usuario.
func (uc *UserUseCase) SetMentorEligible(userID string, eligible bool) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.MentorEligible = eligible
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// SetAccountStatus moderación de cuentas (admin): normal, suspended, banned.
// Un admin no puede moderarse a sí mismo.
func (uc *UserUseCase) SetAccountStatus(targetID, actorID, status string) (*dto.UserResponse, error) {
	switch status {
	case entity.AccountNormal, entity.AccountSuspended, entity.AccountBanned:
	default:
		return nil, domain.ErrInvalidInput
	}
	if targetID == actorID {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Status = status
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// SetLevel cambia el nivel de autorización del sistema (admin). Un admin no
// puede degradarse a sí mismo.
func (uc *UserUseCase) SetLevel(targetID, actorID, level string) (*dto.UserResponse, error) {
	switch level {
	case entity.LevelStandard, entity.LevelAdmin:
	default:
		return nil, domain.ErrInvalidInput
	}
	if targetID == actorID {
		return nil, domain.ErrForbidden
	}
	user, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.Level = level
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
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

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.ProfileResponse{
		UserID:      p.UserID,
		Bio:         p.Bio,
		PhotoURL:    p.PhotoURL,
		DisplayName: p.DisplayName,
		UpdatedAt:   p.UpdatedAt,
	}
}

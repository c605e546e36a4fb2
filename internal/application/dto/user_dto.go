package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en use case).
type RegisterRequest struct {
	Login    string `json:"login" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
	Timezone string `json:"timezone" validate:"omitempty,max=50"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID             string    `json:"id"`
	Login          string    `json:"login"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Timezone       string    `json:"timezone,omitempty"`
	Level          string    `json:"level"`
	Status         string    `json:"status"`
	MentorEligible bool      `json:"mentor_eligible"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProfileResponse salida del perfil de un usuario.
type ProfileResponse struct {
	UserID      string    `json:"user_id"`
	Bio         string    `json:"bio"`
	PhotoURL    string    `json:"photo_url"`
	DisplayName string    `json:"display_name"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpdateProfileRequest entrada para actualizar el perfil propio.
type UpdateProfileRequest struct {
	Bio         string `json:"bio" validate:"omitempty,max=500"`
	PhotoURL    string `json:"photo_url" validate:"omitempty,url,max=500"`
	DisplayName string `json:"display_name" validate:"omitempty,max=200"`
}

// SetMentorRequest entrada para activar/desactivar la elegibilidad como mentor.
type SetMentorRequest struct {
	Eligible bool `json:"eligible"`
}

// SetAccountStatusRequest entrada admin para moderar una cuenta.
type SetAccountStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=normal suspended banned"`
}

// SetLevelRequest entrada admin para cambiar el nivel de autorización.
type SetLevelRequest struct {
	Level string `json:"level" validate:"required,oneof=standard admin"`
}

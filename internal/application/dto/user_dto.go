package dto

import (
	"time"

	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
)

// LoginRequest credenciales para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"contrasena"`
}

// LoginResponse token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"usuario"`
}

// CreateUserRequest body para POST /api/users.
type CreateUserRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Password string `json:"contrasena"`
	Role     string `json:"rol"`
}

// UpdateUserRequest body para PUT /api/users/:id. Password vacío = sin cambio.
type UpdateUserRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Password string `json:"contrasena,omitempty"`
	Role     string `json:"rol"`
	Status   string `json:"estado,omitempty"`
}

// UserResponse usuario en respuestas HTTP (sin hash de contraseña).
type UserResponse struct {
	ID        string    `json:"id_usuario"`
	Name      string    `json:"nombre"`
	Email     string    `json:"correo"`
	Role      string    `json:"rol"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse mapea la entidad a su representación HTTP.
func ToUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/domain"
	"github.com/dulcehorno/panaderia-api/internal/domain/entity"
	"github.com/dulcehorno/panaderia-api/internal/domain/repository"
)

// UserUseCase CRUD de usuarios del sistema.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

func validRole(role string) bool {
	return role == entity.RoleAdmin || role == entity.RolePanadero || role == entity.RoleVendedor
}

// Create crea un usuario: hashea la contraseña con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el correo ya está en uso.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" || in.Password == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleVendedor
	}
	if !validRole(role) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// GetByID obtiene un usuario por id.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return dto.ToUserResponse(user), nil
}

// List lista usuarios con paginación.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) ([]dto.UserResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *dto.ToUserResponse(u))
	}
	return out, nil
}

// Update actualiza nombre, correo, rol, estado y opcionalmente la contraseña.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = strings.TrimSpace(strings.ToLower(in.Email))
	}
	if in.Role != "" {
		if !validRole(in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = in.Role
	}
	if in.Status != "" {
		user.Status = in.Status
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.userRepo.Delete(ctx, id)
}

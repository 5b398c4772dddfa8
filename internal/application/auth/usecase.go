// Package auth implementa registro y login de usuarios con emisión de JWT.
package auth

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/jwt"
	"github.com/jhoicas/almacen-api/pkg/refnum"
)

// UseCase casos de uso de autenticación.
type UseCase struct {
	users      repository.UserRepository
	secret     string
	issuer     string
	expMinutes int
	clock      refnum.Clock
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserRepository, secret, issuer string, expMinutes int, clock refnum.Clock) *UseCase {
	if clock == nil {
		clock = refnum.SystemClock{}
	}
	return &UseCase{users: users, secret: secret, issuer: issuer, expMinutes: expMinutes, clock: clock}
}

// Register registra un usuario nuevo con rol WORKER y estado ACTIVE.
// Username y email deben ser únicos.
func (uc *UseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username y password son obligatorios", domain.ErrInvalidInput)
	}
	existing, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username ya registrado", domain.ErrDuplicate)
	}
	if in.Email != "" {
		existing, err = uc.users.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email ya registrado", domain.ErrDuplicate)
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Tel:          in.Tel,
		Role:         entity.RoleWorker,
		State:        entity.UserStateActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Email:     user.Email,
		Tel:       user.Tel,
		Role:      user.Role,
		State:     user.State,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// Login valida credenciales y emite un JWT. Un usuario inactivo no puede
// iniciar sesión.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.State != entity.UserStateActive {
		return nil, domain.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.secret, user.ID, user.Username, user.Role, uc.issuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Role:     user.Role,
	}, nil
}

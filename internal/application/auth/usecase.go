package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/moganraj05/Inventory-Management-System/internal/application/dto"
	"github.com/moganraj05/Inventory-Management-System/internal/domain"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/entity"
	"github.com/moganraj05/Inventory-Management-System/internal/domain/repository"
	"github.com/moganraj05/Inventory-Management-System/pkg/jwt"
)

// resetTokenTTL vigencia del token de recuperación de contraseña.
const resetTokenTTL = 15 * time.Minute

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y recuperación
// de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleStaff
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// ForgotPassword genera un token de recuperación y guarda su hash con
// expiración de 15 minutos. Devuelve el token plano para su entrega fuera de
// banda; nunca se persiste en claro.
// Devuelve ErrUserNotFound si el email no está registrado.
func (uc *AuthUseCase) ForgotPassword(in dto.ForgotPasswordRequest) (string, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrUserNotFound
	}
	token := uuid.New().String()
	expiry := time.Now().Add(resetTokenTTL)
	if err := uc.userRepo.SetResetToken(user.ID, hashToken(token), expiry); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword consume el token de recuperación: valida vigencia, fija el
// nuevo hash bcrypt y limpia el token.
func (uc *AuthUseCase) ResetPassword(in dto.ResetPasswordRequest) error {
	if in.Token == "" || len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByResetTokenHash(hashToken(in.Token))
	if err != nil {
		return err
	}
	if user == nil || time.Now().After(user.ResetTokenExpiry) {
		return domain.ErrInvalidToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePassword(user.ID, string(hash))
}

// hashToken sha256 en hex del token plano; lo que se persiste y compara.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

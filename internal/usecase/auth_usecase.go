package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"dawah-portal/internal/entity"
	"dawah-portal/internal/repo/persistent"
	"dawah-portal/pkg/jwt"
	"dawah-portal/pkg/logger"

	"gorm.io/gorm"
)

// Fallback credentials for the demo admin login. Only honored while the
// DemoAdminLogin config gate is on; see README for why this is a defect.
const (
	demoAdminUsername = "admin"
	demoAdminPassword = "admin123"
)

type AuthUseCase interface {
	Register(username, password, name string) (*entity.User, error)
	Login(username, password string) (*entity.User, string, error)
}

type authUseCase struct {
	userRepo       persistent.UserRepository
	jwtService     *jwt.Service
	demoAdminLogin bool
	logger         *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	demoAdminLogin bool,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:       userRepo,
		jwtService:     jwtService,
		demoAdminLogin: demoAdminLogin,
		logger:         logger,
	}
}

func (uc *authUseCase) Register(username, password, name string) (*entity.User, error) {
	if _, err := uc.userRepo.GetByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Password: hashPassword(password),
		Name:     name,
		Role:     entity.RoleUser,
	}

	if err := uc.userRepo.Create(user); err != nil {
		uc.logger.Error("Failed to create user %s: %v", username, err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user.Password = ""
	return user, nil
}

func (uc *authUseCase) Login(username, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByUsername(username)
	if err == nil && user.Password == hashPassword(password) {
		token, err := uc.jwtService.GenerateToken(user.Username, string(user.Role))
		if err != nil {
			uc.logger.Error("Failed to generate token for %s: %v", username, err)
			return nil, "", fmt.Errorf("failed to generate token: %w", err)
		}
		user.Password = ""
		return user, token, nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	// Demo fallback: an ephemeral Admin token without a user row
	if uc.demoAdminLogin && username == demoAdminUsername && password == demoAdminPassword {
		uc.logger.Warn("Demo admin login used; disable DEMO_ADMIN_LOGIN in production")
		admin := &entity.User{
			Username: demoAdminUsername,
			Name:     "Admin User",
			Role:     entity.RoleAdmin,
		}
		token, err := uc.jwtService.GenerateToken(admin.Username, string(admin.Role))
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate token: %w", err)
		}
		return admin, token, nil
	}

	return nil, "", ErrInvalidCredentials
}

// hashPassword returns the lowercase hex sha256 digest, the stored credential
// format this portal has always used. Unsalted, so equal passwords collide;
// kept only for compatibility with existing rows.
func hashPassword(password string) string {
	digest := sha256.Sum256([]byte(password))
	return hex.EncodeToString(digest[:])
}

package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Navin2k4/UrbanUplift-sub000/internal/auth"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/errors"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/model"
	"github.com/Navin2k4/UrbanUplift-sub000/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and authentication for all roles.
type AuthService interface {
	RegisterUser(ctx context.Context, name, email, password string, attrs RoleAttributes) (*model.User, error)
	AuthenticateUser(ctx context.Context, role model.Role, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// RegisterUser creates a user in the role partition described by attrs.
// The email must be unique across all roles.
func (s *authService) RegisterUser(ctx context.Context, name, email, password string, attrs RoleAttributes) (*model.User, error) {
	if err := attrs.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrDuplicateEmail
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         attrs.Role(),
		// EmailVerified stays false; no verification gate is enforced at login.
	}
	attrs.Apply(user)

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// AuthenticateUser validates credentials against one role partition and
// issues a session token. Unknown email, role mismatch, and wrong password
// all return the same ErrInvalidCredentials so accounts cannot be enumerated.
func (s *authService) AuthenticateUser(ctx context.Context, role model.Role, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if user.Role != role {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Login still succeeds; the timestamp is informational.
		log.Printf("update last login for %s: %v", user.ID, err)
	}
	user.LastLoginAt = &now

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

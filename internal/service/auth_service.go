package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"injai_channel/internal/model"
	"injai_channel/internal/repository"
	"injai_channel/internal/utils"

	"github.com/rs/zerolog"
)

// MinPasswordLength applies to signup, admin created users and password changes.
const MinPasswordLength = 6

// AuthService issues session tokens for valid credentials
type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*model.User, string, error)
	Login(ctx context.Context, email, username, password string) (*model.User, string, error)
}

// AuthOptions controls who may sign up and with which role
type AuthOptions struct {
	SignupRole    string
	SignupEnabled bool
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
	opts     AuthOptions
	log      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, opts AuthOptions, log zerolog.Logger) AuthService {
	if opts.SignupRole == "" {
		opts.SignupRole = model.RoleAdmin
	}
	return &authService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
		opts:     opts,
		log:      log,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup creates a new account with the configured signup role and logs it in
func (s *authService) Signup(ctx context.Context, username, email, password string) (*model.User, string, error) {
	if !s.opts.SignupEnabled {
		return nil, "", ErrSignupDisabled
	}

	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if username == "" || email == "" || password == "" {
		return nil, "", invalid("All fields are required")
	}
	if len(password) < MinPasswordLength {
		return nil, "", invalid("Password must be at least 6 characters long")
	}

	existingUser, err := s.userRepo.FindByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, "", ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         s.opts.SignupRole,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same identity
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("user created, but failed to generate token")
		return user, "", fmt.Errorf("user created, but failed to generate token: %w", err)
	}

	return user, token, nil
}

// Login authenticates a user by email or username and returns a JWT token
func (s *authService) Login(ctx context.Context, email, username, password string) (*model.User, string, error) {
	email = normalizeEmail(email)
	username = strings.TrimSpace(username)
	if (email == "" && username == "") || password == "" {
		return nil, "", invalid("Email or username and password are required")
	}

	user, err := s.userRepo.FindByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user: %w", err)
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials // Unknown user looks the same as a wrong password
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	return user, token, nil
}

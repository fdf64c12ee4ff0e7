package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ramazanbat/venue-booking/models"
	"github.com/ramazanbat/venue-booking/repositories"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 8
	otpTTL            = 5 * time.Minute
)

// OTPSender delivers a one-time code to a user. The SMTP-backed
// EmailService implements it in production; tests use a fake.
type OTPSender interface {
	SendOTPEmail(email, code string) error
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	CompleteRegistration(ctx context.Context, input CompleteRegistrationInput) (*models.User, error)
	Login(ctx context.Context, input LoginInput) (*models.User, error)
	SendOTP(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) error
}

type RegisterInput struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

// CompleteRegistrationInput carries the extended registration fields the
// multi-step signup flow collects after the initial account creation.
type CompleteRegistrationInput struct {
	FullName        string            `json:"full_name"`
	Email           string            `json:"email"`
	PhoneNumber     string            `json:"phone_number"`
	Password        string            `json:"password"`
	Role            models.UserRole   `json:"role"`
	PreferredSports []string          `json:"preferred_sports"`
	SkillLevels     map[string]string `json:"skill_levels"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authService struct {
	userRepo  repositories.UserRepository
	otpSender OTPSender
}

func NewAuthService(userRepo repositories.UserRepository, otpSender OTPSender) AuthService {
	return &authService{
		userRepo:  userRepo,
		otpSender: otpSender,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:        input.FullName,
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		PasswordHash:    string(hashedPassword),
		Role:            models.RoleCustomer,
		IsActive:        true,
		PreferredSports: []string{},
		SkillLevels:     map[string]string{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserEmailConflict) {
			return nil, ErrUserEmailConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *authService) CompleteRegistration(ctx context.Context, input CompleteRegistrationInput) (*models.User, error) {
	if len(input.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}

	role := input.Role
	switch role {
	case models.RoleCustomer, models.RoleAdmin, models.RoleOwner:
	case "":
		role = models.RoleCustomer
	default:
		return nil, ErrValidationFailed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FullName:              input.FullName,
		Email:                 input.Email,
		PhoneNumber:           input.PhoneNumber,
		PasswordHash:          string(hashedPassword),
		Role:                  role,
		IsActive:              true,
		PreferredSports:       input.PreferredSports,
		SkillLevels:           input.SkillLevels,
		RegistrationCompleted: true,
	}
	if user.PreferredSports == nil {
		user.PreferredSports = []string{}
	}
	if user.SkillLevels == nil {
		user.SkillLevels = map[string]string{}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrUserEmailConflict) {
			return nil, ErrUserEmailConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *authService) SendOTP(ctx context.Context, email string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user by email: %w", err)
	}

	code, err := generateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := s.userRepo.SetOTP(ctx, user.ID, code, time.Now().Add(otpTTL)); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}

	if err := s.otpSender.SendOTPEmail(user.Email, code); err != nil {
		return fmt.Errorf("failed to send verification code: %w", err)
	}
	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, email, code string) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user by email: %w", err)
	}

	if user.OTPCode == nil || user.OTPExpiresAt == nil {
		return ErrOTPNotRequested
	}
	if user.OTPExpiresAt.Before(time.Now()) {
		return ErrOTPExpired
	}
	if *user.OTPCode != code {
		return ErrOTPInvalid
	}

	if err := s.userRepo.MarkVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to mark user verified: %w", err)
	}
	return nil
}

// generateOTPCode returns a random 6-digit code.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

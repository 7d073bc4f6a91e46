package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	autherrors "go-gift-api/internal/auth/errors"
	"go-gift-api/internal/shared/database/dbgen"
	"go-gift-api/internal/shared/database/helper"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const AccessTokenTTL = 24 * time.Hour

type Service struct {
	repo      Repository
	jwtSecret []byte
	logger    *zap.Logger
	now       func() time.Time
}

func NewService(repo Repository, jwtSecret string, logger ...*zap.Logger) *Service {
	l := zap.NewNop()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &Service{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		logger:    l,
		now:       time.Now,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := hashPassword(req.Password)
	if err != nil {
		return AuthResponse{}, err
	}

	user, err := s.repo.Create(ctx, dbgen.CreateUserParams{
		Email:    normalizeEmail(req.Email),
		Password: hashed,
	})
	if err != nil {
		if helper.IsUniqueViolation(err, "") {
			return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
		}
		s.logger.Error("failed to create user", zap.Error(err))
		return AuthResponse{}, err
	}

	return toAuthResponse(user), nil
}

func (s *Service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.Error("failed to fetch user by email", zap.Error(err))
		}
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return LoginResponse{}, autherrors.ErrInactiveUser
	}

	expiresAt := s.now().Add(AccessTokenTTL)
	token, err := s.generateToken(user.ID.String(), expiresAt)
	if err != nil {
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		User:        toAuthResponse(user),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *Service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, autherrors.ErrUserNotFound
		}
		return nil, err
	}

	res := toAuthResponse(u)
	return &res, nil
}

// ChangePassword replaces the caller's password after checking the old one.
func (s *Service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.OldPassword)); err != nil {
		return autherrors.ErrWrongPassword
	}

	hashed, err := hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, id, hashed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return autherrors.ErrUserNotFound
		}
		s.logger.Error("failed to update password", zap.String("user_id", userID), zap.Error(err))
		return err
	}

	return nil
}

func (s *Service) generateToken(userID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"iat":     s.now().Unix(),
		"exp":     expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func hashPassword(pw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %v", autherrors.ErrPasswordHashFailed, err)
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toAuthResponse(u dbgen.User) AuthResponse {
	return AuthResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

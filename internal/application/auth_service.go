package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/wil-portal/internal/domain/entity"
	repo "github.com/oksasatya/wil-portal/internal/domain/repository"
	"github.com/oksasatya/wil-portal/pkg/helpers"
	"github.com/oksasatya/wil-portal/pkg/validation"
)

type AuthService struct {
	Users    repo.UserRepository
	JWT      *helpers.JWTManager
	Revoked  repo.RevocationStore
	Logger   *logrus.Logger
	validate *validator.Validate

	// dummyHash is compared against when the email is unknown. It must share
	// the stored hashes' cost so both failure paths take the same time.
	dummyHash string
}

// NewAuthService builds the service. bcryptCost is the cost the stored
// password hashes were generated with.
func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, revoked repo.RevocationStore, logger *logrus.Logger, bcryptCost int) *AuthService {
	dummy, _ := helpers.HashPassword("wil-portal-dummy", bcryptCost) // fixed short input never fails
	return &AuthService{
		Users:     users,
		JWT:       jwt,
		Revoked:   revoked,
		Logger:    logger,
		validate:  validation.New(),
		dummyHash: dummy,
	}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`

	// ClientIP is recorded in the audit log only.
	ClientIP string `json:"-"`
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      entity.PublicUser
}

// Login verifies the credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, missingFieldsError(err, func([]string) string { return "Email and password are required" })
	}

	u, err := s.Users.GetByEmail(ctx, in.Email)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("lookup user: %w", err)
		}
		helpers.CompareHashAndPassword(s.dummyHash, in.Password)
		s.audit(in, "", "failure", "unknown_email")
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, in.Password) {
		s.audit(in, u.ID, "failure", "bad_password")
		return nil, ErrInvalidCredentials
	}

	token, claims, err := s.JWT.Generate(u.ID, string(u.Role))
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}
	s.audit(in, u.ID, "success", "")

	return &LoginResult{Token: token, ExpiresAt: claims.ExpiresAt.Time, User: u.Public()}, nil
}

// Verify checks signature, expiry and revocation of a bearer token.
func (s *AuthService) Verify(ctx context.Context, token string) (*helpers.SessionClaims, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if s.Revoked != nil {
		revoked, err := s.Revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, ErrUnauthorized
		}
	}
	return claims, nil
}

// CurrentUser resolves the user a verified token was issued to.
func (s *AuthService) CurrentUser(ctx context.Context, claims *helpers.SessionClaims) (entity.PublicUser, error) {
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return entity.PublicUser{}, ErrUnauthorized
		}
		return entity.PublicUser{}, fmt.Errorf("lookup user: %w", err)
	}
	return u.Public(), nil
}

// Logout revokes the token until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, claims *helpers.SessionClaims) error {
	if s.Revoked == nil || claims.ExpiresAt == nil {
		return nil
	}
	if err := s.Revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": claims.UserID, "jti": claims.ID}).Info("session revoked")
	}
	return nil
}

func (s *AuthService) audit(in LoginInput, userID, outcome, reason string) {
	if s.Logger == nil {
		return
	}
	fields := logrus.Fields{
		"event":   "login_attempt",
		"email":   in.Email,
		"outcome": outcome,
		"ip":      in.ClientIP,
	}
	if userID != "" {
		fields["user_id"] = userID
	}
	if reason != "" {
		fields["reason"] = reason
		s.Logger.WithFields(fields).Warn("login failed")
		return
	}
	s.Logger.WithFields(fields).Info("login succeeded")
}

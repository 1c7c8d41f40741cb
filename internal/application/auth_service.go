package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cnic-auth/backend/internal/domain/entity"
	"github.com/cnic-auth/backend/internal/domain/repository"
	"github.com/cnic-auth/backend/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers unknown CNIC, wrong password and inactive
	// accounts alike, so a caller can never tell which one failed.
	ErrInvalidCredentials = errors.New("invalid cnic or password")
	// ErrInvalidToken covers malformed, expired and already-blacklisted
	// refresh tokens.
	ErrInvalidToken = errors.New("invalid refresh token")
)

// AuthService verifies credentials, issues token pairs and revokes refresh
// tokens via the blacklist.
type AuthService struct {
	Repo      repository.UserRepository
	Blacklist repository.TokenBlacklist
	JWT       *helpers.JWTManager
	Logger    *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, blacklist repository.TokenBlacklist, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Blacklist: blacklist, JWT: jwt, Logger: logger}
}

// UserProfile is the public snippet returned on login; it never carries the
// password hash or the internal row id.
type UserProfile struct {
	CNIC     string `json:"cnic"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	UserID   string `json:"user_id"`
}

type LoginResult struct {
	AccessToken   string
	AccessExpiry  time.Time
	RefreshToken  string
	RefreshExpiry time.Time
	User          UserProfile
}

// Login authenticates by CNIC and password and issues an access/refresh pair.
func (s *AuthService) Login(ctx context.Context, cnic, password string) (*LoginResult, error) {
	u, err := s.Repo.GetByCNIC(cnic)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	access, aexp, err := s.JWT.GenerateAccessToken(u.UserID)
	if err != nil {
		s.logTokenError(err, u, "generate access token failed")
		return nil, err
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.UserID)
	if err != nil {
		s.logTokenError(err, u, "generate refresh token failed")
		return nil, err
	}

	return &LoginResult{
		AccessToken:   access,
		AccessExpiry:  aexp,
		RefreshToken:  refresh,
		RefreshExpiry: rexp,
		User: UserProfile{
			CNIC:     u.CNIC,
			Email:    u.Email,
			FullName: u.FullName,
			UserID:   u.UserID,
		},
	}, nil
}

// Logout blacklists a refresh token. Token-shaped failures (malformed,
// expired, already revoked) come back as ErrInvalidToken; a blacklist write
// failure is surfaced distinctly so an outage is not reported as a bad token.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return ErrInvalidToken
	}
	revoked, err := s.Blacklist.Contains(ctx, claims.ID)
	if err != nil {
		return fmt.Errorf("blacklist lookup: %w", err)
	}
	if revoked {
		return ErrInvalidToken
	}
	if err := s.Blacklist.Add(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		return fmt.Errorf("blacklist write: %w", err)
	}
	if s.Logger != nil {
		s.Logger.WithField("user_id", claims.UserID).Info("refresh token blacklisted")
	}
	return nil
}

// Refresh exchanges a live refresh token for a new access token. The refresh
// token is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, time.Time, error) {
	claims, err := s.JWT.ParseRefreshToken(refreshToken)
	if err != nil {
		return "", time.Time{}, ErrInvalidToken
	}
	revoked, err := s.Blacklist.Contains(ctx, claims.ID)
	if err != nil || revoked {
		return "", time.Time{}, ErrInvalidToken
	}
	u, err := s.Repo.GetByID(claims.UserID)
	if err != nil || u == nil || !u.IsActive {
		return "", time.Time{}, ErrInvalidToken
	}
	return s.JWT.GenerateAccessToken(u.UserID)
}

// Profile returns the public snippet for an authenticated user.
func (s *AuthService) Profile(userID string) (*UserProfile, error) {
	u, err := s.Repo.GetByID(userID)
	if err != nil || u == nil {
		return nil, repository.ErrNotFound
	}
	return &UserProfile{CNIC: u.CNIC, Email: u.Email, FullName: u.FullName, UserID: u.UserID}, nil
}

func (s *AuthService) logTokenError(err error, u *entity.User, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.UserID).Error(msg)
	}
}

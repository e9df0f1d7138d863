package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"skytails/internal/auth"
	apperrors "skytails/internal/errors"
	"skytails/internal/model"
	"skytails/internal/repository"
)

// AuthService authenticates credentials and guards protected reads.
type AuthService interface {
	Login(ctx context.Context, username, password string) (user *model.User, sessionToken string, err error)
	ResolveToken(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo repository.UserRepository
	sessions auth.SessionStoreInterface
	tokens   *auth.TokenService
}

var _ auth.IdentityResolver = (AuthService)(nil)

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sessions auth.SessionStoreInterface, tokens *auth.TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Login verifies the credentials and establishes a session. Unknown user,
// missing password hash, and wrong password all report the same generic
// error so callers cannot enumerate accounts.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if user.PasswordHash == "" {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	sessionID, err := s.sessions.Create(ctx, user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("create session: %w", err)
	}
	token, err := s.tokens.Mint(sessionID, user.ID, user.Username)
	if err != nil {
		return nil, "", fmt.Errorf("mint session token: %w", err)
	}

	return user, token, nil
}

// ResolveToken turns a cookie token into a User. The Redis session record is
// authoritative: a signature-valid token whose session was destroyed resolves
// to nothing.
func (s *authService) ResolveToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}
	data, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if data.UserID != claims.UserID {
		return nil, auth.ErrSessionNotFound
	}
	return s.userRepo.FindByID(ctx, data.UserID)
}

// Logout destroys the session behind the token. Idempotent: an invalid or
// already-expired token is not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}

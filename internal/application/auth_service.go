package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-blog-api/internal/domain/entity"
	repo "github.com/oksasatya/go-blog-api/internal/domain/repository"
	"github.com/oksasatya/go-blog-api/pkg/helpers"
	"github.com/oksasatya/go-blog-api/pkg/mailer"
)

var (
	// ErrInvalidCredentials merges "unknown email" and "wrong password" so the
	// login endpoint cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated merges every bearer-token failure (missing, invalid,
	// expired, malformed, deleted user) into one terminal answer.
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrUserNotFound    = errors.New("user not found")
)

// AuthService implements registration, login and per-request authentication.
// Tokens are stateless; the only persisted state is the user record.
type AuthService struct {
	Users       repo.UserRepository
	JWT         *helpers.TokenManager
	Logger      *logrus.Logger
	Pub         *helpers.RabbitPublisher
	MailEnabled bool
}

func NewAuthService(users repo.UserRepository, jwt *helpers.TokenManager, logger *logrus.Logger, pub *helpers.RabbitPublisher, mailEnabled bool) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger, Pub: pub, MailEnabled: mailEnabled}
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// NormalizeEmail lowercases and trims an email address. Storage enforces
// uniqueness on lower(email) as a backstop.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and signs them in. Fails with
// repository.ErrDuplicateEmail when the email is already registered.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Email:        NormalizeEmail(email),
		Name:         name,
		PasswordHash: hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}

	s.enqueueWelcome(ctx, u)

	return &AuthResult{User: u, Token: token, ExpiresAt: exp}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)

	cred, err := s.Users.CredentialByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(cred.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	u, err := s.Users.GetByID(ctx, cred.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, err
	}

	return &AuthResult{User: u, Token: token, ExpiresAt: exp}, nil
}

// Authenticate resolves a bearer token to the user it identifies. Every
// failure kind collapses into ErrUnauthenticated: callers must not be able
// to distinguish an expired token from a forged one, and a valid token for
// a deleted account is just as dead.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.Parse(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return u, nil
}

// GetUser returns a user by id without the password hash.
func (s *AuthService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// ListUsers returns all users without password hashes.
func (s *AuthService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.Users.List(ctx)
}

func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil || !s.MailEnabled {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: mailer.TemplateWelcome,
		Data:     map[string]any{"Name": u.Name, "Email": u.Email},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("welcome email enqueue failed")
	}
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/shoply/storefront-api/internal/core/domain"
	"github.com/shoply/storefront-api/internal/core/ports"
)

const (
	defaultLogo         = "default.jpg"
	defaultPlace        = "unspecified"
	verificationPathFmt = "%s/verification?token=%s"
)

// MailDispatcher enqueues outbound verification emails. Enqueue must not
// block; delivery outcome never influences the registration result.
type MailDispatcher interface {
	Enqueue(msg ports.VerificationEmail)
}

// AuthService implements registration, token issuance, bearer resolution
// and email-verification consumption.
type AuthService struct {
	users      ports.UserRepository
	businesses ports.BusinessRepository
	codec      *TokenCodec
	mail       MailDispatcher
	baseURL    string
	logger     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	businesses ports.BusinessRepository,
	codec *TokenCodec,
	mail MailDispatcher,
	baseURL string,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:      users,
		businesses: businesses,
		codec:      codec,
		mail:       mail,
		baseURL:    baseURL,
		logger:     logger,
	}
}

// Register creates the user and its business as one synchronous unit, then
// hands the verification email to the mail dispatcher. Mail delivery is
// fire-and-forget: a down SMTP server never fails a registration.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		JoinedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	// Every account owns exactly one business, created here rather than
	// lazily so the 1:1 invariant holds from the first moment.
	if _, err := s.businesses.Create(ctx, &domain.Business{
		OwnerID:   created.ID,
		Name:      created.Username,
		City:      defaultPlace,
		Region:    defaultPlace,
		Logo:      defaultLogo,
		CreatedAt: now,
	}); err != nil {
		return nil, fmt.Errorf("create business: %w", err)
	}

	token, err := s.codec.Issue(created.ID, created.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", created.Username).Msg("failed to issue verification token")
	} else {
		s.mail.Enqueue(ports.VerificationEmail{
			To:        created.Email,
			Username:  created.Username,
			VerifyURL: fmt.Sprintf(verificationPathFmt, s.baseURL, token),
		})
	}

	s.logger.Info().Str("username", created.Username).Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// IssueAccessToken authenticates the credentials and returns a signed
// bearer token on success.
func (s *AuthService) IssueAccessToken(ctx context.Context, username, password string) (string, error) {
	user, err := s.authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.codec.Issue(user.ID, user.Username)
}

// authenticate validates username/password against the stored hash. An
// unknown username and a wrong password are indistinguishable on purpose.
func (s *AuthService) authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !CheckPassword(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// Resolve maps a presented bearer token to the user it identifies. A bad
// token and a token referencing a missing user yield the same rejection,
// so callers cannot probe which one occurred.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := s.users.FindByID(ctx, claims.ID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// VerifyEmail consumes a verification token and flips the account to
// verified. The transition is terminal: presenting a token for an already
// verified account is rejected, not treated as a no-op.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (*domain.User, error) {
	user, err := s.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if user.IsVerified {
		return nil, domain.ErrUnauthorized
	}
	if err := s.users.SetVerified(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("verify email: %w", err)
	}
	user.IsVerified = true

	s.logger.Info().Str("username", user.Username).Str("user_id", user.ID).Msg("email verified")
	return user, nil
}

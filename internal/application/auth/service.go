package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JulioZittei/guestify-app-server/internal/domain"
	"github.com/JulioZittei/guestify-app-server/internal/pkg/password"
)

// AuthToken carries the signed bearer token issued on authentication.
type AuthToken struct {
	Token string `json:"token"`
}

type Service interface {
	// Authenticate checks credentials and issues a signed token. A missing
	// account and a password mismatch yield the same unauthorized error so
	// responses don't reveal which emails are registered.
	Authenticate(ctx context.Context, email, plainPassword string) (domain.Result[*AuthToken], error)
}

type accountStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}

type tokenSigner interface {
	Sign(sub string) (string, error)
}

type service struct {
	repo   accountStore
	signer tokenSigner
}

type ServiceDeps struct {
	AccountRepo accountStore
	TokenSigner tokenSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.AccountRepo, signer: deps.TokenSigner}
}

func (s *service) Authenticate(ctx context.Context, email, plainPassword string) (domain.Result[*AuthToken], error) {
	slog.Info("authenticating account", "email", email)
	acc, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return domain.Result[*AuthToken]{}, fmt.Errorf("find account: %w", err)
	}
	if acc == nil {
		slog.Warn("account not found", "email", email)
		return domain.Failure[*AuthToken](domain.ErrUnauthorized()), nil
	}
	if !password.Compare(plainPassword, acc.PasswordHash) {
		slog.Warn("password does not match", "email", email)
		return domain.Failure[*AuthToken](domain.ErrUnauthorized()), nil
	}
	// Checked only after the password is confirmed correct.
	if acc.Status == domain.StatusAwaitingValidation {
		slog.Warn("email confirmation pending", "email", email)
		return domain.Failure[*AuthToken](domain.ErrEmailConfirmationPending()), nil
	}

	token, err := s.signer.Sign(acc.ID)
	if err != nil {
		return domain.Result[*AuthToken]{}, fmt.Errorf("sign token: %w", err)
	}
	slog.Info("account authenticated", "email", email)
	return domain.Success(&AuthToken{Token: token}), nil
}

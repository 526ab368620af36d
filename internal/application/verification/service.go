package verification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/JulioZittei/guestify-app-server/internal/domain"
	"github.com/JulioZittei/guestify-app-server/internal/infrastructure/smtp"
	"github.com/JulioZittei/guestify-app-server/internal/pkg/cache"
	"github.com/JulioZittei/guestify-app-server/internal/pkg/code"
	"github.com/JulioZittei/guestify-app-server/internal/pkg/mailtemplate"
)

const (
	codeDigits  = 6
	mailSubject = "Confirmação de Cadastro"
)

type Service interface {
	// Resend re-sends the pending verification code for email. A still-cached
	// code is reused as-is (no regeneration, no TTL refresh); an expired one
	// is regenerated.
	Resend(ctx context.Context, email string) (domain.Result[bool], error)
	// Validate consumes a submitted code and, on exact match, advances the
	// account to EMAIL_VALIDATED. The checks run in a fixed order so the
	// status guard wins over code freshness.
	Validate(ctx context.Context, email, submittedCode string) (domain.Result[bool], error)
}

type accountStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) (*domain.Account, error)
}

type service struct {
	repo    accountStore
	mailer  smtp.Mailer
	cache   cache.Cache
	codeTTL time.Duration
}

type ServiceDeps struct {
	AccountRepo accountStore
	Mailer      smtp.Mailer
	Cache       cache.Cache
	CodeTTL     time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:    deps.AccountRepo,
		mailer:  deps.Mailer,
		cache:   deps.Cache,
		codeTTL: deps.CodeTTL,
	}
}

func (s *service) Resend(ctx context.Context, email string) (domain.Result[bool], error) {
	slog.Info("verifying if account exists", "email", email)
	acc, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return domain.Result[bool]{}, fmt.Errorf("find account: %w", err)
	}
	if acc == nil {
		slog.Warn("account not found", "email", email)
		return domain.Failure[bool](domain.ErrAccountNotFound(email)), nil
	}
	if acc.Status != domain.StatusAwaitingValidation {
		slog.Warn("validation step already done", "email", email)
		return domain.Failure[bool](domain.ErrStepDone()), nil
	}

	// Reuse a still-valid code so a user mid-entry isn't invalidated;
	// regenerate only on true expiry.
	codeToSend, ok := s.cache.Get(email)
	if !ok {
		codeToSend, err = code.Numeric(codeDigits)
		if err != nil {
			return domain.Result[bool]{}, err
		}
		s.cache.Set(email, codeToSend, s.codeTTL)
	}

	body, err := mailtemplate.EmailValidation(mailtemplate.EmailValidationData{
		Name:  acc.Name,
		Email: acc.Email,
		Code:  codeToSend,
	})
	if err != nil {
		return domain.Result[bool]{}, err
	}
	if err := s.mailer.SendEmail(acc.Email, mailSubject, body); err != nil {
		return domain.Result[bool]{}, fmt.Errorf("send verification email: %w", err)
	}

	slog.Info("verification code re-sent", "email", email)
	return domain.Success(true), nil
}

func (s *service) Validate(ctx context.Context, email, submittedCode string) (domain.Result[bool], error) {
	slog.Info("verifying if account exists", "email", email)
	acc, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return domain.Result[bool]{}, fmt.Errorf("find account: %w", err)
	}
	if acc == nil {
		slog.Warn("account not found", "email", email)
		return domain.Failure[bool](domain.ErrAccountNotFound(email)), nil
	}
	if acc.Status != domain.StatusAwaitingValidation {
		slog.Warn("validation step already done", "email", email)
		return domain.Failure[bool](domain.ErrStepDone()), nil
	}

	cachedCode, ok := s.cache.Get(email)
	if !ok {
		slog.Warn("verification code expired", "email", email)
		return domain.Failure[bool](domain.ErrExpiredCode()), nil
	}
	// Exact string comparison: no trimming, no numeric coercion.
	if cachedCode != submittedCode {
		slog.Warn("verification code invalid", "email", email)
		return domain.Failure[bool](domain.ErrInvalidCode(submittedCode)), nil
	}

	slog.Info("updating account status", "email", email)
	validated := acc.WithStatus(domain.StatusEmailValidated, time.Now().UTC())
	if _, err := s.repo.Update(ctx, &validated); err != nil {
		return domain.Result[bool]{}, fmt.Errorf("update account status: %w", err)
	}
	// The cached code is left to expire on its own; the status guard above
	// prevents re-validation.
	return domain.Success(true), nil
}

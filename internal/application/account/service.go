package account

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
	"github.com/JulioZittei/guestify-app-server/internal/pkg/password"
)

const (
	codeDigits  = 6
	mailSubject = "Confirmação de Cadastro"
)

type Service interface {
	// Register creates an account in AWAITING_VALIDATION, caches a fresh
	// verification code under the account email and emails it best-effort.
	Register(ctx context.Context, req domain.RegisterAccountRequest) (domain.Result[*domain.Account], error)
	// GetInfo returns the account identified by accountID.
	GetInfo(ctx context.Context, accountID string) (domain.Result[*domain.Account], error)
}

type accountStore interface {
	Exists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	Get(ctx context.Context, accountID string) (*domain.Account, error)
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

func (s *service) Register(ctx context.Context, req domain.RegisterAccountRequest) (domain.Result[*domain.Account], error) {
	slog.Info("verifying if account exists", "email", req.Email)
	exists, err := s.repo.Exists(ctx, req.Email)
	if err != nil {
		return domain.Result[*domain.Account]{}, fmt.Errorf("check account existence: %w", err)
	}
	if exists {
		slog.Warn("account already exists", "email", req.Email)
		return domain.Failure[*domain.Account](domain.ErrAccountAlreadyExists(req.Email)), nil
	}

	hash, err := password.Hash(req.Password)
	if err != nil {
		return domain.Result[*domain.Account]{}, fmt.Errorf("hash password: %w", err)
	}

	slog.Info("registering account", "email", req.Email)
	created, err := s.repo.Create(ctx, &domain.Account{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Status:       domain.StatusAwaitingValidation,
	})
	if err != nil {
		return domain.Result[*domain.Account]{}, fmt.Errorf("create account: %w", err)
	}

	verificationCode, err := code.Numeric(codeDigits)
	if err != nil {
		return domain.Result[*domain.Account]{}, err
	}
	s.cache.Set(created.Email, verificationCode, s.codeTTL)

	// Best-effort: a mail failure does not roll back the registration.
	if err := s.sendCode(created, verificationCode); err != nil {
		slog.Warn("verification email not sent", "email", created.Email, "err", err)
	}

	slog.Info("account registered", "email", created.Email)
	return domain.Success(created), nil
}

func (s *service) GetInfo(ctx context.Context, accountID string) (domain.Result[*domain.Account], error) {
	a, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return domain.Result[*domain.Account]{}, fmt.Errorf("get account: %w", err)
	}
	if a == nil {
		return domain.Failure[*domain.Account](domain.ErrAccountNotFound(accountID)), nil
	}
	return domain.Success(a), nil
}

func (s *service) sendCode(a *domain.Account, verificationCode string) error {
	body, err := mailtemplate.EmailValidation(mailtemplate.EmailValidationData{
		Name:  a.Name,
		Email: a.Email,
		Code:  verificationCode,
	})
	if err != nil {
		return err
	}
	return s.mailer.SendEmail(a.Email, mailSubject, body)
}

package http

import (
	"context"

	"github.com/JulioZittei/guestify-app-server/internal/domain"
)

// AccountRepository is the minimal interface the router requires from the
// account store. Lookup methods return (nil, nil) when no account matches.
type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) (*domain.Account, error)
	Update(ctx context.Context, a *domain.Account) (*domain.Account, error)
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Exists(ctx context.Context, email string) (bool, error)
}

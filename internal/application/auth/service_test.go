package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/JulioZittei/guestify-app-server/internal/domain"
	"github.com/JulioZittei/guestify-app-server/internal/pkg/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockAccountStore struct{ mock.Mock }

func (m *mockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if acc, _ := args.Get(0).(*domain.Account); acc != nil {
		return acc, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSigner struct{ mock.Mock }

func (m *mockSigner) Sign(sub string) (string, error) {
	args := m.Called(sub)
	return args.String(0), args.Error(1)
}

// --- helpers ---

func validatedAccount(t *testing.T) *domain.Account {
	t.Helper()
	hash, err := password.Hash("12345")
	require.NoError(t, err)
	return &domain.Account{
		ID:           "acc-1",
		Email:        "john@mail.com",
		PasswordHash: hash,
		Status:       domain.StatusEmailValidated,
	}
}

// --- Authenticate ---

func TestAuthenticate_HappyPath(t *testing.T) {
	repo := &mockAccountStore{}
	signer := &mockSigner{}

	repo.On("GetByEmail", mock.Anything, "john@mail.com").Return(validatedAccount(t), nil)
	signer.On("Sign", "acc-1").Return("signed-token", nil)

	svc := NewService(ServiceDeps{AccountRepo: repo, TokenSigner: signer})
	res, err := svc.Authenticate(context.Background(), "john@mail.com", "12345")

	require.NoError(t, err)
	require.False(t, res.IsFailure())
	assert.Equal(t, "signed-token", res.Value().Token)
	signer.AssertExpectations(t)
}

// A missing account answers exactly like a bad password.
func TestAuthenticate_UnknownEmail(t *testing.T) {
	repo := &mockAccountStore{}
	repo.On("GetByEmail", mock.Anything, "john@mail.com").Return(nil, nil)

	svc := NewService(ServiceDeps{AccountRepo: repo, TokenSigner: &mockSigner{}})
	res, err := svc.Authenticate(context.Background(), "john@mail.com", "12345")

	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, domain.CodeUnauthorized, res.Err().Code)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	repo := &mockAccountStore{}
	repo.On("GetByEmail", mock.Anything, "john@mail.com").Return(validatedAccount(t), nil)

	svc := NewService(ServiceDeps{AccountRepo: repo, TokenSigner: &mockSigner{}})
	res, err := svc.Authenticate(context.Background(), "john@mail.com", "wrong")

	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, domain.CodeUnauthorized, res.Err().Code)
}

func TestAuthenticate_ConfirmationPending(t *testing.T) {
	repo := &mockAccountStore{}
	acc := validatedAccount(t)
	acc.Status = domain.StatusAwaitingValidation
	repo.On("GetByEmail", mock.Anything, "john@mail.com").Return(acc, nil)

	svc := NewService(ServiceDeps{AccountRepo: repo, TokenSigner: &mockSigner{}})
	res, err := svc.Authenticate(context.Background(), "john@mail.com", "12345")

	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, domain.CodeEmailConfirmationPending, res.Err().Code)
}

// The pending-confirmation check runs only after the password is confirmed:
// wrong credentials on a pending account still answer unauthorized.
func TestAuthenticate_PendingWithWrongPasswordIsUnauthorized(t *testing.T) {
	repo := &mockAccountStore{}
	acc := validatedAccount(t)
	acc.Status = domain.StatusAwaitingValidation
	repo.On("GetByEmail", mock.Anything, "john@mail.com").Return(acc, nil)

	svc := NewService(ServiceDeps{AccountRepo: repo, TokenSigner: &mockSigner{}})
	res, err := svc.Authenticate(context.Background(), "john@mail.com", "wrong")

	require.NoError(t, err)
	require.True(t, res.IsFailure())
	assert.Equal(t, domain.CodeUnauthorized, res.Err().Code)
}

func TestAuthenticate_RepoFaultPropagates(t *testing.T) {
	repo := &mockAccountStore{}
	storeErr := errors.New("dynamo unavailable")
	repo.On("GetByEmail", mock.Anything, "john@mail.com").Return(nil, storeErr)

	svc := NewService(ServiceDeps{AccountRepo: repo, TokenSigner: &mockSigner{}})
	_, err := svc.Authenticate(context.Background(), "john@mail.com", "12345")

	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))
}

func TestAuthenticate_SignFaultPropagates(t *testing.T) {
	repo := &mockAccountStore{}
	signer := &mockSigner{}
	repo.On("GetByEmail", mock.Anything, "john@mail.com").Return(validatedAccount(t), nil)
	signErr := errors.New("bad key")
	signer.On("Sign", "acc-1").Return("", signErr)

	svc := NewService(ServiceDeps{AccountRepo: repo, TokenSigner: signer})
	_, err := svc.Authenticate(context.Background(), "john@mail.com", "12345")

	require.Error(t, err)
	assert.True(t, errors.Is(err, signErr))
}

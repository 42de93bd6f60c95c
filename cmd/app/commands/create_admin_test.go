package commands

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rentguard/blacklist/internal/admin/domain"
	adminUsecase "github.com/rentguard/blacklist/internal/admin/usecase"
)

// MockAdminUseCase mocks the admin use case
type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) CreateAdmin(ctx context.Context, input adminUsecase.CreateAdminInput) (*domain.Admin, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminUseCase) GetAdmin(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminUseCase) GetAdminByExternalID(ctx context.Context, externalID int64) (*domain.Admin, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}

func (m *MockAdminUseCase) AssignToOrganization(ctx context.Context, adminID uuid.UUID, organizationID int64) error {
	args := m.Called(ctx, adminID, organizationID)
	return args.Error(0)
}

func (m *MockAdminUseCase) OrganizationIDs(ctx context.Context, adminID uuid.UUID) ([]int64, error) {
	args := m.Called(ctx, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func TestRunCreateAdmin(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		useCase := new(MockAdminUseCase)
		logger := slog.New(slog.DiscardHandler)
		io, out := testIO()

		admin := domain.NewAdmin(42, domain.RoleManager)

		useCase.On("CreateAdmin", mock.Anything, adminUsecase.CreateAdminInput{
			ExternalID: 42,
			Role:       "manager",
		}).Return(admin, nil)

		err := RunCreateAdmin(context.Background(), useCase, logger, 42, "manager", "text", io)
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, "Admin created")
		assert.Contains(t, output, admin.ID.String())
		assert.Contains(t, output, "manager")
	})

	t.Run("use case error", func(t *testing.T) {
		useCase := new(MockAdminUseCase)
		logger := slog.New(slog.DiscardHandler)
		io, _ := testIO()

		useCase.On("CreateAdmin", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		err := RunCreateAdmin(context.Background(), useCase, logger, 42, "owner", "text", io)
		assert.Error(t, err)
	})
}

package usecase

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adminDomain "github.com/rentguard/blacklist/internal/admin/domain"
	"github.com/rentguard/blacklist/internal/blacklist/domain"
	"github.com/rentguard/blacklist/internal/blacklist/service"
	apperrors "github.com/rentguard/blacklist/internal/errors"
	orgDomain "github.com/rentguard/blacklist/internal/organization/domain"
)

// MockTxManager mocks database.TxManager. When no error is configured the
// callback runs, so repository expectations inside the transaction still fire.
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// MockEntryRepository mocks EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ListByIdentity(ctx context.Context, identityID uuid.UUID) ([]*domain.Entry, error) {
	args := m.Called(ctx, identityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) ActiveByIdentity(ctx context.Context, identityID uuid.UUID) ([]*domain.Entry, error) {
	args := m.Called(ctx, identityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Entry), args.Error(1)
}

func (m *MockEntryRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateReason(ctx context.Context, id uuid.UUID, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

// MockHistoryRepository mocks HistoryRepository
type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) Append(ctx context.Context, event *domain.HistoryEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByEntry(ctx context.Context, entryID uuid.UUID) ([]*domain.HistoryEvent, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.HistoryEvent), args.Error(1)
}

// MockAdminRepository mocks the admin repository subset used here
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*adminDomain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*adminDomain.Admin), args.Error(1)
}

type useCaseFixture struct {
	useCase     UseCase
	txManager   *MockTxManager
	store       *fakeIdentityStore
	orgs        *fakeOrgStore
	entryRepo   *MockEntryRepository
	historyRepo *MockHistoryRepository
	adminRepo   *MockAdminRepository
	hasher      *service.Hasher
	signer      *service.HistorySigner
}

func newUseCaseFixture(t *testing.T, orgs ...*orgDomain.Organization) *useCaseFixture {
	t.Helper()

	hasher := service.NewHasher(matcherTestPepper)
	signer, err := service.NewHistorySigner(matcherTestPepper)
	require.NoError(t, err)

	store := &fakeIdentityStore{}
	orgStore := &fakeOrgStore{orgs: orgs}
	txManager := new(MockTxManager)
	entryRepo := new(MockEntryRepository)
	historyRepo := new(MockHistoryRepository)
	adminRepo := new(MockAdminRepository)
	logger := slog.New(slog.DiscardHandler)

	matcher := NewMatcher(hasher, store, orgStore, logger)
	useCase := NewBlacklistUseCase(
		txManager, matcher, hasher, signer,
		store, entryRepo, historyRepo, orgStore, adminRepo,
		logger,
	)

	return &useCaseFixture{
		useCase:     useCase,
		txManager:   txManager,
		store:       store,
		orgs:        orgStore,
		entryRepo:   entryRepo,
		historyRepo: historyRepo,
		adminRepo:   adminRepo,
		hasher:      hasher,
		signer:      signer,
	}
}

func (f *useCaseFixture) expectTx(ctx context.Context) {
	f.txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
}

func testAddInput() AddInput {
	return AddInput{
		OrganizationID: 1,
		AdminID:        uuid.Must(uuid.NewV7()),
		Data:           testPerson(),
		Reason:         "property damage and unpaid rent",
		Comment:        "reported after eviction",
	}
}

func TestBlacklistUseCase_Add(t *testing.T) {
	t.Run("creates identity, entry and signed history for a new person", func(t *testing.T) {
		ctx := context.Background()
		fixture := newUseCaseFixture(t, newTestOrg(t, 1, "Acme Rentals"))
		input := testAddInput()

		fixture.expectTx(ctx)
		fixture.entryRepo.On("ActiveByIdentity", ctx, mock.Anything).Return([]*domain.Entry{}, nil)
		fixture.entryRepo.On("Create", ctx, mock.AnythingOfType("*domain.Entry")).Return(nil)

		var appended *domain.HistoryEvent
		fixture.historyRepo.On("Append", ctx, mock.AnythingOfType("*domain.HistoryEvent")).
			Run(func(args mock.Arguments) {
				appended = args.Get(1).(*domain.HistoryEvent)
			}).Return(nil)

		result, err := fixture.useCase.Add(ctx, input)
		require.NoError(t, err)

		assert.False(t, result.AlreadyExisted)
		assert.Equal(t, domain.StatusActive, result.Entry.Status)
		assert.Equal(t, input.Reason, result.Entry.Reason)
		assert.Equal(t, result.Identity.ID, result.Entry.IdentityID)
		require.Len(t, fixture.store.identities, 1)
		assert.Equal(t, int64(1), fixture.store.identities[0].OrganizationID)

		require.NotNil(t, appended)
		assert.Equal(t, domain.ActionAdded, appended.Action)
		assert.Equal(t, result.Entry.ID, appended.EntryID)
		assert.Equal(t, input.Reason, appended.NewReason)
		assert.NoError(t, fixture.signer.Verify(appended))
	})

	t.Run("reuses an identity reported by another organization", func(t *testing.T) {
		ctx := context.Background()
		org1 := newTestOrg(t, 1, "Acme Rentals")
		org2 := newTestOrg(t, 2, "Globex Housing")
		fixture := newUseCaseFixture(t, org1, org2)

		// Globex already reported the person under its own salt.
		existing := storeIdentity(t, fixture.store, fixture.hasher, org2, testPerson())

		fixture.expectTx(ctx)
		fixture.entryRepo.On("ActiveByIdentity", ctx, existing.ID).Return([]*domain.Entry{}, nil)
		fixture.entryRepo.On("Create", ctx, mock.AnythingOfType("*domain.Entry")).Return(nil)
		fixture.historyRepo.On("Append", ctx, mock.AnythingOfType("*domain.HistoryEvent")).Return(nil)

		result, err := fixture.useCase.Add(ctx, testAddInput())
		require.NoError(t, err)

		assert.Equal(t, existing.ID, result.Identity.ID)
		assert.Len(t, fixture.store.identities, 1)
		assert.Equal(t, int64(1), result.Entry.OrganizationID)
	})

	t.Run("reports an existing active entry without blocking the add", func(t *testing.T) {
		ctx := context.Background()
		org := newTestOrg(t, 1, "Acme Rentals")
		fixture := newUseCaseFixture(t, org)

		existing := storeIdentity(t, fixture.store, fixture.hasher, org, testPerson())
		activeEntry := domain.NewEntry(existing.ID, org.ID, uuid.Must(uuid.NewV7()), "earlier report", "")

		fixture.expectTx(ctx)
		fixture.entryRepo.On("ActiveByIdentity", ctx, existing.ID).Return([]*domain.Entry{activeEntry}, nil)
		fixture.entryRepo.On("Create", ctx, mock.AnythingOfType("*domain.Entry")).Return(nil)
		fixture.historyRepo.On("Append", ctx, mock.AnythingOfType("*domain.HistoryEvent")).Return(nil)

		result, err := fixture.useCase.Add(ctx, testAddInput())
		require.NoError(t, err)

		assert.True(t, result.AlreadyExisted)
		assert.NotEqual(t, activeEntry.ID, result.Entry.ID)
		fixture.entryRepo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("retries once when a concurrent add wins the identity race", func(t *testing.T) {
		ctx := context.Background()
		org := newTestOrg(t, 1, "Acme Rentals")
		fixture := newUseCaseFixture(t, org)

		// First Create collides; by then the concurrent writer's identity is
		// visible and the retry resolves it.
		racing := &racingIdentityStore{
			fakeIdentityStore: fixture.store,
			t:                 t,
			hasher:            fixture.hasher,
			org:               org,
		}
		matcher := NewMatcher(fixture.hasher, racing, fixture.orgs, slog.New(slog.DiscardHandler))
		fixture.useCase = NewBlacklistUseCase(
			fixture.txManager, matcher, fixture.hasher, fixture.signer,
			racing, fixture.entryRepo, fixture.historyRepo, fixture.orgs, fixture.adminRepo,
			slog.New(slog.DiscardHandler),
		)

		fixture.expectTx(ctx)
		fixture.entryRepo.On("ActiveByIdentity", ctx, mock.Anything).Return([]*domain.Entry{}, nil)
		fixture.entryRepo.On("Create", ctx, mock.AnythingOfType("*domain.Entry")).Return(nil)
		fixture.historyRepo.On("Append", ctx, mock.AnythingOfType("*domain.HistoryEvent")).Return(nil)

		result, err := fixture.useCase.Add(ctx, testAddInput())
		require.NoError(t, err)

		require.Len(t, fixture.store.identities, 1)
		assert.Equal(t, fixture.store.identities[0].ID, result.Identity.ID)
		assert.True(t, racing.collided)
		fixture.entryRepo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("rejects invalid personal data before touching storage", func(t *testing.T) {
		ctx := context.Background()
		fixture := newUseCaseFixture(t, newTestOrg(t, 1, "Acme Rentals"))

		input := testAddInput()
		input.Data.Passport = "12"

		_, err := fixture.useCase.Add(ctx, input)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		fixture.txManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
	})

	t.Run("unknown organization", func(t *testing.T) {
		ctx := context.Background()
		fixture := newUseCaseFixture(t)

		_, err := fixture.useCase.Add(ctx, testAddInput())
		assert.True(t, apperrors.Is(err, orgDomain.ErrOrganizationNotFound))
	})
}

// racingIdentityStore fails the first Create with an identity conflict after
// inserting the concurrent writer's row, simulating a lost unique-index race.
type racingIdentityStore struct {
	*fakeIdentityStore
	t        *testing.T
	hasher   *service.Hasher
	org      *orgDomain.Organization
	collided bool
}

func (s *racingIdentityStore) Create(ctx context.Context, identity *domain.Identity) error {
	if !s.collided {
		s.collided = true
		storeIdentity(s.t, s.fakeIdentityStore, s.hasher, s.org, testPerson())
		return domain.ErrIdentityExists
	}
	return s.fakeIdentityStore.Create(ctx, identity)
}

func TestBlacklistUseCase_Search(t *testing.T) {
	t.Run("returns entry rows without salts or digests", func(t *testing.T) {
		ctx := context.Background()
		org := newTestOrg(t, 1, "Acme Rentals")
		fixture := newUseCaseFixture(t, org)

		identity := storeIdentity(t, fixture.store, fixture.hasher, org, testPerson())
		admin := adminDomain.NewAdmin(42, adminDomain.RoleManager)
		entry := domain.NewEntry(identity.ID, org.ID, admin.ID, "unpaid rent", "three months")

		fixture.entryRepo.On("ListByIdentity", ctx, identity.ID).Return([]*domain.Entry{entry}, nil)
		fixture.adminRepo.On("GetByID", ctx, admin.ID).Return(admin, nil)

		rows, err := fixture.useCase.Search(ctx, domain.SearchCriteria{
			Passport:  "4509123456",
			Birthdate: "01.12.1990",
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)

		row := rows[0]
		assert.Equal(t, identity.ID, row.IdentityID)
		assert.Equal(t, entry.ID, row.EntryID)
		assert.Equal(t, "Acme Rentals", row.OrganizationName)
		assert.Equal(t, int64(42), row.AdminExternalID)
		assert.Equal(t, "unpaid rent", row.Reason)
		assert.Equal(t, domain.StatusActive, row.Status)
		assert.ElementsMatch(t, []string{domain.FieldPassport, domain.FieldBirthdate}, row.MatchedFields)
	})

	t.Run("rows ordered by entry creation time", func(t *testing.T) {
		ctx := context.Background()
		org := newTestOrg(t, 1, "Acme Rentals")
		fixture := newUseCaseFixture(t, org)

		identity := storeIdentity(t, fixture.store, fixture.hasher, org, testPerson())
		admin := adminDomain.NewAdmin(42, adminDomain.RoleManager)

		older := domain.NewEntry(identity.ID, org.ID, admin.ID, "first report", "")
		older.Created = time.Now().UTC().Add(-time.Hour)
		newer := domain.NewEntry(identity.ID, org.ID, admin.ID, "second report", "")

		fixture.entryRepo.On("ListByIdentity", ctx, identity.ID).Return([]*domain.Entry{newer, older}, nil)
		fixture.adminRepo.On("GetByID", ctx, admin.ID).Return(admin, nil)

		rows, err := fixture.useCase.Search(ctx, domain.SearchCriteria{
			Passport:  "4509123456",
			Birthdate: "01.12.1990",
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, older.ID, rows[0].EntryID)
		assert.Equal(t, newer.ID, rows[1].EntryID)
	})

	t.Run("empty criteria rejected", func(t *testing.T) {
		fixture := newUseCaseFixture(t)

		_, err := fixture.useCase.Search(context.Background(), domain.SearchCriteria{})
		assert.ErrorIs(t, err, domain.ErrNoCriteria)
	})
}

func TestBlacklistUseCase_SearchForOrganizations(t *testing.T) {
	t.Run("filters entries to the allowed organizations", func(t *testing.T) {
		ctx := context.Background()
		org1 := newTestOrg(t, 1, "Acme Rentals")
		org2 := newTestOrg(t, 2, "Globex Housing")
		fixture := newUseCaseFixture(t, org1, org2)

		identity := storeIdentity(t, fixture.store, fixture.hasher, org1, testPerson())
		admin := adminDomain.NewAdmin(42, adminDomain.RoleManager)
		fromOrg1 := domain.NewEntry(identity.ID, org1.ID, admin.ID, "unpaid rent", "")
		fromOrg2 := domain.NewEntry(identity.ID, org2.ID, admin.ID, "property damage", "")

		fixture.entryRepo.On("ListByIdentity", ctx, identity.ID).Return([]*domain.Entry{fromOrg1, fromOrg2}, nil)
		fixture.adminRepo.On("GetByID", ctx, admin.ID).Return(admin, nil)

		rows, err := fixture.useCase.SearchForOrganizations(ctx, []int64{2}, domain.SearchCriteria{
			Passport:  "4509123456",
			Birthdate: "01.12.1990",
		})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, fromOrg2.ID, rows[0].EntryID)
		assert.Equal(t, int64(2), rows[0].OrganizationID)
	})
}

func TestBlacklistUseCase_Deactivate(t *testing.T) {
	t.Run("deactivates an active entry and records the transition", func(t *testing.T) {
		ctx := context.Background()
		fixture := newUseCaseFixture(t)

		adminID := uuid.Must(uuid.NewV7())
		entry := domain.NewEntry(uuid.Must(uuid.NewV7()), 1, adminID, "unpaid rent", "")

		fixture.expectTx(ctx)
		fixture.entryRepo.On("GetByID", ctx, entry.ID).Return(entry, nil)
		fixture.entryRepo.On("UpdateStatus", ctx, entry.ID, domain.StatusInactive).Return(nil)

		var appended *domain.HistoryEvent
		fixture.historyRepo.On("Append", ctx, mock.AnythingOfType("*domain.HistoryEvent")).
			Run(func(args mock.Arguments) {
				appended = args.Get(1).(*domain.HistoryEvent)
			}).Return(nil)

		err := fixture.useCase.Deactivate(ctx, entry.ID, adminID, "tenant settled the debt")
		require.NoError(t, err)

		require.NotNil(t, appended)
		assert.Equal(t, domain.ActionDeactivated, appended.Action)
		assert.Equal(t, domain.StatusActive, appended.OldStatus)
		assert.Equal(t, domain.StatusInactive, appended.NewStatus)
		assert.NoError(t, fixture.signer.Verify(appended))
	})

	t.Run("already inactive entry rejected without history", func(t *testing.T) {
		ctx := context.Background()
		fixture := newUseCaseFixture(t)

		entry := domain.NewEntry(uuid.Must(uuid.NewV7()), 1, uuid.Must(uuid.NewV7()), "unpaid rent", "")
		entry.Status = domain.StatusInactive

		fixture.expectTx(ctx)
		fixture.entryRepo.On("GetByID", ctx, entry.ID).Return(entry, nil)

		err := fixture.useCase.Deactivate(ctx, entry.ID, uuid.Must(uuid.NewV7()), "")
		assert.ErrorIs(t, err, domain.ErrEntryNotActive)
		fixture.entryRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		fixture.historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})

	t.Run("unknown entry", func(t *testing.T) {
		ctx := context.Background()
		fixture := newUseCaseFixture(t)

		entryID := uuid.Must(uuid.NewV7())
		fixture.expectTx(ctx)
		fixture.entryRepo.On("GetByID", ctx, entryID).Return(nil, domain.ErrEntryNotFound)

		err := fixture.useCase.Deactivate(ctx, entryID, uuid.Must(uuid.NewV7()), "")
		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
	})
}

func TestBlacklistUseCase_Reactivate(t *testing.T) {
	t.Run("reactivates an inactive entry and records the transition", func(t *testing.T) {
		ctx := context.Background()
		fixture := newUseCaseFixture(t)

		adminID := uuid.Must(uuid.NewV7())
		entry := domain.NewEntry(uuid.Must(uuid.NewV7()), 1, adminID, "unpaid rent", "")
		entry.Status = domain.StatusInactive

		fixture.expectTx(ctx)
		fixture.entryRepo.On("GetByID", ctx, entry.ID).Return(entry, nil)
		fixture.entryRepo.On("UpdateStatus", ctx, entry.ID, domain.StatusActive).Return(nil)

		var appended *domain.HistoryEvent
		fixture.historyRepo.On("Append", ctx, mock.AnythingOfType("*domain.HistoryEvent")).
			Run(func(args mock.Arguments) {
				appended = args.Get(1).(*domain.HistoryEvent)
			}).Return(nil)

		err := fixture.useCase.Reactivate(ctx, entry.ID, adminID, "debt unpaid again")
		require.NoError(t, err)

		require.NotNil(t, appended)
		assert.Equal(t, domain.ActionReactivated, appended.Action)
		assert.Equal(t, domain.StatusInactive, appended.OldStatus)
		assert.Equal(t, domain.StatusActive, appended.NewStatus)
		assert.NoError(t, fixture.signer.Verify(appended))
	})

	t.Run("already active entry rejected without history", func(t *testing.T) {
		ctx := context.Background()
		fixture := newUseCaseFixture(t)

		entry := domain.NewEntry(uuid.Must(uuid.NewV7()), 1, uuid.Must(uuid.NewV7()), "unpaid rent", "")

		fixture.expectTx(ctx)
		fixture.entryRepo.On("GetByID", ctx, entry.ID).Return(entry, nil)

		err := fixture.useCase.Reactivate(ctx, entry.ID, uuid.Must(uuid.NewV7()), "")
		assert.ErrorIs(t, err, domain.ErrEntryAlreadyActive)
		fixture.entryRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		fixture.historyRepo.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	})
}

func TestBlacklistUseCase_UpdateReason(t *testing.T) {
	t.Run("records old and new reasons", func(t *testing.T) {
		ctx := context.Background()
		fixture := newUseCaseFixture(t)

		adminID := uuid.Must(uuid.NewV7())
		entry := domain.NewEntry(uuid.Must(uuid.NewV7()), 1, adminID, "unpaid rent", "")

		fixture.expectTx(ctx)
		fixture.entryRepo.On("GetByID", ctx, entry.ID).Return(entry, nil)
		fixture.entryRepo.On("UpdateReason", ctx, entry.ID, "unpaid rent and property damage").Return(nil)

		var appended *domain.HistoryEvent
		fixture.historyRepo.On("Append", ctx, mock.AnythingOfType("*domain.HistoryEvent")).
			Run(func(args mock.Arguments) {
				appended = args.Get(1).(*domain.HistoryEvent)
			}).Return(nil)

		err := fixture.useCase.UpdateReason(ctx, entry.ID, adminID, "unpaid rent and property damage", "damage found later")
		require.NoError(t, err)

		require.NotNil(t, appended)
		assert.Equal(t, domain.ActionUpdated, appended.Action)
		assert.Equal(t, "unpaid rent", appended.OldReason)
		assert.Equal(t, "unpaid rent and property damage", appended.NewReason)
		assert.NoError(t, fixture.signer.Verify(appended))
	})

	t.Run("rejects a too short reason", func(t *testing.T) {
		fixture := newUseCaseFixture(t)

		err := fixture.useCase.UpdateReason(context.Background(), uuid.Must(uuid.NewV7()), uuid.Must(uuid.NewV7()), "no", "")
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		fixture.txManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
	})
}

func TestBlacklistUseCase_DeleteIdentity(t *testing.T) {
	t.Run("removes the identity", func(t *testing.T) {
		ctx := context.Background()
		org := newTestOrg(t, 1, "Acme Rentals")
		fixture := newUseCaseFixture(t, org)

		identity := storeIdentity(t, fixture.store, fixture.hasher, org, testPerson())

		require.NoError(t, fixture.useCase.DeleteIdentity(ctx, identity.ID))
		assert.Empty(t, fixture.store.identities)
	})

	t.Run("unknown identity", func(t *testing.T) {
		fixture := newUseCaseFixture(t)

		err := fixture.useCase.DeleteIdentity(context.Background(), uuid.Must(uuid.NewV7()))
		assert.ErrorIs(t, err, domain.ErrIdentityNotFound)
	})
}

func TestBlacklistUseCase_History(t *testing.T) {
	t.Run("returns events for an existing entry", func(t *testing.T) {
		ctx := context.Background()
		fixture := newUseCaseFixture(t)

		entry := domain.NewEntry(uuid.Must(uuid.NewV7()), 1, uuid.Must(uuid.NewV7()), "unpaid rent", "")
		events := []*domain.HistoryEvent{
			{ID: 1, EntryID: entry.ID, Action: domain.ActionAdded},
			{ID: 2, EntryID: entry.ID, Action: domain.ActionDeactivated},
		}

		fixture.entryRepo.On("GetByID", ctx, entry.ID).Return(entry, nil)
		fixture.historyRepo.On("ListByEntry", ctx, entry.ID).Return(events, nil)

		got, err := fixture.useCase.History(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, events, got)
	})

	t.Run("unknown entry", func(t *testing.T) {
		ctx := context.Background()
		fixture := newUseCaseFixture(t)

		entryID := uuid.Must(uuid.NewV7())
		fixture.entryRepo.On("GetByID", ctx, entryID).Return(nil, domain.ErrEntryNotFound)

		_, err := fixture.useCase.History(ctx, entryID)
		assert.ErrorIs(t, err, domain.ErrEntryNotFound)
		fixture.historyRepo.AssertNotCalled(t, "ListByEntry", mock.Anything, mock.Anything)
	})
}

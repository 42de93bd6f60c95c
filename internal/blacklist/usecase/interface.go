// Package usecase implements the blacklist business logic: cross-organization
// identity matching, multi-criteria search and the add/deactivate/reactivate
// workflows.
package usecase

import (
	"context"

	"github.com/google/uuid"

	adminDomain "github.com/rentguard/blacklist/internal/admin/domain"
	"github.com/rentguard/blacklist/internal/blacklist/domain"
	orgDomain "github.com/rentguard/blacklist/internal/organization/domain"
)

// UseCase defines the interface for blacklist business logic operations
type UseCase interface {
	Add(ctx context.Context, input AddInput) (*domain.AddResult, error)
	Search(ctx context.Context, criteria domain.SearchCriteria) ([]*domain.SearchRow, error)
	SearchForOrganizations(ctx context.Context, organizationIDs []int64, criteria domain.SearchCriteria) ([]*domain.SearchRow, error)
	Deactivate(ctx context.Context, entryID, adminID uuid.UUID, comment string) error
	Reactivate(ctx context.Context, entryID, adminID uuid.UUID, comment string) error
	UpdateReason(ctx context.Context, entryID, adminID uuid.UUID, newReason, comment string) error
	History(ctx context.Context, entryID uuid.UUID) ([]*domain.HistoryEvent, error)
	DeleteIdentity(ctx context.Context, identityID uuid.UUID) error
}

// IdentityRepository interface defines identity repository operations
type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.Identity) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Identity, error)
	FindByIdentityKey(ctx context.Context, organizationID int64, fioHash, birthdateHash, passportHash string) (*domain.Identity, error)
	FindByPassportDigest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error)
	FindBySurnameDigest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error)
	FindByPhoneDigest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error)
	FindByPhoneLast10Digest(ctx context.Context, organizationID int64, digest string) ([]*domain.Identity, error)
	FindByPassportDigestGlobal(ctx context.Context, digest string) ([]*domain.Identity, error)
	FindByFIODigestGlobal(ctx context.Context, digest string) ([]*domain.Identity, error)
	DistinctSalts(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// EntryRepository interface defines entry repository operations
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.Entry) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Entry, error)
	ListByIdentity(ctx context.Context, identityID uuid.UUID) ([]*domain.Entry, error)
	ActiveByIdentity(ctx context.Context, identityID uuid.UUID) ([]*domain.Entry, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error
	UpdateReason(ctx context.Context, id uuid.UUID, reason string) error
}

// HistoryRepository interface defines history repository operations
type HistoryRepository interface {
	Append(ctx context.Context, event *domain.HistoryEvent) error
	ListByEntry(ctx context.Context, entryID uuid.UUID) ([]*domain.HistoryEvent, error)
}

// OrganizationRepository is the subset of the organization repository needed here
type OrganizationRepository interface {
	GetByID(ctx context.Context, id int64) (*orgDomain.Organization, error)
	List(ctx context.Context) ([]*orgDomain.Organization, error)
}

// AdminRepository is the subset of the admin repository needed here
type AdminRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*adminDomain.Admin, error)
}

package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	validation "github.com/jellydator/validation"

	"github.com/google/uuid"

	adminDomain "github.com/rentguard/blacklist/internal/admin/domain"
	"github.com/rentguard/blacklist/internal/blacklist/domain"
	"github.com/rentguard/blacklist/internal/blacklist/service"
	"github.com/rentguard/blacklist/internal/database"
	orgDomain "github.com/rentguard/blacklist/internal/organization/domain"
	appValidation "github.com/rentguard/blacklist/internal/validation"

	apperrors "github.com/rentguard/blacklist/internal/errors"
)

// AddInput contains the input data for adding a person to the blacklist
type AddInput struct {
	OrganizationID int64
	AdminID        uuid.UUID
	Data           domain.PersonalData
	Reason         string
	Comment        string
}

// BlacklistUseCase orchestrates the blacklist workflows. Every mutating
// operation runs inside a single transaction so no partial identity, entry
// or history rows survive a failure.
type BlacklistUseCase struct {
	txManager    database.TxManager
	matcher      *Matcher
	hasher       *service.Hasher
	signer       *service.HistorySigner
	identityRepo IdentityRepository
	entryRepo    EntryRepository
	historyRepo  HistoryRepository
	orgRepo      OrganizationRepository
	adminRepo    AdminRepository
	logger       *slog.Logger
}

// NewBlacklistUseCase creates a new BlacklistUseCase
func NewBlacklistUseCase(
	txManager database.TxManager,
	matcher *Matcher,
	hasher *service.Hasher,
	signer *service.HistorySigner,
	identityRepo IdentityRepository,
	entryRepo EntryRepository,
	historyRepo HistoryRepository,
	orgRepo OrganizationRepository,
	adminRepo AdminRepository,
	logger *slog.Logger,
) UseCase {
	return &BlacklistUseCase{
		txManager:    txManager,
		matcher:      matcher,
		hasher:       hasher,
		signer:       signer,
		identityRepo: identityRepo,
		entryRepo:    entryRepo,
		historyRepo:  historyRepo,
		orgRepo:      orgRepo,
		adminRepo:    adminRepo,
		logger:       logger,
	}
}

func (uc *BlacklistUseCase) validateAddInput(input AddInput) error {
	err := validation.Errors{
		"surname":         validation.Validate(input.Data.Surname, validation.Required.Error("surname is required"), appValidation.NameComponent{}),
		"name":            validation.Validate(input.Data.Name, validation.Required.Error("name is required"), appValidation.NameComponent{}),
		"patronymic":      validation.Validate(input.Data.Patronymic, validation.Required.Error("patronymic is required"), appValidation.NameComponent{}),
		"birthdate":       validation.Validate(input.Data.Birthdate, validation.Required.Error("birthdate is required"), appValidation.DefaultBirthdate()),
		"passport":        validation.Validate(input.Data.Passport, validation.Required.Error("passport is required"), appValidation.Passport{}),
		"department_code": validation.Validate(input.Data.DepartmentCode, validation.Required.Error("department code is required"), appValidation.DepartmentCode{}),
		"phone":           validation.Validate(input.Data.Phone, appValidation.Phone{}),
		"reason":          validation.Validate(input.Reason, validation.Required.Error("reason is required"), validation.Length(3, 1000).Error("reason must be between 3 and 1000 characters")),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

// Add blacklists a person for an organization. The identity is resolved
// across all organizations first so the same real person never gets a
// duplicate identity just because another organization reported them under a
// different salt. A new entry is always created, even when the person is
// already blacklisted: multiple entries carry independent reasons. The
// returned AlreadyExisted flag reports whether an active entry existed
// before this call; it never blocks the add.
func (uc *BlacklistUseCase) Add(ctx context.Context, input AddInput) (*domain.AddResult, error) {
	if err := uc.validateAddInput(input); err != nil {
		return nil, err
	}

	org, err := uc.orgRepo.GetByID(ctx, input.OrganizationID)
	if err != nil {
		return nil, err
	}

	result, err := uc.addOnce(ctx, org, input)
	if apperrors.Is(err, domain.ErrIdentityExists) {
		// Concurrent add created the same identity between resolve and
		// create; the second pass finds it via the identity key.
		result, err = uc.addOnce(ctx, org, input)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("blacklist entry added",
		slog.String("entry_id", result.Entry.ID.String()),
		slog.String("identity_id", result.Identity.ID.String()),
		slog.Int64("organization_id", input.OrganizationID),
		slog.Bool("already_existed", result.AlreadyExisted),
	)

	return result, nil
}

func (uc *BlacklistUseCase) addOnce(ctx context.Context, org *orgDomain.Organization, input AddInput) (*domain.AddResult, error) {
	var result *domain.AddResult

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		identity, err := uc.matcher.ResolveAcrossOrganizations(ctx, input.Data)
		if err != nil {
			return err
		}

		if identity == nil {
			identity, err = uc.getOrCreateIdentity(ctx, org, input.Data)
			if err != nil {
				return err
			}
		}

		active, err := uc.entryRepo.ActiveByIdentity(ctx, identity.ID)
		if err != nil {
			return err
		}
		alreadyExisted := len(active) > 0

		entry := domain.NewEntry(identity.ID, input.OrganizationID, input.AdminID, input.Reason, input.Comment)
		if err := uc.entryRepo.Create(ctx, entry); err != nil {
			return err
		}

		event := &domain.HistoryEvent{
			EntryID:   entry.ID,
			Action:    domain.ActionAdded,
			AdminID:   input.AdminID,
			NewReason: input.Reason,
			NewStatus: domain.StatusActive,
			Comment:   input.Comment,
			Created:   time.Now().UTC().Truncate(time.Microsecond),
		}
		event.Signature = uc.signer.Sign(event)
		if err := uc.historyRepo.Append(ctx, event); err != nil {
			return err
		}

		result = &domain.AddResult{
			Identity:       identity,
			Entry:          entry,
			AlreadyExisted: alreadyExisted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// getOrCreateIdentity finds the identity with the same identity key inside
// the calling organization, or creates a fresh one under its salt.
func (uc *BlacklistUseCase) getOrCreateIdentity(ctx context.Context, org *orgDomain.Organization, data domain.PersonalData) (*domain.Identity, error) {
	digests, err := uc.hasher.GenerateDigests(data, org.HashSalt)
	if err != nil {
		return nil, err
	}

	identity, err := uc.identityRepo.FindByIdentityKey(ctx, org.ID, digests.FIO, digests.Birthdate, digests.Passport)
	if err == nil {
		return identity, nil
	}
	if !apperrors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	identity = domain.NewIdentity(org.ID, org.HashSalt, digests)
	if err := uc.identityRepo.Create(ctx, identity); err != nil {
		return nil, err
	}
	return identity, nil
}

// Search finds blacklist entries matching the criteria across all
// organizations. Results never carry salts or digests.
func (uc *BlacklistUseCase) Search(ctx context.Context, criteria domain.SearchCriteria) ([]*domain.SearchRow, error) {
	return uc.search(ctx, criteria, nil)
}

// SearchForOrganizations is Search restricted to entries filed by the given
// organizations. Matching is unchanged; only the final filter differs.
func (uc *BlacklistUseCase) SearchForOrganizations(ctx context.Context, organizationIDs []int64, criteria domain.SearchCriteria) ([]*domain.SearchRow, error) {
	allowed := make(map[int64]struct{}, len(organizationIDs))
	for _, id := range organizationIDs {
		allowed[id] = struct{}{}
	}
	return uc.search(ctx, criteria, allowed)
}

func (uc *BlacklistUseCase) search(ctx context.Context, criteria domain.SearchCriteria, allowed map[int64]struct{}) ([]*domain.SearchRow, error) {
	if !criteria.HasAny() {
		return nil, domain.ErrNoCriteria
	}

	candidates, err := uc.matcher.SearchByCriteria(ctx, criteria)
	if err != nil {
		return nil, err
	}

	orgNames := make(map[int64]string)
	adminExternalIDs := make(map[uuid.UUID]int64)

	var rows []*domain.SearchRow
	for _, candidate := range candidates {
		entries, err := uc.entryRepo.ListByIdentity(ctx, candidate.Identity.ID)
		if err != nil {
			return nil, err
		}

		for _, entry := range entries {
			if allowed != nil {
				if _, ok := allowed[entry.OrganizationID]; !ok {
					continue
				}
			}

			orgName, err := uc.organizationName(ctx, orgNames, entry.OrganizationID)
			if err != nil {
				return nil, err
			}
			adminExternalID, err := uc.adminExternalID(ctx, adminExternalIDs, entry.AdminID)
			if err != nil {
				return nil, err
			}

			rows = append(rows, &domain.SearchRow{
				IdentityID:       candidate.Identity.ID,
				EntryID:          entry.ID,
				OrganizationID:   entry.OrganizationID,
				OrganizationName: orgName,
				AdminExternalID:  adminExternalID,
				Reason:           entry.Reason,
				Comment:          entry.Comment,
				Status:           entry.Status,
				MatchedFields:    candidate.MatchedFields,
				Created:          entry.Created,
			})
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Created.Before(rows[j].Created)
	})

	return rows, nil
}

func (uc *BlacklistUseCase) organizationName(ctx context.Context, cache map[int64]string, id int64) (string, error) {
	if name, ok := cache[id]; ok {
		return name, nil
	}
	org, err := uc.orgRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, orgDomain.ErrOrganizationNotFound) {
			cache[id] = ""
			return "", nil
		}
		return "", err
	}
	cache[id] = org.Name
	return org.Name, nil
}

func (uc *BlacklistUseCase) adminExternalID(ctx context.Context, cache map[uuid.UUID]int64, id uuid.UUID) (int64, error) {
	if externalID, ok := cache[id]; ok {
		return externalID, nil
	}
	admin, err := uc.adminRepo.GetByID(ctx, id)
	if err != nil {
		if apperrors.Is(err, adminDomain.ErrAdminNotFound) {
			cache[id] = 0
			return 0, nil
		}
		return 0, err
	}
	cache[id] = admin.ExternalID
	return admin.ExternalID, nil
}

// Deactivate marks an entry inactive and records the transition. An entry
// that is already inactive is rejected without writing history.
func (uc *BlacklistUseCase) Deactivate(ctx context.Context, entryID, adminID uuid.UUID, comment string) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		entry, err := uc.entryRepo.GetByID(ctx, entryID)
		if err != nil {
			return err
		}
		if !entry.IsActive() {
			return domain.ErrEntryNotActive
		}

		if err := uc.entryRepo.UpdateStatus(ctx, entryID, domain.StatusInactive); err != nil {
			return err
		}

		event := &domain.HistoryEvent{
			EntryID:   entryID,
			Action:    domain.ActionDeactivated,
			AdminID:   adminID,
			OldStatus: domain.StatusActive,
			NewStatus: domain.StatusInactive,
			Comment:   comment,
			Created:   time.Now().UTC().Truncate(time.Microsecond),
		}
		event.Signature = uc.signer.Sign(event)
		return uc.historyRepo.Append(ctx, event)
	})
}

// Reactivate marks an entry active again and records the transition. An
// entry that is already active is rejected without writing history.
func (uc *BlacklistUseCase) Reactivate(ctx context.Context, entryID, adminID uuid.UUID, comment string) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		entry, err := uc.entryRepo.GetByID(ctx, entryID)
		if err != nil {
			return err
		}
		if entry.IsActive() {
			return domain.ErrEntryAlreadyActive
		}

		if err := uc.entryRepo.UpdateStatus(ctx, entryID, domain.StatusActive); err != nil {
			return err
		}

		event := &domain.HistoryEvent{
			EntryID:   entryID,
			Action:    domain.ActionReactivated,
			AdminID:   adminID,
			OldStatus: domain.StatusInactive,
			NewStatus: domain.StatusActive,
			Comment:   comment,
			Created:   time.Now().UTC().Truncate(time.Microsecond),
		}
		event.Signature = uc.signer.Sign(event)
		return uc.historyRepo.Append(ctx, event)
	})
}

// UpdateReason changes an entry's reason and records the old and new values.
func (uc *BlacklistUseCase) UpdateReason(ctx context.Context, entryID, adminID uuid.UUID, newReason, comment string) error {
	err := validation.Validate(newReason,
		validation.Required.Error("reason is required"),
		validation.Length(3, 1000).Error("reason must be between 3 and 1000 characters"),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		entry, err := uc.entryRepo.GetByID(ctx, entryID)
		if err != nil {
			return err
		}

		if err := uc.entryRepo.UpdateReason(ctx, entryID, newReason); err != nil {
			return err
		}

		event := &domain.HistoryEvent{
			EntryID:   entryID,
			Action:    domain.ActionUpdated,
			AdminID:   adminID,
			OldReason: entry.Reason,
			NewReason: newReason,
			Comment:   comment,
			Created:   time.Now().UTC().Truncate(time.Microsecond),
		}
		event.Signature = uc.signer.Sign(event)
		return uc.historyRepo.Append(ctx, event)
	})
}

// History returns the full event log of an entry in append order.
func (uc *BlacklistUseCase) History(ctx context.Context, entryID uuid.UUID) ([]*domain.HistoryEvent, error) {
	if _, err := uc.entryRepo.GetByID(ctx, entryID); err != nil {
		return nil, err
	}
	return uc.historyRepo.ListByEntry(ctx, entryID)
}

// DeleteIdentity permanently removes an identity together with its entries
// and history, which cascade on the identity row. This is the administrative
// erasure path for data subject requests; the HTTP API never exposes it.
func (uc *BlacklistUseCase) DeleteIdentity(ctx context.Context, identityID uuid.UUID) error {
	if err := uc.identityRepo.Delete(ctx, identityID); err != nil {
		return err
	}

	uc.logger.Info("identity deleted",
		slog.String("identity_id", identityID.String()),
	)
	return nil
}

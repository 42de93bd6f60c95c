package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/blacklist/domain"
	"github.com/rentguard/blacklist/internal/blacklist/service"
	orgDomain "github.com/rentguard/blacklist/internal/organization/domain"
)

// Matcher resolves identities across organizations. Digests are salted per
// organization, so equality of digests under the same salt is the only
// matching primitive available; the matcher never sees raw personal data
// from storage.
type Matcher struct {
	hasher       *service.Hasher
	identityRepo IdentityRepository
	orgRepo      OrganizationRepository
	logger       *slog.Logger
}

// NewMatcher creates a new Matcher
func NewMatcher(hasher *service.Hasher, identityRepo IdentityRepository, orgRepo OrganizationRepository, logger *slog.Logger) *Matcher {
	return &Matcher{
		hasher:       hasher,
		identityRepo: identityRepo,
		orgRepo:      orgRepo,
		logger:       logger,
	}
}

// ResolveAcrossOrganizations looks for an existing identity matching the
// given personal data under any organization's salt. The passport digest is
// the required anchor; a passport hit is confirmed by the department code or,
// failing that, the birthdate. An unconfirmed passport hit is treated as a
// coincidental collision and the search continues. The first confirmed match
// in organization ID order wins. Returns nil when the person is unknown.
func (m *Matcher) ResolveAcrossOrganizations(ctx context.Context, data domain.PersonalData) (*domain.Identity, error) {
	orgs, err := m.orgRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, org := range orgs {
		passportDigest, err := m.hasher.DigestForSearch(service.HashFieldPassport, data.Passport, org.HashSalt)
		if err != nil {
			return nil, err
		}

		candidates, err := m.identityRepo.FindByPassportDigest(ctx, org.ID, passportDigest)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			continue
		}

		deptDigest, err := m.hasher.DigestForSearch(service.HashFieldDepartmentCode, data.DepartmentCode, org.HashSalt)
		if err != nil {
			return nil, err
		}
		birthdateDigest, err := m.hasher.DigestForSearch(service.HashFieldBirthdate, data.Birthdate, org.HashSalt)
		if err != nil {
			return nil, err
		}

		for _, candidate := range candidates {
			if candidate.DepartmentCodeHash == deptDigest || candidate.BirthdateHash == birthdateDigest {
				m.logger.Debug("cross-organization identity match",
					slog.String("identity_id", candidate.ID.String()),
					slog.Int64("organization_id", org.ID),
				)
				return candidate, nil
			}
		}
	}

	return nil, nil
}

// SearchByCriteria finds identities matching the supplied criteria. Passport
// is the primary anchor, the full name the fallback; without either, a
// surname or phone anchors a per-organization partial search. An identity is
// accepted only when at least two supplied fields match by digest equality,
// which guards against single-field collisions and input errors. When an
// identity is reachable through several salts or paths, only its largest
// matched-field set is kept. Results are ordered by identity creation time.
func (m *Matcher) SearchByCriteria(ctx context.Context, criteria domain.SearchCriteria) ([]*domain.Candidate, error) {
	if !criteria.HasAny() {
		return nil, domain.ErrNoCriteria
	}

	best := make(map[uuid.UUID]*domain.Candidate)

	switch {
	case criteria.Passport != "" || criteria.FIO != "":
		if err := m.searchBySalts(ctx, criteria, best); err != nil {
			return nil, err
		}
	case criteria.Surname != "" || criteria.Phone != "":
		if err := m.searchByOrganizations(ctx, criteria, best); err != nil {
			return nil, err
		}
	default:
		// No anchor field; nothing can reach the two-field threshold reliably.
		return nil, nil
	}

	candidates := make([]*domain.Candidate, 0, len(best))
	for _, candidate := range best {
		candidates = append(candidates, candidate)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Identity.Created.Before(candidates[j].Identity.Created)
	})

	return candidates, nil
}

// searchBySalts anchors on the passport or full name digest under every salt
// present in storage, so identities written under a rotated salt stay
// reachable.
func (m *Matcher) searchBySalts(ctx context.Context, criteria domain.SearchCriteria, best map[uuid.UUID]*domain.Candidate) error {
	salts, err := m.identityRepo.DistinctSalts(ctx)
	if err != nil {
		return err
	}

	for _, salt := range salts {
		var identities []*domain.Identity
		var anchor string

		if criteria.Passport != "" {
			digest, err := m.hasher.DigestForSearch(service.HashFieldPassport, criteria.Passport, salt)
			if err != nil {
				return err
			}
			identities, err = m.identityRepo.FindByPassportDigestGlobal(ctx, digest)
			if err != nil {
				return err
			}
			anchor = domain.FieldPassport
		} else {
			digest, err := m.hasher.DigestForSearch(service.HashFieldFIO, criteria.FIO, salt)
			if err != nil {
				return err
			}
			identities, err = m.identityRepo.FindByFIODigestGlobal(ctx, digest)
			if err != nil {
				return err
			}
			anchor = domain.FieldFIO
		}

		if err := m.keepBest(criteria, identities, salt, anchor, best); err != nil {
			return err
		}
	}

	return nil
}

// searchByOrganizations serves the partial search without a passport or full
// name: the surname, or failing that the phone, anchors a lookup inside each
// organization under its current salt.
func (m *Matcher) searchByOrganizations(ctx context.Context, criteria domain.SearchCriteria, best map[uuid.UUID]*domain.Candidate) error {
	orgs, err := m.orgRepo.List(ctx)
	if err != nil {
		return err
	}

	for _, org := range orgs {
		var identities []*domain.Identity
		var anchor string

		if criteria.Surname != "" {
			digest, err := m.hasher.DigestForSearch(service.HashFieldSurname, criteria.Surname, org.HashSalt)
			if err != nil {
				return err
			}
			identities, err = m.identityRepo.FindBySurnameDigest(ctx, org.ID, digest)
			if err != nil {
				return err
			}
			anchor = domain.FieldSurname
		} else {
			identities, err = m.findByPhone(ctx, org, criteria.Phone)
			if err != nil {
				return err
			}
			anchor = domain.FieldPhone
		}

		if err := m.keepBest(criteria, identities, org.HashSalt, anchor, best); err != nil {
			return err
		}
	}

	return nil
}

// findByPhone looks up identities by the full phone digest and the
// subscriber-number digest, deduplicated. The two digests cover numbers
// stored with and without a country code.
func (m *Matcher) findByPhone(ctx context.Context, org *orgDomain.Organization, phone string) ([]*domain.Identity, error) {
	fullDigest, err := m.hasher.DigestForSearch(service.HashFieldPhone, phone, org.HashSalt)
	if err != nil {
		return nil, err
	}
	last10Digest, err := m.hasher.DigestForSearch(service.HashFieldPhoneLast10, phone, org.HashSalt)
	if err != nil {
		return nil, err
	}

	byFull, err := m.identityRepo.FindByPhoneDigest(ctx, org.ID, fullDigest)
	if err != nil {
		return nil, err
	}
	byLast10, err := m.identityRepo.FindByPhoneLast10Digest(ctx, org.ID, last10Digest)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(byFull))
	identities := make([]*domain.Identity, 0, len(byFull)+len(byLast10))
	for _, identity := range append(byFull, byLast10...) {
		if _, ok := seen[identity.ID]; ok {
			continue
		}
		seen[identity.ID] = struct{}{}
		identities = append(identities, identity)
	}
	return identities, nil
}

// keepBest applies the two-field threshold and keeps each identity's largest
// matched-field set.
func (m *Matcher) keepBest(criteria domain.SearchCriteria, identities []*domain.Identity, salt, anchor string, best map[uuid.UUID]*domain.Candidate) error {
	for _, identity := range identities {
		matched, err := m.matchedFields(criteria, identity, salt, anchor)
		if err != nil {
			return err
		}
		if len(matched) < 2 {
			continue
		}

		if current, ok := best[identity.ID]; !ok || len(matched) > len(current.MatchedFields) {
			best[identity.ID] = &domain.Candidate{Identity: identity, MatchedFields: matched}
		}
	}
	return nil
}

// matchedFields counts the supplied criteria fields whose digests under the
// given salt equal the identity's stored digests, starting from the anchor
// field that produced the candidate.
func (m *Matcher) matchedFields(criteria domain.SearchCriteria, identity *domain.Identity, salt, anchor string) ([]string, error) {
	matched := []string{anchor}

	if anchor != domain.FieldFIO && criteria.FIO != "" {
		digest, err := m.hasher.DigestForSearch(service.HashFieldFIO, criteria.FIO, salt)
		if err != nil {
			return nil, err
		}
		if digest == identity.FIOHash {
			matched = append(matched, domain.FieldFIO)
		}
	}

	if anchor != domain.FieldSurname && criteria.Surname != "" {
		digest, err := m.hasher.DigestForSearch(service.HashFieldSurname, criteria.Surname, salt)
		if err != nil {
			return nil, err
		}
		if digest == identity.SurnameHash {
			matched = append(matched, domain.FieldSurname)
		}
	}

	if anchor != domain.FieldPassport && criteria.Passport != "" {
		digest, err := m.hasher.DigestForSearch(service.HashFieldPassport, criteria.Passport, salt)
		if err != nil {
			return nil, err
		}
		if digest == identity.PassportHash {
			matched = append(matched, domain.FieldPassport)
		}
	}

	if criteria.Birthdate != "" {
		digest, err := m.hasher.DigestForSearch(service.HashFieldBirthdate, criteria.Birthdate, salt)
		if err != nil {
			return nil, err
		}
		if digest == identity.BirthdateHash {
			matched = append(matched, domain.FieldBirthdate)
		}
	}

	if criteria.DepartmentCode != "" {
		digest, err := m.hasher.DigestForSearch(service.HashFieldDepartmentCode, criteria.DepartmentCode, salt)
		if err != nil {
			return nil, err
		}
		if digest == identity.DepartmentCodeHash {
			matched = append(matched, domain.FieldDepartmentCode)
		}
	}

	if anchor != domain.FieldPhone && criteria.Phone != "" {
		digest, err := m.hasher.DigestForSearch(service.HashFieldPhone, criteria.Phone, salt)
		if err != nil {
			return nil, err
		}
		last10Digest, err := m.hasher.DigestForSearch(service.HashFieldPhoneLast10, criteria.Phone, salt)
		if err != nil {
			return nil, err
		}
		if (identity.PhoneHash != "" && digest == identity.PhoneHash) ||
			(identity.PhoneLast10Hash != "" && last10Digest == identity.PhoneLast10Hash) {
			matched = append(matched, domain.FieldPhone)
		}
	}

	return matched, nil
}

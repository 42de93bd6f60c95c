package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/rentguard/blacklist/internal/admin/domain"
	"github.com/rentguard/blacklist/internal/database"

	apperrors "github.com/rentguard/blacklist/internal/errors"
)

// MySQLAdminRepository handles admin persistence for MySQL
type MySQLAdminRepository struct {
	db *sql.DB
}

// NewMySQLAdminRepository creates a new MySQLAdminRepository
func NewMySQLAdminRepository(db *sql.DB) *MySQLAdminRepository {
	return &MySQLAdminRepository{
		db: db,
	}
}

// Create inserts a new admin
func (r *MySQLAdminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO admins (id, external_id, role, created_at, updated_at)
			  VALUES (?, ?, ?, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, admin.ID, admin.ExternalID, admin.Role)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAdminExists
		}
		return apperrors.Wrap(err, "failed to create admin")
	}
	return nil
}

// GetByID retrieves an admin by internal ID
func (r *MySQLAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Admin, error) {
	var admin domain.Admin
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, external_id, role, created_at, updated_at
			  FROM admins WHERE id = ?`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&admin.ID, &admin.ExternalID, &admin.Role, &admin.Created, &admin.Updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get admin by id")
	}

	return &admin, nil
}

// GetByExternalID retrieves an admin by external ID
func (r *MySQLAdminRepository) GetByExternalID(ctx context.Context, externalID int64) (*domain.Admin, error) {
	var admin domain.Admin
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, external_id, role, created_at, updated_at
			  FROM admins WHERE external_id = ?`

	err := querier.QueryRowContext(ctx, query, externalID).Scan(
		&admin.ID, &admin.ExternalID, &admin.Role, &admin.Created, &admin.Updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get admin by external id")
	}

	return &admin, nil
}

// AddToOrganization links an admin to an organization. Adding an existing
// link is a no-op.
func (r *MySQLAdminRepository) AddToOrganization(ctx context.Context, adminID uuid.UUID, organizationID int64) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT IGNORE INTO admin_organizations (admin_id, organization_id, created_at)
			  VALUES (?, ?, NOW())`

	if _, err := querier.ExecContext(ctx, query, adminID, organizationID); err != nil {
		return apperrors.Wrap(err, "failed to add admin to organization")
	}
	return nil
}

// OrganizationIDs returns the IDs of the organizations the admin belongs to,
// in ascending order.
func (r *MySQLAdminRepository) OrganizationIDs(ctx context.Context, adminID uuid.UUID) ([]int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT organization_id FROM admin_organizations
			  WHERE admin_id = ? ORDER BY organization_id ASC`

	rows, err := querier.QueryContext(ctx, query, adminID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list admin organizations")
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan organization id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate admin organizations")
	}

	return ids, nil
}

// ListByOrganization returns the admins linked to an organization
func (r *MySQLAdminRepository) ListByOrganization(ctx context.Context, organizationID int64) ([]*domain.Admin, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT a.id, a.external_id, a.role, a.created_at, a.updated_at
			  FROM admins a
			  JOIN admin_organizations ao ON ao.admin_id = a.id
			  WHERE ao.organization_id = ?
			  ORDER BY a.external_id ASC`

	rows, err := querier.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list admins by organization")
	}
	defer rows.Close()

	var admins []*domain.Admin
	for rows.Next() {
		var admin domain.Admin
		if err := rows.Scan(&admin.ID, &admin.ExternalID, &admin.Role, &admin.Created, &admin.Updated); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan admin")
		}
		admins = append(admins, &admin)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate admins")
	}

	return admins, nil
}

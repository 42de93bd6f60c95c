package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rentguard/blacklist/internal/database"
	"github.com/rentguard/blacklist/internal/organization/domain"

	apperrors "github.com/rentguard/blacklist/internal/errors"
)

// MySQLOrganizationRepository handles organization persistence for MySQL
type MySQLOrganizationRepository struct {
	db *sql.DB
}

// NewMySQLOrganizationRepository creates a new MySQLOrganizationRepository
func NewMySQLOrganizationRepository(db *sql.DB) *MySQLOrganizationRepository {
	return &MySQLOrganizationRepository{
		db: db,
	}
}

// Create inserts a new organization and assigns its auto-increment ID
func (r *MySQLOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO organizations (name, hash_salt, created_at, updated_at)
			  VALUES (?, ?, NOW(), NOW())`

	result, err := querier.ExecContext(ctx, query, org.Name, org.HashSalt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrganizationExists
		}
		return apperrors.Wrap(err, "failed to create organization")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get organization id")
	}
	org.ID = id
	return nil
}

// GetByID retrieves an organization by ID
func (r *MySQLOrganizationRepository) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	var org domain.Organization
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, hash_salt, created_at, updated_at
			  FROM organizations WHERE id = ?`

	err := querier.QueryRowContext(ctx, query, id).Scan(
		&org.ID, &org.Name, &org.HashSalt, &org.Created, &org.Updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get organization by id")
	}

	return &org, nil
}

// GetByName retrieves an organization by name
func (r *MySQLOrganizationRepository) GetByName(ctx context.Context, name string) (*domain.Organization, error) {
	var org domain.Organization
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, hash_salt, created_at, updated_at
			  FROM organizations WHERE name = ?`

	err := querier.QueryRowContext(ctx, query, name).Scan(
		&org.ID, &org.Name, &org.HashSalt, &org.Created, &org.Updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get organization by name")
	}

	return &org, nil
}

// List retrieves all organizations ordered by ID
func (r *MySQLOrganizationRepository) List(ctx context.Context) ([]*domain.Organization, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, hash_salt, created_at, updated_at
			  FROM organizations ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list organizations")
	}
	defer rows.Close()

	var orgs []*domain.Organization
	for rows.Next() {
		var org domain.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.HashSalt, &org.Created, &org.Updated); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan organization")
		}
		orgs = append(orgs, &org)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate organizations")
	}

	return orgs, nil
}

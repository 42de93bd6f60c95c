// Package repository provides data persistence implementations for organizations.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/rentguard/blacklist/internal/database"
	"github.com/rentguard/blacklist/internal/organization/domain"

	apperrors "github.com/rentguard/blacklist/internal/errors"
)

// PostgreSQLOrganizationRepository handles organization persistence for PostgreSQL
type PostgreSQLOrganizationRepository struct {
	db *sql.DB
}

// NewPostgreSQLOrganizationRepository creates a new PostgreSQLOrganizationRepository
func NewPostgreSQLOrganizationRepository(db *sql.DB) *PostgreSQLOrganizationRepository {
	return &PostgreSQLOrganizationRepository{
		db: db,
	}
}

// Create inserts a new organization and assigns its serial ID
func (r *PostgreSQLOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO organizations (name, hash_salt, created_at, updated_at)
			  VALUES ($1, $2, NOW(), NOW()) RETURNING id`

	err := querier.QueryRowContext(ctx, query, org.Name, org.HashSalt).Scan(&org.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrOrganizationExists
		}
		return apperrors.Wrap(err, "failed to create organization")
	}
	return nil
}

// GetByID retrieves an organization by ID
func (r *PostgreSQLOrganizationRepository) GetByID(ctx context.Context, id int64) (*domain.Organization, error) {
	var org domain.Organization
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, hash_salt, created_at, updated_at
			  FROM organizations WHERE id = $1`

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
func (r *PostgreSQLOrganizationRepository) GetByName(ctx context.Context, name string) (*domain.Organization, error) {
	var org domain.Organization
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, name, hash_salt, created_at, updated_at
			  FROM organizations WHERE name = $1`

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
func (r *PostgreSQLOrganizationRepository) List(ctx context.Context) ([]*domain.Organization, error) {
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

// isUniqueViolation checks if the error is a unique constraint violation.
// Matches on message text so it works for both PostgreSQL and MySQL drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "duplicate entry")
}

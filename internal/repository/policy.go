package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/passcheck/passcheck-go/internal/model"
)

var ErrPolicyNotFound = errors.New("policy not found")

// PolicyRepository handles named policy persistence operations.
type PolicyRepository struct {
	db *sql.DB
}

// NewPolicyRepository creates a new PolicyRepository.
func NewPolicyRepository(db *sql.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

// Upsert inserts a named policy or replaces its rules if the name exists.
// Soft-deleted policies are revived by an upsert.
func (r *PolicyRepository) Upsert(ctx context.Context, policy *model.StoredPolicy) error {
	query := `
		INSERT INTO policies (name, min_length, require_digit, require_case, require_symbol)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			min_length     = VALUES(min_length),
			require_digit  = VALUES(require_digit),
			require_case   = VALUES(require_case),
			require_symbol = VALUES(require_symbol),
			deleted        = FALSE,
			updated_at     = CURRENT_TIMESTAMP`

	_, err := r.db.ExecContext(ctx, query,
		policy.Name,
		policy.MinLength,
		policy.RequireDigit,
		policy.RequireCase,
		policy.RequireSymbol,
	)
	return err
}

// GetByName retrieves a non-deleted policy by name.
func (r *PolicyRepository) GetByName(ctx context.Context, name string) (*model.StoredPolicy, error) {
	query := `SELECT id, name, min_length, require_digit, require_case, require_symbol,
			created_at, updated_at, deleted
		FROM policies WHERE name = ? AND deleted = FALSE`

	p := &model.StoredPolicy{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&p.ID, &p.Name, &p.MinLength, &p.RequireDigit, &p.RequireCase, &p.RequireSymbol,
		&p.CreatedAt, &p.UpdatedAt, &p.Deleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}

	return p, nil
}

// List retrieves all non-deleted policies ordered by name.
func (r *PolicyRepository) List(ctx context.Context) ([]model.StoredPolicy, error) {
	query := `SELECT id, name, min_length, require_digit, require_case, require_symbol,
			created_at, updated_at, deleted
		FROM policies WHERE deleted = FALSE ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var policies []model.StoredPolicy
	for rows.Next() {
		var p model.StoredPolicy
		if err := rows.Scan(
			&p.ID, &p.Name, &p.MinLength, &p.RequireDigit, &p.RequireCase, &p.RequireSymbol,
			&p.CreatedAt, &p.UpdatedAt, &p.Deleted,
		); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}

	return policies, rows.Err()
}

// SoftDelete marks a policy as deleted without removing the row. The name
// stays reserved so a later upsert restores rather than duplicates it.
func (r *PolicyRepository) SoftDelete(ctx context.Context, name string) error {
	query := `UPDATE policies SET deleted = TRUE, updated_at = CURRENT_TIMESTAMP
		WHERE name = ? AND deleted = FALSE`

	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPolicyNotFound
	}

	return nil
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/bankcore/bankledger/internal/apperrors"
	"github.com/bankcore/bankledger/internal/core/domain"
	portsrepo "github.com/bankcore/bankledger/internal/core/ports/repositories"
	"github.com/bankcore/bankledger/internal/models"
	"github.com/bankcore/bankledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOwnerRepository struct {
	BaseRepository
}

// newPgxOwnerRepository creates a new repository for owner directory data.
func newPgxOwnerRepository(pool *pgxpool.Pool) portsrepo.OwnerRepositoryFacade {
	return &PgxOwnerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OwnerRepositoryFacade = (*PgxOwnerRepository)(nil)

// SaveOwner inserts a new owner.
func (r *PgxOwnerRepository) SaveOwner(ctx context.Context, owner domain.Owner) error {
	modelOwner := mapping.ToModelOwner(owner)

	query := `
		INSERT INTO owners (owner_id, name, email, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelOwner.OwnerID,
		modelOwner.Name,
		modelOwner.Email,
		modelOwner.IsActive,
		modelOwner.CreatedAt,
		modelOwner.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: owner with ID %s already exists", apperrors.ErrDuplicate, modelOwner.OwnerID)
		}
		return apperrors.NewAppError(500, "failed to save owner "+modelOwner.OwnerID, err)
	}
	return nil
}

// FindOwnerByID retrieves an owner by its ID.
func (r *PgxOwnerRepository) FindOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error) {
	query := `
		SELECT owner_id, name, email, is_active, created_at, last_updated_at
		FROM owners
		WHERE owner_id = $1;
	`
	var modelOwner models.Owner
	err := r.Pool.QueryRow(ctx, query, ownerID).Scan(
		&modelOwner.OwnerID,
		&modelOwner.Name,
		&modelOwner.Email,
		&modelOwner.IsActive,
		&modelOwner.CreatedAt,
		&modelOwner.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find owner by ID "+ownerID, err)
	}

	domainOwner := mapping.ToDomainOwner(modelOwner)
	return &domainOwner, nil
}

// ListOwnerIDs returns the IDs of all owners.
func (r *PgxOwnerRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	rows, err := r.Pool.Query(ctx, `SELECT owner_id FROM owners ORDER BY owner_id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query owner IDs", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan owner ID row", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating owner ID rows", err)
	}
	return ids, nil
}

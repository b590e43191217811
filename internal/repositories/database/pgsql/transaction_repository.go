package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bankcore/bankledger/internal/apperrors"
	"github.com/bankcore/bankledger/internal/core/domain"
	portsrepo "github.com/bankcore/bankledger/internal/core/ports/repositories"
	"github.com/bankcore/bankledger/internal/models"
	"github.com/bankcore/bankledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction records.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, owner_id, account_id, counterparty_id, amount, transaction_type, direction, status, reference_number, description, created_at, last_updated_at`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.AccountID,
		&m.CounterpartyID,
		&m.Amount,
		&m.TransactionType,
		&m.Direction,
		&m.Status,
		&m.ReferenceNumber,
		&m.Description,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTransaction persists a new transaction in its initial status.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.OwnerID,
		m.AccountID,
		m.CounterpartyID,
		m.Amount,
		m.TransactionType,
		m.Direction,
		m.Status,
		m.ReferenceNumber,
		m.Description,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
			case "23503":
				return fmt.Errorf("%w: transaction %s references a missing owner or account", apperrors.ErrValidation, m.TransactionID)
			}
		}
		return apperrors.NewAppError(500, "failed to save transaction "+m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its unique identifier.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}

	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

// ListTransactionsByOwner retrieves the most recent transactions for an owner,
// newest first. An empty statuses slice means no status filter.
func (r *PgxTransactionRepository) ListTransactionsByOwner(ctx context.Context, ownerID string, statuses []domain.TransactionStatus, limit int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1
		  AND ($2::text[] IS NULL OR status = ANY($2::text[]))
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $3;
	`

	var statusFilter []string
	for _, s := range statuses {
		statusFilter = append(statusFilter, string(s))
	}

	rows, err := r.Pool.Query(ctx, query, ownerID, statusFilter, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list transactions for owner "+ownerID, err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		modelTxns = append(modelTxns, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// UpdateTransactionStatus sets the status and appends an audit note to the
// description. Runs standalone; the completion path flips status inside the
// posting unit of work instead.
func (r *PgxTransactionRepository) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus, auditNote string, now time.Time) error {
	query := `
		UPDATE transactions
		SET status = $2,
		    description = CASE WHEN $3 = '' THEN description ELSE description || ' | ' || $3 END,
		    last_updated_at = $4
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, string(status), auditNote, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update status of transaction "+transactionID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

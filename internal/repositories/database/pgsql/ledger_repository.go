package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/bankcore/bankledger/internal/apperrors"
	"github.com/bankcore/bankledger/internal/core/domain"
	portsrepo "github.com/bankcore/bankledger/internal/core/ports/repositories"
	"github.com/bankcore/bankledger/internal/models"
	"github.com/bankcore/bankledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxLedgerRepository implements the entry store over PostgreSQL. It owns the
// pair-creation and completion units of work, so the invariant "a posted
// debit always has a posted credit of equal amount" is enforced at the
// boundary where rows are written.
type PgxLedgerRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxLedgerRepository creates a new ledger repository. The account
// repository participates in the completion unit of work for row locking and
// the cached-balance sync.
func newPgxLedgerRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerColumns = `entry_id, owner_id, entry_type, amount, transaction_id, paired_entry_id, source_owner_id, destination_owner_id, description, reference_number, status, created_at, posted_at`

func scanLedgerEntry(row pgx.Row) (*models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.OwnerID,
		&m.EntryType,
		&m.Amount,
		&m.TransactionID,
		&m.PairedEntryID,
		&m.SourceOwnerID,
		&m.DestinationOwnerID,
		&m.Description,
		&m.ReferenceNumber,
		&m.Status,
		&m.CreatedAt,
		&m.PostedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ownerBalanceQuery sums posted credits minus posted debits for one owner.
const ownerBalanceQuery = `
	SELECT COALESCE(SUM(CASE WHEN entry_type = 'credit' THEN amount ELSE -amount END), 0)
	FROM ledger_entries
	WHERE owner_id = $1 AND status = 'posted';
`

// ownerBalanceIn computes the owner's ledger-derived balance on q, which is
// either the pool or an open tx.
func ownerBalanceIn(ctx context.Context, q querier, ownerID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	if err := q.QueryRow(ctx, ownerBalanceQuery, ownerID).Scan(&balance); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// insertPair performs the two-phase pair insert on q: insert the debit,
// insert the credit referencing it, then backfill the debit's
// paired_entry_id. Callers provide the enclosing transaction; a pair is
// never written outside one.
func insertPair(ctx context.Context, q querier, debit, credit domain.LedgerEntry) (domain.LedgerEntry, domain.LedgerEntry, error) {
	d := mapping.ToModelLedgerEntry(debit)
	c := mapping.ToModelLedgerEntry(credit)

	insertQuery := `
		INSERT INTO ledger_entries
			(owner_id, entry_type, amount, transaction_id, paired_entry_id, source_owner_id, destination_owner_id, description, reference_number, status, created_at, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING entry_id;
	`

	err := q.QueryRow(ctx, insertQuery,
		d.OwnerID, d.EntryType, d.Amount, d.TransactionID, nil,
		d.SourceOwnerID, d.DestinationOwnerID, d.Description, d.ReferenceNumber,
		d.Status, d.CreatedAt, d.PostedAt,
	).Scan(&d.EntryID)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("failed to insert debit entry: %w", err)
	}

	err = q.QueryRow(ctx, insertQuery,
		c.OwnerID, c.EntryType, c.Amount, c.TransactionID, &d.EntryID,
		c.SourceOwnerID, c.DestinationOwnerID, c.Description, c.ReferenceNumber,
		c.Status, c.CreatedAt, c.PostedAt,
	).Scan(&c.EntryID)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("failed to insert credit entry: %w", err)
	}

	tag, err := q.Exec(ctx, `UPDATE ledger_entries SET paired_entry_id = $2 WHERE entry_id = $1;`, d.EntryID, c.EntryID)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("failed to backfill debit pairing: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, fmt.Errorf("%w: debit entry %d vanished before pairing backfill", apperrors.ErrLinkage, d.EntryID)
	}
	d.PairedEntryID = &c.EntryID

	return mapping.ToDomainLedgerEntry(d), mapping.ToDomainLedgerEntry(c), nil
}

// checkSufficientFunds guards the debit side of a pair. The system owner is
// the funds source for admin funding and is exempt; every other owner must
// cover the debit from its ledger-derived balance, read on q so the check
// and the insert see the same snapshot.
func checkSufficientFunds(ctx context.Context, q querier, debit domain.LedgerEntry) error {
	if debit.OwnerID == domain.SystemOwnerID {
		return nil
	}
	balance, err := ownerBalanceIn(ctx, q, debit.OwnerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to compute balance for owner "+debit.OwnerID, err)
	}
	if balance.LessThan(debit.Amount) {
		return fmt.Errorf("%w: insufficient balance for owner %s: has %s, needs %s",
			apperrors.ErrValidation, debit.OwnerID, balance.String(), debit.Amount.String())
	}
	return nil
}

func validatePair(debit, credit domain.LedgerEntry) error {
	if debit.EntryType != domain.Debit || credit.EntryType != domain.Credit {
		return fmt.Errorf("%w: pair must be one debit and one credit", apperrors.ErrValidation)
	}
	if !debit.Amount.Equal(credit.Amount) {
		return fmt.Errorf("%w: pair amounts differ: debit %s, credit %s",
			apperrors.ErrValidation, debit.Amount.String(), credit.Amount.String())
	}
	if !debit.Amount.IsPositive() {
		return fmt.Errorf("%w: pair amount must be positive", apperrors.ErrValidation)
	}
	if debit.TransactionID != credit.TransactionID {
		return fmt.Errorf("%w: pair entries belong to different transactions", apperrors.ErrLinkage)
	}
	return nil
}

// CreatePair atomically persists a balanced debit/credit pair.
func (r *PgxLedgerRepository) CreatePair(ctx context.Context, debit, credit domain.LedgerEntry) (domain.LedgerEntry, domain.LedgerEntry, error) {
	if err := validatePair(debit, credit); err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := checkSufficientFunds(ctx, tx, debit); err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}

	d, c, err := insertPair(ctx, tx, debit, credit)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, apperrors.NewAppError(500, "failed to create ledger pair", mapPgError(err))
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}
	return d, c, nil
}

// CompleteTransactionPosting runs the gate's completion unit of work in one
// database transaction:
//
//  1. flip the transaction from its current non-terminal status to completed
//  2. lock the transaction's account row
//  3. check sufficient funds for the debit owner
//  4. insert the entry pair
//  5. re-derive the account owner's balance from the ledger and write the
//     cached accounts.balance column
//  6. verify global debits equal credits within tolerance and that no
//     orphaned debit exists
//
// A failure at any step, including the final guard, rolls everything back so
// the transaction record, the entries and the cached balance never disagree.
func (r *PgxLedgerRepository) CompleteTransactionPosting(ctx context.Context, txn domain.Transaction, debit, credit domain.LedgerEntry, tolerance decimal.Decimal) (domain.LedgerEntry, domain.LedgerEntry, error) {
	if err := validatePair(debit, credit); err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	now := time.Now().UTC()

	tag, err := tx.Exec(ctx, `
		UPDATE transactions
		SET status = $2, last_updated_at = $3
		WHERE transaction_id = $1 AND status IN ('pending', 'blocked');
	`, txn.TransactionID, string(domain.TxnCompleted), now)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, apperrors.NewAppError(500, "failed to complete transaction "+txn.TransactionID, mapPgError(err))
	}
	if tag.RowsAffected() == 0 {
		// Either missing or already terminal; a concurrent completion loses here.
		return domain.LedgerEntry{}, domain.LedgerEntry{},
			fmt.Errorf("%w: transaction %s is not open for completion", apperrors.ErrValidation, txn.TransactionID)
	}

	account, err := r.accountRepo.FindAccountForUpdate(ctx, tx, txn.AccountID)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}
	if !account.CanPost() {
		return domain.LedgerEntry{}, domain.LedgerEntry{},
			fmt.Errorf("%w: account %s is %s and cannot post", apperrors.ErrValidation, account.AccountID, account.Status)
	}

	if err := checkSufficientFunds(ctx, tx, debit); err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}

	d, c, err := insertPair(ctx, tx, debit, credit)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, apperrors.NewAppError(500, "failed to create ledger pair", mapPgError(err))
	}

	// The cached column is always re-derived from the ledger, never adjusted
	// incrementally.
	newBalance, err := ownerBalanceIn(ctx, tx, account.OwnerID)
	if err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, apperrors.NewAppError(500, "failed to re-derive balance for owner "+account.OwnerID, err)
	}
	if err := r.accountRepo.UpdateAccountBalanceInTx(ctx, tx, account.AccountID, newBalance, now); err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}

	if err := verifyLedgerBalanced(ctx, tx, tolerance); err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.LedgerEntry{}, domain.LedgerEntry{}, err
	}
	return d, c, nil
}

// SyncAccountBalance re-derives the account owner's balance from posted
// entries and writes the cached column, all under the account's row lock.
func (r *PgxLedgerRepository) SyncAccountBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	account, err := r.accountRepo.FindAccountForUpdate(ctx, tx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	balance, err := ownerBalanceIn(ctx, tx, account.OwnerID)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to re-derive balance for owner "+account.OwnerID, err)
	}
	if err := r.accountRepo.UpdateAccountBalanceInTx(ctx, tx, accountID, balance, time.Now().UTC()); err != nil {
		return decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// verifyLedgerBalanced is the in-tx reconcile guard of the completion unit:
// posted debits and credits must agree within tolerance and no posted debit
// may be unpaired.
func verifyLedgerBalanced(ctx context.Context, q querier, tolerance decimal.Decimal) error {
	debits, credits, err := postedTotalsIn(ctx, q)
	if err != nil {
		return apperrors.NewAppError(500, "failed to compute posted totals", err)
	}
	if diff := debits.Sub(credits).Abs(); diff.GreaterThan(tolerance) {
		return fmt.Errorf("%w: ledger out of balance after posting: debits %s, credits %s",
			apperrors.ErrReconciliation, debits.String(), credits.String())
	}

	orphans, err := countOrphanedDebitsIn(ctx, q)
	if err != nil {
		return apperrors.NewAppError(500, "failed to count orphaned debits", err)
	}
	if orphans > 0 {
		return fmt.Errorf("%w: %d orphaned debit entries after posting", apperrors.ErrReconciliation, orphans)
	}
	return nil
}

func postedTotalsIn(ctx context.Context, q querier) (decimal.Decimal, decimal.Decimal, error) {
	var debits, credits decimal.Decimal
	err := q.QueryRow(ctx, `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'debit'), 0),
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'credit'), 0)
		FROM ledger_entries
		WHERE status = 'posted';
	`).Scan(&debits, &credits)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return debits, credits, nil
}

func countOrphanedDebitsIn(ctx context.Context, q querier) (int64, error) {
	var count int64
	err := q.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM ledger_entries
		WHERE entry_type = 'debit' AND status = 'posted' AND paired_entry_id IS NULL;
	`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindEntriesByTransactionID retrieves the entries belonging to a transaction.
func (r *PgxLedgerRepository) FindEntriesByTransactionID(ctx context.Context, transactionID string) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE transaction_id = $1 ORDER BY entry_id;`
	return r.queryEntries(ctx, query, transactionID)
}

// ListEntriesByOwner retrieves an owner's most recent entries, newest first.
func (r *PgxLedgerRepository) ListEntriesByOwner(ctx context.Context, ownerID string, limit int) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE owner_id = $1 ORDER BY entry_id DESC LIMIT $2;`
	return r.queryEntries(ctx, query, ownerID, limit)
}

func (r *PgxLedgerRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	defer rows.Close()

	modelEntries := []models.LedgerEntry{}
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		modelEntries = append(modelEntries, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	return mapping.ToDomainLedgerEntrySlice(modelEntries), nil
}

// OwnerBalance computes posted credits minus posted debits for one owner.
func (r *PgxLedgerRepository) OwnerBalance(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	balance, err := ownerBalanceIn(ctx, r.Pool, ownerID)
	if err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to compute balance for owner "+ownerID, err)
	}
	return balance, nil
}

// AllOwnerBalances computes every owner's balance in a single grouped
// aggregation. Owners with no posted entries appear with a zero balance.
func (r *PgxLedgerRepository) AllOwnerBalances(ctx context.Context) (map[string]decimal.Decimal, error) {
	query := `
		SELECT o.owner_id,
		       COALESCE(SUM(CASE WHEN e.entry_type = 'credit' THEN e.amount ELSE -e.amount END), 0)
		FROM owners o
		LEFT JOIN ledger_entries e ON e.owner_id = o.owner_id AND e.status = 'posted'
		GROUP BY o.owner_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute owner balances", err)
	}
	defer rows.Close()

	balances := map[string]decimal.Decimal{}
	for rows.Next() {
		var ownerID string
		var balance decimal.Decimal
		if err := rows.Scan(&ownerID, &balance); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan owner balance row", err)
		}
		balances[ownerID] = balance
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating owner balance rows", err)
	}
	return balances, nil
}

// OwnerBreakdown computes an owner's deposit, withdrawal and received totals
// alongside the net balance, in one aggregation pass.
func (r *PgxLedgerRepository) OwnerBreakdown(ctx context.Context, ownerID string) (*domain.OwnerBreakdown, error) {
	query := `
		SELECT
			COALESCE(SUM(CASE WHEN entry_type = 'credit' THEN amount ELSE -amount END), 0) AS balance,
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'credit' AND source_owner_id = $2), 0) AS deposits,
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'debit' AND destination_owner_id = $2), 0) AS withdrawals,
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'credit' AND source_owner_id <> $2), 0) AS transfers_received
		FROM ledger_entries
		WHERE owner_id = $1 AND status = 'posted';
	`
	breakdown := domain.OwnerBreakdown{OwnerID: ownerID}
	err := r.Pool.QueryRow(ctx, query, ownerID, domain.SystemOwnerID).Scan(
		&breakdown.Balance,
		&breakdown.Deposits,
		&breakdown.Withdrawals,
		&breakdown.TransfersReceived,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute breakdown for owner "+ownerID, err)
	}
	return &breakdown, nil
}

// PostedTotals returns the global sums of posted debits and credits.
func (r *PgxLedgerRepository) PostedTotals(ctx context.Context) (decimal.Decimal, decimal.Decimal, error) {
	debits, credits, err := postedTotalsIn(ctx, r.Pool)
	if err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to compute posted totals", err)
	}
	return debits, credits, nil
}

// CountOrphanedDebits counts posted debit entries with no paired entry.
func (r *PgxLedgerRepository) CountOrphanedDebits(ctx context.Context) (int64, error) {
	count, err := countOrphanedDebitsIn(ctx, r.Pool)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count orphaned debits", err)
	}
	return count, nil
}

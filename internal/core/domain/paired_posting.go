package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrNonPositiveAmount rejects postings of zero or negative amounts.
	ErrNonPositiveAmount = errors.New("posting amount must be positive")
	// ErrSameOwner rejects transfers where source and destination coincide.
	ErrSameOwner = errors.New("cannot transfer to same owner")
)

// PairedPosting describes one economic event as a balanced debit/credit pair
// before it is persisted. It either yields both fully-formed entries or an
// error, never a half-built pair. Entry IDs and the mutual PairedEntryID
// references are assigned by the store during the two-phase insert.
type PairedPosting struct {
	FromOwnerID     string
	ToOwnerID       string
	Amount          decimal.Decimal
	Description     string
	ReferenceNumber string
}

// NewPairedPosting validates the economic event and returns a builder for it.
func NewPairedPosting(fromOwnerID, toOwnerID string, amount decimal.Decimal, description, reference string) (*PairedPosting, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w, got %s", ErrNonPositiveAmount, amount.String())
	}
	if fromOwnerID == toOwnerID {
		return nil, ErrSameOwner
	}
	return &PairedPosting{
		FromOwnerID:     fromOwnerID,
		ToOwnerID:       toOwnerID,
		Amount:          amount,
		Description:     description,
		ReferenceNumber: reference,
	}, nil
}

// Entries materializes the debit and credit for the given transaction.
// The debit (money leaving FromOwner) comes first; the store inserts it
// first so that reconciliation's orphan heuristic can assume debit-before-
// credit creation order.
func (p *PairedPosting) Entries(transactionID string, now time.Time) (debit LedgerEntry, credit LedgerEntry) {
	debit = LedgerEntry{
		OwnerID:            p.FromOwnerID,
		EntryType:          Debit,
		Amount:             p.Amount,
		TransactionID:      transactionID,
		SourceOwnerID:      p.FromOwnerID,
		DestinationOwnerID: p.ToOwnerID,
		Description:        "Debit: " + p.Description,
		ReferenceNumber:    p.ReferenceNumber,
		Status:             EntryPosted,
		CreatedAt:          now,
		PostedAt:           now,
	}
	credit = LedgerEntry{
		OwnerID:            p.ToOwnerID,
		EntryType:          Credit,
		Amount:             p.Amount,
		TransactionID:      transactionID,
		SourceOwnerID:      p.FromOwnerID,
		DestinationOwnerID: p.ToOwnerID,
		Description:        "Credit: " + p.Description,
		ReferenceNumber:    p.ReferenceNumber,
		Status:             EntryPosted,
		CreatedAt:          now,
		PostedAt:           now,
	}
	return debit, credit
}

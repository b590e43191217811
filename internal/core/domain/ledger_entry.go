package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType tags a ledger entry as a debit or a credit.
type EntryType string

const (
	Debit  EntryType = "debit"
	Credit EntryType = "credit"
)

// EntryStatus tracks posting state. Entries are never deleted; corrections
// are made via new offsetting entries.
type EntryStatus string

const (
	EntryPosted   EntryStatus = "posted"
	EntryReversed EntryStatus = "reversed"
)

// LedgerEntry is one immutable posting of a positive amount to one owner.
//
// Every completed transaction has exactly two entries, one debit and one
// credit of equal amount, each referencing the other via PairedEntryID. A
// posted debit with a nil PairedEntryID is an orphan and a reconciliation
// defect: the backfill step of pair creation never committed.
type LedgerEntry struct {
	EntryID            int64           `json:"entryID"` // monotonic, assigned at creation
	OwnerID            string          `json:"ownerID"` // the owner this entry affects
	EntryType          EntryType       `json:"entryType"`
	Amount             decimal.Decimal `json:"amount"` // always positive; sign implied by EntryType
	TransactionID      string          `json:"transactionID"`
	PairedEntryID      *int64          `json:"pairedEntryID"` // the complementary entry of the pair
	SourceOwnerID      string          `json:"sourceOwnerID"` // economic direction, denormalized for audit
	DestinationOwnerID string          `json:"destinationOwnerID"`
	Description        string          `json:"description"`
	ReferenceNumber    string          `json:"referenceNumber"`
	Status             EntryStatus     `json:"status"`
	CreatedAt          time.Time       `json:"createdAt"`
	PostedAt           time.Time       `json:"postedAt"`
}

// SignedAmount is the entry's effect on its owner's balance: credits add,
// debits subtract.
func (e LedgerEntry) SignedAmount() decimal.Decimal {
	if e.EntryType == Credit {
		return e.Amount
	}
	return e.Amount.Neg()
}

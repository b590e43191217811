package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the database representation of a ledger row. Rows are
// append-only; the only post-insert mutation is the paired_entry_id backfill
// during pair creation.
type LedgerEntry struct {
	EntryID            int64
	OwnerID            string
	EntryType          string
	Amount             decimal.Decimal
	TransactionID      string
	PairedEntryID      *int64
	SourceOwnerID      string
	DestinationOwnerID string
	Description        string
	ReferenceNumber    string
	Status             string
	CreatedAt          time.Time
	PostedAt           time.Time
}

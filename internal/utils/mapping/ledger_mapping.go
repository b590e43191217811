package mapping

import (
	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/bankcore/bankledger/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:            d.EntryID,
		OwnerID:            d.OwnerID,
		EntryType:          string(d.EntryType),
		Amount:             d.Amount,
		TransactionID:      d.TransactionID,
		PairedEntryID:      d.PairedEntryID,
		SourceOwnerID:      d.SourceOwnerID,
		DestinationOwnerID: d.DestinationOwnerID,
		Description:        d.Description,
		ReferenceNumber:    d.ReferenceNumber,
		Status:             string(d.Status),
		CreatedAt:          d.CreatedAt,
		PostedAt:           d.PostedAt,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:            m.EntryID,
		OwnerID:            m.OwnerID,
		EntryType:          domain.EntryType(m.EntryType),
		Amount:             m.Amount,
		TransactionID:      m.TransactionID,
		PairedEntryID:      m.PairedEntryID,
		SourceOwnerID:      m.SourceOwnerID,
		DestinationOwnerID: m.DestinationOwnerID,
		Description:        m.Description,
		ReferenceNumber:    m.ReferenceNumber,
		Status:             domain.EntryStatus(m.Status),
		CreatedAt:          m.CreatedAt,
		PostedAt:           m.PostedAt,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

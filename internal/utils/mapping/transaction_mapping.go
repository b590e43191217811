package mapping

import (
	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/bankcore/bankledger/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		OwnerID:         d.OwnerID,
		AccountID:       d.AccountID,
		CounterpartyID:  d.CounterpartyID,
		Amount:          d.Amount,
		TransactionType: string(d.TransactionType),
		Direction:       string(d.Direction),
		Status:          string(d.Status),
		ReferenceNumber: d.ReferenceNumber,
		Description:     d.Description,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		OwnerID:         m.OwnerID,
		AccountID:       m.AccountID,
		CounterpartyID:  m.CounterpartyID,
		Amount:          m.Amount,
		TransactionType: domain.TransactionType(m.TransactionType),
		Direction:       domain.TransactionDirection(m.Direction),
		Status:          domain.TransactionStatus(m.Status),
		ReferenceNumber: m.ReferenceNumber,
		Description:     m.Description,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

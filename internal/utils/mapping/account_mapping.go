package mapping

import (
	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/bankcore/bankledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:     d.AccountID,
		AccountNumber: d.AccountNumber,
		OwnerID:       d.OwnerID,
		AccountType:   string(d.AccountType),
		CurrencyCode:  d.CurrencyCode,
		Status:        string(d.Status),
		Balance:       d.Balance,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:     m.AccountID,
		AccountNumber: m.AccountNumber,
		OwnerID:       m.OwnerID,
		AccountType:   domain.AccountType(m.AccountType),
		CurrencyCode:  m.CurrencyCode,
		Status:        domain.AccountStatus(m.Status),
		Balance:       m.Balance,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

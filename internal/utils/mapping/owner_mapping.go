package mapping

import (
	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/bankcore/bankledger/internal/models"
)

// ToModelOwner converts a domain Owner to a model Owner
func ToModelOwner(d domain.Owner) models.Owner {
	return models.Owner{
		OwnerID:     d.OwnerID,
		Name:        d.Name,
		Email:       d.Email,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOwner converts a model Owner to a domain Owner
func ToDomainOwner(m models.Owner) domain.Owner {
	return domain.Owner{
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Email:       m.Email,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

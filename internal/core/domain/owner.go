package domain

// SystemOwnerID is the distinguished system/reserve owner. Admin funding is
// modeled as a debit against this owner, which keeps the ledger zero-sum even
// when "the bank creates money". The system owner is exempt from overdraft
// checks but participates in pair creation like any other owner.
const SystemOwnerID = "OWNER-SYSTEM"

// Owner is a party that can hold accounts and appear on ledger entries.
type Owner struct {
	OwnerID  string `json:"ownerID"` // Primary Key
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// IsSystem reports whether this owner is the system/reserve owner.
func (o Owner) IsSystem() bool {
	return o.OwnerID == SystemOwnerID
}

package models

// Owner is the database representation of an owner row.
type Owner struct {
	OwnerID  string
	Name     string
	Email    string
	IsActive bool
	AuditFields
}

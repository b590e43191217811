package repositories

import (
	"context"

	"github.com/bankcore/bankledger/internal/core/domain"
)

// OwnerReader defines read operations for the owner directory
type OwnerReader interface {
	// FindOwnerByID retrieves a specific owner by its unique identifier.
	FindOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error)

	// ListOwnerIDs returns the IDs of all owners.
	ListOwnerIDs(ctx context.Context) ([]string, error)
}

// OwnerWriter defines write operations for the owner directory
type OwnerWriter interface {
	// SaveOwner persists a new owner.
	SaveOwner(ctx context.Context, owner domain.Owner) error
}

// OwnerRepositoryFacade combines all owner-related repository interfaces
type OwnerRepositoryFacade interface {
	OwnerReader
	OwnerWriter
}

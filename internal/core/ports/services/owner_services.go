package services

import (
	"context"

	"github.com/bankcore/bankledger/internal/core/domain"
	"github.com/bankcore/bankledger/internal/dto"
)

// OwnerReaderSvc defines read operations on the owner directory
type OwnerReaderSvc interface {
	// GetOwnerByID retrieves an owner by ID.
	GetOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error)
}

// OwnerWriterSvc defines write operations on the owner directory
type OwnerWriterSvc interface {
	// CreateOwner registers a new owner with a default account.
	CreateOwner(ctx context.Context, req dto.CreateOwnerRequest) (*domain.Owner, error)

	// EnsureAccount returns the owner's account of the given type, creating
	// it lazily with a zero starting balance when absent.
	EnsureAccount(ctx context.Context, ownerID string, accountType domain.AccountType) (*domain.Account, error)
}

// OwnerSvcFacade combines all owner service interfaces
type OwnerSvcFacade interface {
	OwnerReaderSvc
	OwnerWriterSvc
}

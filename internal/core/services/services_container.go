package services

import (
	portsrepo "github.com/bankcore/bankledger/internal/core/ports/repositories"
	portssvc "github.com/bankcore/bankledger/internal/core/ports/services"
	"github.com/bankcore/bankledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Owner = NewOwnerService(repos.OwnerRepo, repos.AccountRepo)
	container.Posting = NewPostingService(repos.LedgerRepo, repos.OwnerRepo)
	container.Balance = NewBalanceService(repos.LedgerRepo, repos.AccountRepo, cfg.ReconcileTolerance)
	container.Reconciliation = NewReconciliationService(repos.LedgerRepo, cfg.ReconcileTolerance)
	container.Gate = NewGateService(
		repos.TransactionRepo,
		repos.OwnerRepo,
		repos.AccountRepo,
		repos.LedgerRepo,
		cfg.ReconcileTolerance,
		cfg.BlockedVisibleToOwner,
	)

	return container
}

// Compile-time interface checks
var (
	_ portssvc.OwnerSvcFacade          = (*ownerService)(nil)
	_ portssvc.PostingSvcFacade        = (*postingService)(nil)
	_ portssvc.BalanceSvcFacade        = (*balanceService)(nil)
	_ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)
	_ portssvc.GateSvcFacade           = (*gateService)(nil)
)

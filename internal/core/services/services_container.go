package services

import (
	"github.com/SscSPs/bank_account_manager/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_account_manager/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bank_account_manager/internal/core/ports/services"
	"github.com/SscSPs/bank_account_manager/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, clock domain.Clock) *portssvc.ServiceContainer {
	options := []ServiceOption{
		WithAccountDefaults(cfg.Accounts),
		WithEventPublisher(repos.Events),
	}
	if clock != nil {
		options = append(options, WithClock(clock))
	}

	return &portssvc.ServiceContainer{
		Account: NewAccountServiceImpl(repos.AccountRepo, options...),
	}
}

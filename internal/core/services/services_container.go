package services

import (
	portsrepo "github.com/salespulse/sales_pulse_app/internal/core/ports/repositories"
	portssvc "github.com/salespulse/sales_pulse_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, broadcaster portssvc.TransactionBroadcaster) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The exchange-rate table is initialized first since transaction
	// validation and analytics both depend on it.
	container.Currency = NewExchangeRateService()
	container.Transaction = NewTransactionService(repos.TransactionRepo, container.Currency, broadcaster)

	return container
}

package services

import (
	"github.com/SscSPs/shop_pos_app/internal/core/creditledger"
	portsrepo "github.com/SscSPs/shop_pos_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/shop_pos_app/internal/core/ports/services"
	"github.com/SscSPs/shop_pos_app/internal/core/pricing"
	"github.com/SscSPs/shop_pos_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// events may be nil.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, events EventTracker) *portssvc.ServiceContainer {
	rates := pricing.Rates{ServiceCharge: cfg.ServiceCharge, TaxRate: cfg.TaxRate}

	checkoutOpts := []CheckoutOption{WithRates(rates)}
	creditOpts := []CreditOption{WithShop(creditledger.Shop{Name: cfg.ShopName, Phone: cfg.ShopPhone})}
	if events != nil {
		checkoutOpts = append(checkoutOpts, WithCheckoutEvents(events))
		creditOpts = append(creditOpts, WithCreditEvents(events))
	}

	return &portssvc.ServiceContainer{
		Catalog:    NewCatalogService(repos.ProductRepo, cfg.LowStockThreshold),
		Checkout:   NewCheckoutService(repos, checkoutOpts...),
		Credit:     NewCreditService(repos, creditOpts...),
		Dashboard:  NewDashboardService(repos, cfg.LowStockThreshold),
		Reports:    NewReportService(repos),
		Categories: NewCategoryService(repos),
		Locations:  NewLocationService(repos),
		Employees:  NewEmployeeService(repos, events),
		Auth:       NewAuthService(cfg),
	}
}

package repositories

import (
	"context"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// AccountRepository provides access to the per-tenant chart of accounts.
type AccountRepository interface {
	// SeedDefaultAccounts inserts the default chart for the tenant. Idempotent:
	// accounts that already exist are left untouched.
	SeedDefaultAccounts(ctx context.Context, tenantID string) error
	ListAccounts(ctx context.Context, tenantID string) ([]domain.Account, error)
	FindAccountByCode(ctx context.Context, tenantID, code string) (*domain.Account, error)
}

package mapping

import (
	"github.com/factoryops/factory_books_app/internal/core/domain"
	"github.com/factoryops/factory_books_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(tenantID string, d domain.Account) models.Account {
	return models.Account{
		Code:       d.Code,
		TenantID:   tenantID,
		Name:       d.Name,
		Type:       models.AccountType(d.Type),
		NormalSide: models.NormalSide(d.NormalSide),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		Code:       m.Code,
		Name:       m.Name,
		Type:       domain.AccountType(m.Type),
		NormalSide: domain.NormalSide(m.NormalSide),
	}
}

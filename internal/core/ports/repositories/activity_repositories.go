package repositories

import (
	"context"

	"github.com/factoryops/factory_books_app/internal/core/domain"
)

// ActivityRepository appends activity log records.
type ActivityRepository interface {
	SaveActivity(ctx context.Context, activity domain.Activity) error
}

package mapping

import (
	"github.com/factoryops/factory_books_app/internal/core/domain"
	"github.com/factoryops/factory_books_app/internal/models"
)

// ToModelActivity converts a domain Activity to a model Activity
func ToModelActivity(d domain.Activity) models.Activity {
	return models.Activity{
		ActivityID:  d.ActivityID,
		TenantID:    d.TenantID,
		Action:      d.Action,
		Module:      d.Module,
		TargetID:    d.TargetID,
		UserID:      d.UserID,
		Description: d.Description,
		Metadata:    d.Metadata,
		OccurredAt:  d.OccurredAt,
	}
}

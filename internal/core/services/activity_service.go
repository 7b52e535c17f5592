package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/factoryops/factory_books_app/internal/core/domain"
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	portssvc "github.com/factoryops/factory_books_app/internal/core/ports/services"
)

// activityService appends activity log records. Writes are fire-and-forget:
// they sit outside every atomicity guarantee and a failed write must never
// fail the business operation that produced it.
type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activityRepo portsrepo.ActivityRepository) portssvc.ActivitySvcFacade {
	return &activityService{activityRepo: activityRepo}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

func (s *activityService) Record(ctx context.Context, activity domain.Activity) {
	if activity.ActivityID == "" {
		activity.ActivityID = uuid.NewString()
	}
	if activity.OccurredAt.IsZero() {
		activity.OccurredAt = time.Now().UTC()
	}

	if err := s.activityRepo.SaveActivity(ctx, activity); err != nil {
		s.LogWarn(ctx, "Failed to record activity",
			slog.String("action", activity.Action),
			slog.String("module", activity.Module),
			slog.String("target_id", activity.TargetID),
			slog.String("error", err.Error()))
	}
}

package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/factoryops/factory_books_app/internal/apperrors"
	"github.com/factoryops/factory_books_app/internal/core/domain"
	portsrepo "github.com/factoryops/factory_books_app/internal/core/ports/repositories"
	"github.com/factoryops/factory_books_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActivityRepository struct {
	BaseRepository
}

// newPgxActivityRepository creates a new repository for activity log data.
func newPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityRepository {
	return &PgxActivityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxActivityRepository implements portsrepo.ActivityRepository
var _ portsrepo.ActivityRepository = (*PgxActivityRepository)(nil)

// SaveActivity appends one activity log record.
func (r *PgxActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	m := mapping.ToModelActivity(activity)

	var metadata []byte
	if len(m.Metadata) > 0 {
		var err error
		metadata, err = json.Marshal(m.Metadata)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal activity metadata: %v", apperrors.ErrValidation, err)
		}
	}

	query := `
		INSERT INTO activity_logs (activity_id, tenant_id, action, module, target_id, user_id, description, metadata, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ActivityID, m.TenantID, m.Action, m.Module, m.TargetID, m.UserID, m.Description, metadata, m.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to save activity %s: %v", apperrors.ErrPersistence, m.ActivityID, err)
	}
	return nil
}

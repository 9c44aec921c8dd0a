package repository

import (
	"context"

	"farecast-service/internal/domain/entity"
)

// QueryLogRepository records completed lookups for demand analysis and model
// retraining. Recording is best-effort; callers log failures and move on.
type QueryLogRepository interface {
	Insert(ctx context.Context, log *entity.QueryLog) error
}

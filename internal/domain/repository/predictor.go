package repository

import (
	"context"

	"farecast-service/internal/domain/entity"
)

// Predictor is a trained regression model exposed by the model server. The
// feature schema is fixed by contract at startup; a predict failure signals a
// configuration defect, not a per-record condition.
type Predictor interface {
	// Predict returns one price per feature vector, in input order.
	Predict(ctx context.Context, features []entity.FeatureVector) ([]float64, error)
}

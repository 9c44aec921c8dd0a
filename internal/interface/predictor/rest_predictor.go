package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"farecast-service/internal/domain/entity"
	"farecast-service/internal/domain/repository"
)

// RESTPredictor invokes one named regression model on the model-serving
// endpoint. Two instances are wired at startup: the base fare model and the
// holiday-specialized one.
type RESTPredictor struct {
	baseURL   string
	modelName string
	client    *http.Client
}

// NewRESTPredictor creates a predictor bound to one model name.
func NewRESTPredictor(baseURL, modelName string, timeout time.Duration) *RESTPredictor {
	return &RESTPredictor{
		baseURL:   baseURL,
		modelName: modelName,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type predictRequest struct {
	ModelName string                 `json:"model_name"`
	Features  []entity.FeatureVector `json:"features"`
}

type predictResponse struct {
	Predictions []float64 `json:"predictions"`
	ModelUsed   string    `json:"model_used"`
}

// Predict sends the feature batch to the model server and returns one price
// per vector, in input order.
func (p *RESTPredictor) Predict(ctx context.Context, features []entity.FeatureVector) ([]float64, error) {
	if len(features) == 0 {
		return []float64{}, nil
	}

	body, err := json.Marshal(predictRequest{
		ModelName: p.modelName,
		Features:  features,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/predict", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("model server request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model server returned status %d for model %s", resp.StatusCode, p.modelName)
	}

	var predResp predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&predResp); err != nil {
		return nil, fmt.Errorf("failed to decode predict response: %w", err)
	}

	if len(predResp.Predictions) != len(features) {
		return nil, fmt.Errorf("model %s returned %d predictions for %d features",
			p.modelName, len(predResp.Predictions), len(features))
	}

	return predResp.Predictions, nil
}

// Ping verifies the model is loaded on the server. Called once at startup;
// a failure here is a configuration defect and is fatal.
func (p *RESTPredictor) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/models/%s", p.baseURL, p.modelName), nil)
	if err != nil {
		return fmt.Errorf("failed to create model check request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("model server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model %s not available: status %d", p.modelName, resp.StatusCode)
	}
	return nil
}

var _ repository.Predictor = (*RESTPredictor)(nil)

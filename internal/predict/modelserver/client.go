package modelserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"campus-backend/internal/features"
	"campus-backend/internal/predict"
	"campus-backend/internal/shared/telemetry"
)

// Client implements predict.Predictor against a model-serving HTTP
// endpoint that exposes the frozen classifier and regressor.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a model server client.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("model base url is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type predictRequest struct {
	Columns []string  `json:"columns"`
	Values  []float64 `json:"values"`
}

type recommendResponse struct {
	Label       *bool    `json:"label"`
	Probability *float64 `json:"probability"`
	Error       string   `json:"error,omitempty"`
}

type satisfactionResponse struct {
	Score *float64 `json:"score"`
	Error string   `json:"error,omitempty"`
}

// PredictRecommend calls the classifier endpoint.
func (c *Client) PredictRecommend(ctx context.Context, v features.Vector) (bool, float64, error) {
	var resp recommendResponse
	if err := c.post(ctx, "/predict/recommend", v, &resp); err != nil {
		return false, 0, err
	}
	if resp.Error != "" || resp.Label == nil || resp.Probability == nil {
		return false, 0, fmt.Errorf("%w: malformed classifier response", predict.ErrUnavailable)
	}
	return *resp.Label, *resp.Probability, nil
}

// PredictSatisfaction calls the regressor endpoint.
func (c *Client) PredictSatisfaction(ctx context.Context, v features.Vector) (float64, error) {
	var resp satisfactionResponse
	if err := c.post(ctx, "/predict/satisfaction", v, &resp); err != nil {
		return 0, err
	}
	if resp.Error != "" || resp.Score == nil {
		return 0, fmt.Errorf("%w: malformed regressor response", predict.ErrUnavailable)
	}
	return *resp.Score, nil
}

func (c *Client) post(ctx context.Context, path string, v features.Vector, out any) error {
	payload, err := json.Marshal(predictRequest{Columns: features.FeatureColumns, Values: v})
	if err != nil {
		return fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		telemetry.Error("modelserver.call_failed", map[string]any{
			"path":        path,
			"error":       err.Error(),
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000.0,
		})
		return fmt.Errorf("%w: %v", predict.ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("%w: read response: %v", predict.ErrUnavailable, err)
	}
	if httpResp.StatusCode != http.StatusOK {
		telemetry.Error("modelserver.bad_status", map[string]any{
			"path":   path,
			"status": httpResp.StatusCode,
		})
		return fmt.Errorf("%w: model server returned %d", predict.ErrUnavailable, httpResp.StatusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", predict.ErrUnavailable, err)
	}
	return nil
}

var _ predict.Predictor = (*Client)(nil)

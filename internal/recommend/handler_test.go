package recommend

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"campus-backend/internal/features"
	"campus-backend/internal/feedback"
	"campus-backend/internal/predict"
)

func newTestRouter(p predict.Predictor, store feedback.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	builder := features.NewBuilder(features.DefaultVocabulary(), rand.New(rand.NewSource(1)))
	h := NewHandler(NewRanker(builder, p), store)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func requestStudent() map[string]any {
	return map[string]any{
		"branch":     "CSE",
		"year":       2,
		"gender":     "Male",
		"skillLevel": "Intermediate",
	}
}

func requestEvent(name, typ string) map[string]any {
	return map[string]any{
		"name":         name,
		"type":         typ,
		"level":        "National",
		"durationDays": 2,
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	predictor := &stubPredictor{scores: map[float64]stubScore{
		hacksetuCode:   {label: true, probability: 0.9, satisfaction: 8.3},
		codeSprintCode: {label: true, probability: 0.6, satisfaction: 7.1},
	}}
	router := newTestRouter(predictor, feedback.NewMemoryStore(nil))

	resp := postJSON(t, router, "/api/v1/recommendations", map[string]any{
		"student": requestStudent(),
		"events": []map[string]any{
			requestEvent("Code Sprint", "Technical"),
			requestEvent("Hacksetu", "Hackathon"),
		},
		"priorRatings": map[string]any{"venueRating": 7.5},
		"topN":         1,
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Recommendations []Ranked `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Recommendations) != 1 {
		t.Fatalf("expected topN=1 result, got %d", len(body.Recommendations))
	}
	got := body.Recommendations[0]
	if got.Event.Name != "Hacksetu" || got.RecommendationText != "Highly Recommended" {
		t.Fatalf("unexpected top result: %+v", got)
	}
}

func TestRecommendationsUnknownCategory(t *testing.T) {
	router := newTestRouter(&stubPredictor{scores: map[float64]stubScore{}}, feedback.NewMemoryStore(nil))

	resp := postJSON(t, router, "/api/v1/recommendations", map[string]any{
		"student": requestStudent(),
		"events":  []map[string]any{requestEvent("Hacksetu", "Webinar")},
	})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}

	var body struct {
		Error struct {
			Code    string              `json:"code"`
			Details []map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error.Code != "unknown_category" {
		t.Fatalf("error code = %q, want unknown_category", body.Error.Code)
	}
	if len(body.Error.Details) != 1 || body.Error.Details[0]["field"] != "event_type" || body.Error.Details[0]["value"] != "Webinar" {
		t.Fatalf("unexpected details: %v", body.Error.Details)
	}
}

func TestPredictionsModelNotConfigured(t *testing.T) {
	router := newTestRouter(predict.Placeholder{}, feedback.NewMemoryStore(nil))

	resp := postJSON(t, router, "/api/v1/predictions", map[string]any{
		"student": requestStudent(),
		"event":   requestEvent("Hacksetu", "Hackathon"),
	})
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", resp.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error.Code != "model_not_configured" {
		t.Fatalf("error code = %q, want model_not_configured", body.Error.Code)
	}
}

func TestPredictionsModelUnavailable(t *testing.T) {
	predictor := &stubPredictor{err: predict.ErrUnavailable}
	router := newTestRouter(predictor, feedback.NewMemoryStore(nil))

	resp := postJSON(t, router, "/api/v1/predictions", map[string]any{
		"student": requestStudent(),
		"event":   requestEvent("Hacksetu", "Hackathon"),
	})
	if resp.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.Code)
	}
}

func TestInsightsEndpoint(t *testing.T) {
	history := []feedback.Record{{
		StudentID: "S001", EventName: "Hacksetu", EventType: "Hackathon",
		OverallSatisfaction: 8.5, WouldRecommend: true,
		VenueRating: 8, OrganizationRating: 8, ContentQuality: 8,
		MentorSupport: 8, FoodQuality: 8, Infrastructure: 8,
	}}
	router := newTestRouter(&stubPredictor{}, feedback.NewMemoryStore(history))

	resp := postJSON(t, router, "/api/v1/insights", map[string]any{"studentId": "S001"})
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	var body Insights
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.TotalEventsAttended != 1 || body.BestEvent != "Hacksetu" {
		t.Fatalf("unexpected insights: %+v", body)
	}
}

func TestInsightsUnknownStudent(t *testing.T) {
	router := newTestRouter(&stubPredictor{}, feedback.NewMemoryStore(nil))

	resp := postJSON(t, router, "/api/v1/insights", map[string]any{"studentId": "nobody"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.Code)
	}
}

func TestInsightsRequiresStudentID(t *testing.T) {
	router := newTestRouter(&stubPredictor{}, feedback.NewMemoryStore(nil))

	resp := postJSON(t, router, "/api/v1/insights", map[string]any{})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.Code)
	}
}

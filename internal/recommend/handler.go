package recommend

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/internal/features"
	"campus-backend/internal/feedback"
	"campus-backend/internal/predict"
	"campus-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the ranker and the feedback corpus.
type Handler struct {
	Ranker   *Ranker
	Feedback feedback.Store
}

// NewHandler constructs a Handler.
func NewHandler(ranker *Ranker, store feedback.Store) *Handler {
	return &Handler{Ranker: ranker, Feedback: store}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.getRecommendations)
	rg.POST("/predictions", h.predictSingleEvent)
	rg.POST("/insights", h.getInsights)
}

type studentPayload struct {
	Branch                string `json:"branch"`
	Year                  int    `json:"year"`
	Gender                string `json:"gender"`
	SkillLevel            string `json:"skillLevel"`
	Age                   int    `json:"age"`
	PreviousParticipation string `json:"previousParticipation"`
	TeamSize              int    `json:"teamSize"`
	ParticipatedAlone     bool   `json:"participatedAlone"`
	Achievement           string `json:"achievement"`
}

func (p studentPayload) profile() features.StudentProfile {
	return features.StudentProfile{
		Branch:                p.Branch,
		Year:                  p.Year,
		Gender:                p.Gender,
		SkillLevel:            p.SkillLevel,
		Age:                   p.Age,
		PreviousParticipation: p.PreviousParticipation,
		TeamSize:              p.TeamSize,
		ParticipatedAlone:     p.ParticipatedAlone,
		Achievement:           p.Achievement,
	}
}

type eventPayload struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Level        string `json:"level"`
	DurationDays int    `json:"durationDays"`
	Description  string `json:"description"`
	Date         string `json:"date"`
}

func (p eventPayload) descriptor() features.EventDescriptor {
	return features.EventDescriptor{
		Name:         p.Name,
		Type:         p.Type,
		Level:        p.Level,
		DurationDays: p.DurationDays,
		Description:  p.Description,
		Date:         p.Date,
	}
}

type priorRatingsPayload struct {
	VenueRating             float64 `json:"venueRating"`
	OrganizationRating      float64 `json:"organizationRating"`
	ContentQuality          float64 `json:"contentQuality"`
	MentorSupport           float64 `json:"mentorSupport"`
	FoodQuality             float64 `json:"foodQuality"`
	PrizeSatisfaction       float64 `json:"prizeSatisfaction"`
	NetworkingOpportunities float64 `json:"networkingOpportunities"`
	TimeManagement          float64 `json:"timeManagement"`
	Infrastructure          float64 `json:"infrastructure"`
	RegistrationProcess     float64 `json:"registrationProcess"`
	LearningOutcome         float64 `json:"learningOutcome"`
}

func (p *priorRatingsPayload) ratings() *features.PriorRatings {
	if p == nil {
		return nil
	}
	return &features.PriorRatings{
		VenueRating:             p.VenueRating,
		OrganizationRating:      p.OrganizationRating,
		ContentQuality:          p.ContentQuality,
		MentorSupport:           p.MentorSupport,
		FoodQuality:             p.FoodQuality,
		PrizeSatisfaction:       p.PrizeSatisfaction,
		NetworkingOpportunities: p.NetworkingOpportunities,
		TimeManagement:          p.TimeManagement,
		Infrastructure:          p.Infrastructure,
		RegistrationProcess:     p.RegistrationProcess,
		LearningOutcome:         p.LearningOutcome,
	}
}

func (h *Handler) getRecommendations(c *gin.Context) {
	var req struct {
		Student      studentPayload       `json:"student"`
		Events       []eventPayload       `json:"events"`
		PriorRatings *priorRatingsPayload `json:"priorRatings"`
		TopN         *int                 `json:"topN"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	topN := 5
	if req.TopN != nil {
		topN = *req.TopN
	}
	candidates := make([]features.EventDescriptor, 0, len(req.Events))
	for _, e := range req.Events {
		candidates = append(candidates, e.descriptor())
	}

	ranked, err := h.Ranker.Rank(c.Request.Context(), req.Student.profile(), candidates, req.PriorRatings.ratings(), topN)
	if err != nil {
		respondRankError(c, err)
		return
	}
	respond.OK(c, gin.H{"recommendations": ranked})
}

func (h *Handler) predictSingleEvent(c *gin.Context) {
	var req struct {
		Student      studentPayload       `json:"student"`
		Event        eventPayload         `json:"event"`
		PriorRatings *priorRatingsPayload `json:"priorRatings"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	c.Set("eventName", req.Event.Name)

	prediction, err := h.Ranker.PredictOne(c.Request.Context(), req.Student.profile(), req.Event.descriptor(), req.PriorRatings.ratings())
	if err != nil {
		respondRankError(c, err)
		return
	}
	respond.OK(c, prediction)
}

func (h *Handler) getInsights(c *gin.Context) {
	var req struct {
		StudentID string `json:"studentId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.StudentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "studentId is required", nil)
		return
	}
	c.Set("studentId", req.StudentID)

	history, err := h.Feedback.ListByStudent(c.Request.Context(), req.StudentID)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no feedback history for student", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load feedback history", nil)
		}
		return
	}
	respond.OK(c, InsightsFromHistory(history))
}

func respondRankError(c *gin.Context, err error) {
	var unknown *features.UnknownCategoryError
	switch {
	case errors.As(err, &unknown):
		respond.Error(c, http.StatusBadRequest, "unknown_category", unknown.Error(), []map[string]string{
			{"field": unknown.Field, "value": unknown.Value},
		})
	case errors.Is(err, features.ErrValidation):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, predict.ErrNotConfigured):
		respond.Error(c, http.StatusServiceUnavailable, "model_not_configured", "predictive model is not configured", nil)
	case errors.Is(err, predict.ErrUnavailable):
		respond.Error(c, http.StatusBadGateway, "model_unavailable", "prediction unavailable, try again later", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to score events", nil)
	}
}

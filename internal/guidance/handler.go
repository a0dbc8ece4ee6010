package guidance

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/internal/features"
	"campus-backend/internal/feedback"
	"campus-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the guidance composer.
type Handler struct {
	Feedback feedback.Store
}

// NewHandler constructs a Handler.
func NewHandler(store feedback.Store) *Handler {
	return &Handler{Feedback: store}
}

// RegisterRoutes attaches guidance routes to the router group. The
// aggregate route shares the /events/:id prefix with the catalog
// handler; for this route the path segment carries the event name,
// since the historical corpus predates catalog ids.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/guidance", h.getGuidance)
	rg.GET("/events/:id/aggregate", h.getEventAggregate)
}

func (h *Handler) getGuidance(c *gin.Context) {
	var req struct {
		Student struct {
			Branch     string `json:"branch"`
			Year       int    `json:"year"`
			Gender     string `json:"gender"`
			SkillLevel string `json:"skillLevel"`
		} `json:"student"`
		EventName string `json:"eventName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.EventName == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "eventName is required", nil)
		return
	}
	c.Set("eventName", req.EventName)

	student := features.StudentProfile{
		Branch:     req.Student.Branch,
		Year:       req.Student.Year,
		Gender:     req.Student.Gender,
		SkillLevel: req.Student.SkillLevel,
	}

	report, err := Guide(c.Request.Context(), h.Feedback, student, req.EventName)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no historical data for event", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compose guidance", nil)
		}
		return
	}
	respond.OK(c, report)
}

func (h *Handler) getEventAggregate(c *gin.Context) {
	eventName := c.Param("id")
	if eventName == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "event name is required", nil)
		return
	}
	c.Set("eventName", eventName)

	agg, err := Aggregate(c.Request.Context(), h.Feedback, eventName)
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "no historical data for event", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to aggregate event", nil)
		}
		return
	}
	respond.OK(c, agg)
}

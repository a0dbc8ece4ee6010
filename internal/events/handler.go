package events

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/internal/features"
	"campus-backend/internal/shared/server/middleware"
	"campus-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the events service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches event catalog routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.listEvents)
	rg.GET("/events/stats", h.getStats)
	rg.GET("/events/:id", h.getEvent)
	rg.POST("/events", h.createEvent)
	rg.PUT("/events/:id", h.updateEvent)
	rg.DELETE("/events/:id", h.deleteEvent)
	rg.POST("/events/:id/register", h.registerForEvent)
}

type eventPayload struct {
	Name            string `json:"name"`
	Type            string `json:"type"`
	Level           string `json:"level"`
	DurationDays    int    `json:"durationDays"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Location        string `json:"location"`
	MaxParticipants int    `json:"maxParticipants"`
	Prizes          string `json:"prizes"`
	Organizer       string `json:"organizer"`
	Contact         string `json:"contact"`
}

func (p eventPayload) event() Event {
	return Event{
		Name:            p.Name,
		Type:            p.Type,
		Level:           p.Level,
		DurationDays:    p.DurationDays,
		Description:     p.Description,
		Date:            p.Date,
		Location:        p.Location,
		MaxParticipants: p.MaxParticipants,
		Prizes:          p.Prizes,
		Organizer:       p.Organizer,
		Contact:         p.Contact,
	}
}

func (h *Handler) listEvents(c *gin.Context) {
	all, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list events", nil)
		return
	}
	if all == nil {
		all = []Event{}
	}
	respond.OK(c, gin.H{"events": all, "total": len(all)})
}

func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute stats", nil)
		return
	}
	respond.OK(c, stats)
}

func (h *Handler) getEvent(c *gin.Context) {
	event, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "event not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch event", nil)
		}
		return
	}
	respond.OK(c, event)
}

func (h *Handler) createEvent(c *gin.Context) {
	var payload eventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	event, err := h.Svc.Create(c.Request.Context(), payload.event())
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateName):
			respond.Error(c, http.StatusConflict, "duplicate_name", "an event with this name already exists", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.Created(c, event)
}

func (h *Handler) updateEvent(c *gin.Context) {
	var payload eventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	event := payload.event()
	event.ID = c.Param("id")

	updated, err := h.Svc.Update(c.Request.Context(), event)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "event not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, updated)
}

func (h *Handler) deleteEvent(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "event not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete event", nil)
		}
		return
	}
	respond.OK(c, gin.H{"message": "event deleted"})
}

func (h *Handler) registerForEvent(c *gin.Context) {
	var req struct {
		Branch     string `json:"branch"`
		Year       int    `json:"year"`
		Gender     string `json:"gender"`
		SkillLevel string `json:"skillLevel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	student := features.StudentProfile{
		Branch:     req.Branch,
		Year:       req.Year,
		Gender:     req.Gender,
		SkillLevel: req.SkillLevel,
	}
	studentID := middleware.UserIDFromContext(c)
	requestID := c.GetString("requestId")

	reg, err := h.Svc.Register(c.Request.Context(), c.Param("id"), studentID, requestID, student)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "event not found", nil)
		case errors.Is(err, ErrFull):
			respond.Error(c, http.StatusConflict, "event_full", "event has reached its participant limit", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to register", nil)
		}
		return
	}
	respond.OK(c, gin.H{
		"message":      "Successfully registered for " + reg.Event.Name,
		"registration": reg,
	})
}

package campus

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"campus-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the campus service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches campus memory routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	colleges := rg.Group("/colleges/:collegeID")
	colleges.GET("/problems", h.listProblems)
	colleges.POST("/problems", h.createProblem)
	colleges.PUT("/problems/:problemID", h.updateProblem)
	colleges.DELETE("/problems/:problemID", h.deleteProblem)
	colleges.GET("/wisdom", h.listWisdom)
	colleges.POST("/wisdom", h.createWisdom)
	colleges.GET("/alerts", h.listAlerts)
	colleges.POST("/alerts", h.createAlert)
	colleges.GET("/analytics", h.getAnalytics)
}

func (h *Handler) listProblems(c *gin.Context) {
	problems, err := h.Svc.ListProblems(c.Request.Context(), c.Param("collegeID"), c.Query("category"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list problems", nil)
		return
	}
	if problems == nil {
		problems = []Problem{}
	}
	respond.OK(c, gin.H{"problems": problems, "total": len(problems)})
}

func (h *Handler) createProblem(c *gin.Context) {
	var p Problem
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	p.CollegeID = c.Param("collegeID")

	created, err := h.Svc.ReportProblem(c.Request.Context(), p)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.Created(c, gin.H{"problem": created})
}

func (h *Handler) updateProblem(c *gin.Context) {
	var p Problem
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	p.ID = c.Param("problemID")
	p.CollegeID = c.Param("collegeID")

	updated, err := h.Svc.UpdateProblem(c.Request.Context(), p)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "problem not found", nil)
		default:
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		}
		return
	}
	respond.OK(c, gin.H{"problem": updated})
}

func (h *Handler) deleteProblem(c *gin.Context) {
	if err := h.Svc.DeleteProblem(c.Request.Context(), c.Param("collegeID"), c.Param("problemID")); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete problem", nil)
		return
	}
	respond.OK(c, gin.H{"message": "problem deleted"})
}

func (h *Handler) listWisdom(c *gin.Context) {
	wisdom, err := h.Svc.ListWisdom(c.Request.Context(), c.Param("collegeID"), c.Query("category"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list wisdom", nil)
		return
	}
	if wisdom == nil {
		wisdom = []WisdomTip{}
	}
	respond.OK(c, gin.H{"wisdom": wisdom, "total": len(wisdom)})
}

func (h *Handler) createWisdom(c *gin.Context) {
	var w WisdomTip
	if err := c.ShouldBindJSON(&w); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	w.CollegeID = c.Param("collegeID")

	created, err := h.Svc.ShareWisdom(c.Request.Context(), w)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.Created(c, gin.H{"wisdom": created})
}

func (h *Handler) listAlerts(c *gin.Context) {
	alerts, err := h.Svc.ListAlerts(c.Request.Context(), c.Param("collegeID"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list alerts", nil)
		return
	}
	if alerts == nil {
		alerts = []Alert{}
	}
	respond.OK(c, gin.H{"alerts": alerts, "total": len(alerts)})
}

func (h *Handler) createAlert(c *gin.Context) {
	var a Alert
	if err := c.ShouldBindJSON(&a); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	a.CollegeID = c.Param("collegeID")

	created, err := h.Svc.CreateAlert(c.Request.Context(), a)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.Created(c, gin.H{"alert": created})
}

func (h *Handler) getAnalytics(c *gin.Context) {
	analytics, err := h.Svc.Analytics(c.Request.Context(), c.Param("collegeID"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to compute analytics", nil)
		return
	}
	respond.OK(c, gin.H{"analytics": analytics})
}

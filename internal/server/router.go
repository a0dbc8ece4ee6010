package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	googleauth "campus-backend/internal/auth"
	"campus-backend/internal/campus"
	"campus-backend/internal/events"
	"campus-backend/internal/guidance"
	"campus-backend/internal/recommend"
	"campus-backend/internal/shared/config"
	"campus-backend/internal/shared/server/middleware"
	"campus-backend/internal/shared/server/respond"
	"campus-backend/internal/users"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	RecommendHandler *recommend.Handler
	GuidanceHandler  *guidance.Handler
	EventsHandler    *events.Handler
	CampusHandler    *campus.Handler
	UsersHandler     *users.Handler
	GoogleAuth       *googleauth.GoogleService
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
		middleware.RateLimit(rateLimitConfig()),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.RecommendHandler != nil {
		deps.RecommendHandler.RegisterRoutes(api)
	}
	if deps.GuidanceHandler != nil {
		deps.GuidanceHandler.RegisterRoutes(api)
	}
	if deps.EventsHandler != nil {
		deps.EventsHandler.RegisterRoutes(api)
	}
	if deps.CampusHandler != nil {
		deps.CampusHandler.RegisterRoutes(api)
	}

	return r
}

// rateLimitConfig throttles the model-backed scoring routes; catalog
// and campus CRUD stay unthrottled.
func rateLimitConfig() middleware.RateLimitConfig {
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"SCORING": {Rate: 2, Burst: 10},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method != http.MethodPost {
				return ""
			}
			path := c.Request.URL.Path
			switch {
			case strings.HasPrefix(path, "/api/v1/recommendations"),
				strings.HasPrefix(path, "/api/v1/predictions"),
				strings.HasPrefix(path, "/api/v1/guidance"):
				return "SCORING"
			}
			return ""
		},
	}
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

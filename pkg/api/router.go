package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcusvinicius1er/Reach-online/pkg/middleware"
	"github.com/marcusvinicius1er/Reach-online/pkg/models"
	"github.com/marcusvinicius1er/Reach-online/pkg/origin"
)

// NewRouter wires the routing table. The submission endpoint is reachable
// at both "/" and "/submit"; preflight requests are answered by the CORS
// middleware on any path; everything else is 405.
func NewRouter(h *Handlers, policy *origin.Policy) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(policy))

	router.HandleMethodNotAllowed = true
	router.NoMethod(methodNotAllowed)
	router.NoRoute(methodNotAllowed)

	router.POST("/", h.HandleSubmission)
	router.POST("/submit", h.HandleSubmission)
	router.POST("/admin/auth", h.HandleAdminAuth)
	router.GET("/health", h.HealthCheck)
	router.GET("/pricing", h.Pricing)

	return router
}

func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
}

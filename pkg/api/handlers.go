package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/marcusvinicius1er/Reach-online/pkg/clients/airtable"
	"github.com/marcusvinicius1er/Reach-online/pkg/config"
	"github.com/marcusvinicius1er/Reach-online/pkg/middleware"
	"github.com/marcusvinicius1er/Reach-online/pkg/models"
	"github.com/marcusvinicius1er/Reach-online/pkg/origin"
	"github.com/marcusvinicius1er/Reach-online/pkg/ratelimit"
	"github.com/marcusvinicius1er/Reach-online/pkg/sanitize"
	"github.com/marcusvinicius1er/Reach-online/pkg/services"
)

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	submissionService services.SubmissionService
	authService       *services.AuthService
	policy            *origin.Policy
	limiter           *ratelimit.Limiter
	config            *config.Config
	log               *logrus.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	submissionService services.SubmissionService,
	authService *services.AuthService,
	policy *origin.Policy,
	limiter *ratelimit.Limiter,
	config *config.Config,
	log *logrus.Logger,
) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		authService:       authService,
		policy:            policy,
		limiter:           limiter,
		config:            config,
		log:               log,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Pricing serves the promotional-pricing configuration for the site.
func (h *Handlers) Pricing(c *gin.Context) {
	c.JSON(http.StatusOK, config.PromoPricing())
}

// HandleSubmission runs the full submission pipeline: origin policy, rate
// limit, validation, sanitization, then the upstream forward. Each stage
// short-circuits with a terminal JSON error; a record is only sanitized
// after every earlier stage passed.
func (h *Handlers) HandleSubmission(c *gin.Context) {
	reqOrigin := origin.FromRequest(c.Request)

	if err := h.policy.Authorize(reqOrigin); err != nil {
		if errors.Is(err, origin.ErrNoAllowedOrigins) {
			h.log.Error("ALLOWED_ORIGINS is empty, rejecting all submissions")
			c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "Server misconfigured"})
			return
		}
		h.logRequest(c).WithField("origin", reqOrigin).Info("Submission from disallowed origin")
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "Origin not allowed"})
		return
	}

	identity := ratelimit.ClientIdentity(c.Request)
	if err := h.limiter.Allow(c.Request.Context(), identity); err != nil {
		c.JSON(http.StatusTooManyRequests, models.ErrorResponse{Error: "Too many requests"})
		return
	}

	payload, err := decodePayload(c.Request)
	if err != nil {
		if errors.Is(err, ErrUnsupportedContentType) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Unsupported content type"})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := services.ValidateSubmission(payload); err != nil {
		var missingErr *services.MissingFieldsError
		if errors.As(err, &missingErr) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "Missing required fields",
				Missing: missingErr.Fields,
			})
			return
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid email format"})
		return
	}

	record := sanitize.NewRecord(payload, reqOrigin, time.Now())

	if err := h.submissionService.ProcessSubmission(c.Request.Context(), record); err != nil {
		h.logRequest(c).WithError(err).Error("Submission forward failed")
		if errors.Is(err, airtable.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Server configuration error"})
			return
		}
		msg := "Submission failed"
		var upstreamErr *airtable.UpstreamError
		if errors.As(err, &upstreamErr) && !h.config.IsProduction() {
			msg = fmt.Sprintf("Submission failed: %s", upstreamErr.Message)
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Submission received",
	})
}

// HandleAdminAuth verifies the shared admin password. Success is an
// acknowledgment only; no token or session is issued.
func (h *Handlers) HandleAdminAuth(c *gin.Context) {
	var req models.AdminAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if err := h.authService.Verify(req.Password); err != nil {
		if errors.Is(err, services.ErrAuthNotConfigured) {
			h.log.Error("ADMIN_PASSWORD is not set")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Admin authentication not configured"})
			return
		}
		h.logRequest(c).Info("Failed admin authentication attempt")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Invalid password"})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Authenticated",
	})
}

func (h *Handlers) logRequest(c *gin.Context) *logrus.Entry {
	return h.log.WithField(middleware.RequestIDKey, c.GetString(middleware.RequestIDKey))
}

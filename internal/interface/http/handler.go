package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rushabh16-9/travel-planner/internal/domain/advisory"
	"github.com/Rushabh16-9/travel-planner/internal/domain/trip"
	apperrors "github.com/Rushabh16-9/travel-planner/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	tripSvc     trip.Service
	advisorySvc advisory.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(tripSvc trip.Service, advisorySvc advisory.Service, logger *slog.Logger) *Handler {
	return &Handler{
		tripSvc:     tripSvc,
		advisorySvc: advisorySvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// PlanTrip handles the itinerary generation endpoint.
func (h *Handler) PlanTrip(c *gin.Context) {
	var req trip.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	it, err := h.tripSvc.Plan(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "trip_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, it)
}

// Advise handles the seasonal travel advisory endpoint. The service
// absorbs every failure internally, so this endpoint never errors.
func (h *Handler) Advise(c *gin.Context) {
	var req advisory.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, h.advisorySvc.Advise(c.Request.Context(), req))
}

// Providers reports the generation chain makeup so deployments can verify
// configuration without spending tokens.
func (h *Handler) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"providers":             h.tripSvc.ProviderNames(),
		"deterministicFallback": true,
	})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

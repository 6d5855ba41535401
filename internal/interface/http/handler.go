package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vedicastro/panchanga-api/internal/domain/kundli"
	"github.com/vedicastro/panchanga-api/internal/domain/panchanga"
	apperrors "github.com/vedicastro/panchanga-api/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	panchangaSvc panchanga.Service
	kundliSvc    kundli.Service
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(panchangaSvc panchanga.Service, kundliSvc kundli.Service, logger *slog.Logger) *Handler {
	return &Handler{
		panchangaSvc: panchangaSvc,
		kundliSvc:    kundliSvc,
		logger:       logger.With("component", "http.handler"),
	}
}

// Root answers the original liveness message.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Panchanga API is running"})
}

// Health reports static service health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "panchanga-api"})
}

// Panchanga computes the full almanac for a date and observer.
func (h *Handler) Panchanga(c *gin.Context) {
	var req panchanga.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.panchangaSvc.Compute(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, mapDomainError(err, "panchanga_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// KundliMatch scores compatibility between two birth instants.
func (h *Handler) KundliMatch(c *gin.Context) {
	var req kundli.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.kundliSvc.Match(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, mapDomainError(err, "kundli_match_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// mapDomainError implements the client/server error split: malformed input is
// the caller's fault, adapter and computation faults are ours.
func mapDomainError(err error, fallbackCode string) *HTTPError {
	switch {
	case apperrors.IsCode(err, apperrors.CodeInvalidDate):
		return NewHTTPError(http.StatusBadRequest, apperrors.CodeInvalidDate, errMessage(err), err)
	case apperrors.IsCode(err, apperrors.CodeUnknownTimezone):
		return NewHTTPError(http.StatusBadRequest, apperrors.CodeUnknownTimezone, errMessage(err), err)
	case apperrors.IsCode(err, apperrors.CodeEphemerisError):
		return NewHTTPError(http.StatusBadGateway, apperrors.CodeEphemerisError, errMessage(err), err)
	case apperrors.IsCode(err, apperrors.CodeComputationError):
		return NewHTTPError(http.StatusInternalServerError, apperrors.CodeComputationError, errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, fallbackCode, errMessage(err), err)
	}
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

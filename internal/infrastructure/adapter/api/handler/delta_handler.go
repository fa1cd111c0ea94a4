package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/api/dto"
)

// DeltaHandler handles time delta HTTP requests
type DeltaHandler struct {
	deltaUseCase usecase.DeltaUseCase
	logger       coreport.Logger
}

// NewDeltaHandler creates a new delta handler instance
func NewDeltaHandler(deltaUseCase usecase.DeltaUseCase, logger coreport.Logger) *DeltaHandler {
	return &DeltaHandler{
		deltaUseCase: deltaUseCase,
		logger:       logger,
	}
}

// Construct handles the POST /deltas endpoint
func (h *DeltaHandler) Construct(c *gin.Context) {
	var req dto.DeltaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid delta request format", map[string]any{
			"error": err.Error(),
		})
		respondBadRequest(c, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	decomposition, err := h.deltaUseCase.Construct(c.Request.Context(), req.ToUnits())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDeltaResponse(decomposition))
}

// FromMicroseconds handles the GET /deltas/:ticks endpoint
func (h *DeltaHandler) FromMicroseconds(c *gin.Context) {
	ticks, err := strconv.ParseInt(c.Param("ticks"), 10, 64)
	if err != nil {
		respondBadRequest(c, domainerr.ErrInvalidRequest, "Invalid microsecond total")
		return
	}

	decomposition, err := h.deltaUseCase.FromMicroseconds(c.Request.Context(), ticks)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDeltaResponse(decomposition))
}

// Between handles the GET /deltas/between endpoint
func (h *DeltaHandler) Between(c *gin.Context) {
	var query dto.BetweenQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, domainerr.ErrInvalidTimestamp, "Query parameters start and end are required")
		return
	}

	start, err := parseTimestamp("start", query.Start)
	if err != nil {
		respondError(c, err)
		return
	}
	end, err := parseTimestamp("end", query.End)
	if err != nil {
		respondError(c, err)
		return
	}

	decomposition, err := h.deltaUseCase.Between(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDeltaResponse(decomposition))
}

// Since handles the GET /deltas/since endpoint
func (h *DeltaHandler) Since(c *gin.Context) {
	var query dto.SinceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, domainerr.ErrInvalidTimestamp, "Query parameter start is required")
		return
	}

	start, err := parseTimestamp("start", query.Start)
	if err != nil {
		respondError(c, err)
		return
	}

	decomposition, err := h.deltaUseCase.Since(c.Request.Context(), start)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDeltaResponse(decomposition))
}

func parseTimestamp(name, value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC 3339", domainerr.ErrInvalidTimestamp, name)
	}
	return t, nil
}

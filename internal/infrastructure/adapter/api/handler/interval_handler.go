package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/timedelta-service/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timedelta-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timedelta-service/internal/infrastructure/adapter/api/dto"
)

// IntervalHandler handles named interval HTTP requests
type IntervalHandler struct {
	deltaUseCase usecase.DeltaUseCase
	logger       coreport.Logger
}

// NewIntervalHandler creates a new interval handler instance
func NewIntervalHandler(deltaUseCase usecase.DeltaUseCase, logger coreport.Logger) *IntervalHandler {
	return &IntervalHandler{
		deltaUseCase: deltaUseCase,
		logger:       logger,
	}
}

// Create handles the POST /intervals endpoint
func (h *IntervalHandler) Create(c *gin.Context) {
	var req dto.IntervalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid interval request format", map[string]any{
			"error": err.Error(),
		})
		respondBadRequest(c, domainerr.ErrInvalidRequest, "Invalid request format: "+err.Error())
		return
	}

	view, err := h.deltaUseCase.SaveInterval(c.Request.Context(), req.Name, req.Delta.ToUnits())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewIntervalResponse(view))
}

// Get handles the GET /intervals/:id endpoint
func (h *IntervalHandler) Get(c *gin.Context) {
	view, err := h.deltaUseCase.GetInterval(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewIntervalResponse(view))
}

// List handles the GET /intervals endpoint
func (h *IntervalHandler) List(c *gin.Context) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, domainerr.ErrInvalidRequest, "Invalid limit")
		return
	}

	views, err := h.deltaUseCase.ListIntervals(c.Request.Context(), query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewIntervalListResponse(views))
}

// Delete handles the DELETE /intervals/:id endpoint
func (h *IntervalHandler) Delete(c *gin.Context) {
	if err := h.deltaUseCase.DeleteInterval(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package dto

import (
	"time"

	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/usecase"
)

// IntervalRequest represents the API request for saving a named delta
type IntervalRequest struct {
	Name  string       `json:"name" binding:"required"`
	Delta DeltaRequest `json:"delta"`
}

// IntervalResponse represents a stored interval
type IntervalResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	CreatedAt time.Time     `json:"createdAt"`
	Delta     DeltaResponse `json:"delta"`
}

// IntervalListResponse represents a page of stored intervals
type IntervalListResponse struct {
	Intervals []IntervalResponse `json:"intervals"`
	Count     int                `json:"count"`
}

// ListQuery holds the optional page size of GET /intervals
type ListQuery struct {
	Limit int `form:"limit"`
}

// NewIntervalResponse builds the response for a stored interval
func NewIntervalResponse(v *usecase.IntervalView) IntervalResponse {
	return IntervalResponse{
		ID:        v.ID,
		Name:      v.Name,
		CreatedAt: v.CreatedAt,
		Delta:     NewDeltaResponse(&v.Decomposition),
	}
}

// NewIntervalListResponse builds the response for a page of intervals
func NewIntervalListResponse(views []*usecase.IntervalView) IntervalListResponse {
	intervals := make([]IntervalResponse, 0, len(views))
	for _, v := range views {
		intervals = append(intervals, NewIntervalResponse(v))
	}
	return IntervalListResponse{
		Intervals: intervals,
		Count:     len(intervals),
	}
}

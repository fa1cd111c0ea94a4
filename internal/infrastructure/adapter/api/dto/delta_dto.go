package dto

import (
	"github.com/amirhossein-jamali/timedelta-service/internal/domain/port/usecase"
)

// DeltaRequest carries unnormalized unit magnitudes; omitted units count as zero
type DeltaRequest struct {
	Days         int64 `json:"days"`
	Hours        int64 `json:"hours"`
	Minutes      int64 `json:"minutes"`
	Seconds      int64 `json:"seconds"`
	Milliseconds int64 `json:"milliseconds"`
	Microseconds int64 `json:"microseconds"`
}

// ToUnits converts the request into use case units
func (r DeltaRequest) ToUnits() usecase.Units {
	return usecase.Units{
		Days:         r.Days,
		Hours:        r.Hours,
		Minutes:      r.Minutes,
		Seconds:      r.Seconds,
		Milliseconds: r.Milliseconds,
		Microseconds: r.Microseconds,
	}
}

// FieldsResponse is the standardized decomposition of a delta
type FieldsResponse struct {
	Days         int64 `json:"days"`
	Hours        int64 `json:"hours"`
	Minutes      int64 `json:"minutes"`
	Seconds      int64 `json:"seconds"`
	Milliseconds int64 `json:"milliseconds"`
	Microseconds int64 `json:"microseconds"`
}

// DeltaResponse represents a decomposed time delta
type DeltaResponse struct {
	Ticks    int64          `json:"ticks"`
	Negative bool           `json:"negative"`
	Fields   FieldsResponse `json:"fields"`
	Text     string         `json:"text"`
}

// NewDeltaResponse builds the response for a decomposition
func NewDeltaResponse(d *usecase.Decomposition) DeltaResponse {
	return DeltaResponse{
		Ticks:    d.Ticks,
		Negative: d.Negative,
		Fields: FieldsResponse{
			Days:         d.Fields.Days,
			Hours:        d.Fields.Hours,
			Minutes:      d.Fields.Minutes,
			Seconds:      d.Fields.Seconds,
			Milliseconds: d.Fields.Milliseconds,
			Microseconds: d.Fields.Microseconds,
		},
		Text: d.Text,
	}
}

// BetweenQuery holds the RFC 3339 endpoints of GET /deltas/between
type BetweenQuery struct {
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

// SinceQuery holds the RFC 3339 start of GET /deltas/since
type SinceQuery struct {
	Start string `form:"start" binding:"required"`
}

package contracts

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates in requests.
const DateLayout = "2006-01-02"

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// PayAheadRequest settles installments in advance. Installments defaults to 1.
type PayAheadRequest struct {
	Installments int `json:"installments" binding:"omitempty,min=1"`
}

// ParseDate reads an optional request date. Empty strings yield nil.
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

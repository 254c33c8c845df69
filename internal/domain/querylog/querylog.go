// Package querylog records every recommendation request for the history
// endpoints.
package querylog

import (
	"context"
	"time"
)

// Request type tags stored with each entry.
const (
	TypeBaggage   = "baggage"
	TypeItinerary = "itinerary"
)

// Entry is one logged recommendation exchange.
type Entry struct {
	ID           string    `json:"id"`
	Destination  string    `json:"destination"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	RequestType  string    `json:"requestType"`
	RequestJSON  string    `json:"requestJson"`
	ResponseJSON string    `json:"responseJson"`
	Timestamp    time.Time `json:"timestamp"`
}

// Repository persists query entries. Writers treat failures as diagnostic
// only; a failed Save must never surface to API consumers.
type Repository interface {
	Save(ctx context.Context, entry Entry) (Entry, error)
	FindByType(ctx context.Context, requestType string) ([]Entry, error)
	Destinations(ctx context.Context, requestType string) ([]string, error)
}

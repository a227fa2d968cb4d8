package dto

import (
	"time"

	"github.com/avaliaccess/aa-server/internal/models"
)

type EstablishmentResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Type    string `json:"type"`

	PhotoURL      string   `json:"photo_url"`
	AverageRating *float64 `json:"average_rating"`
	TotalRatings  int      `json:"total_ratings"`

	CreatedByID   uint   `json:"created_by_id"`
	CreatedByName string `json:"created_by_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEstablishmentResponse(e *models.Establishment) EstablishmentResponse {
	return EstablishmentResponse{
		ID:      e.ID,
		Name:    e.Name,
		Address: e.Address,
		City:    e.City,
		State:   e.State,
		Type:    e.Type,

		PhotoURL:      e.PhotoURL,
		AverageRating: e.AverageRating,
		TotalRatings:  e.TotalRatings,

		CreatedByID:   e.CreatedByID,
		CreatedByName: e.CreatedBy.Name,

		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func NewEstablishmentResponseList(ests []models.Establishment) []EstablishmentResponse {
	out := make([]EstablishmentResponse, 0, len(ests))
	for i := range ests {
		out = append(out, NewEstablishmentResponse(&ests[i]))
	}
	return out
}

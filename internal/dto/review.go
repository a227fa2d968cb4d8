package dto

import (
	"time"

	domain "github.com/avaliaccess/aa-server/internal/domain/review"
	"github.com/avaliaccess/aa-server/internal/models"
)

type ReviewResponse struct {
	ID              uint   `json:"id"`
	EstablishmentID uint   `json:"establishment_id"`
	UserID          uint   `json:"user_id"`
	UserName        string `json:"user_name"`
	UserPhotoURL    string `json:"user_photo_url"`

	Rating  int    `json:"rating"`
	Comment string `json:"comment"`

	HasRamp                bool `json:"has_ramp"`
	HasAccessibleRestroom  bool `json:"has_accessible_restroom"`
	HasAccessibleParking   bool `json:"has_accessible_parking"`
	HasElevator            bool `json:"has_elevator"`
	HasAccessibleEntrance  bool `json:"has_accessible_entrance"`
	HasTactileFloor        bool `json:"has_tactile_floor"`
	HasSignLanguageService bool `json:"has_sign_language_service"`
	HasAccessibleSeating   bool `json:"has_accessible_seating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:              r.ID,
		EstablishmentID: r.EstablishmentID,
		UserID:          r.UserID,
		UserName:        r.User.Name,
		UserPhotoURL:    r.User.PhotoURL,

		Rating:  r.Rating,
		Comment: r.Comment,

		HasRamp:                r.HasRamp,
		HasAccessibleRestroom:  r.HasAccessibleRestroom,
		HasAccessibleParking:   r.HasAccessibleParking,
		HasElevator:            r.HasElevator,
		HasAccessibleEntrance:  r.HasAccessibleEntrance,
		HasTactileFloor:        r.HasTactileFloor,
		HasSignLanguageService: r.HasSignLanguageService,
		HasAccessibleSeating:   r.HasAccessibleSeating,

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func NewReviewResponseList(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}

// AccessibilityFeaturesResponse é o veredito consolidado por
// característica (regra de maioria >= 50%).
type AccessibilityFeaturesResponse struct {
	HasRamp                bool `json:"has_ramp"`
	HasAccessibleRestroom  bool `json:"has_accessible_restroom"`
	HasAccessibleParking   bool `json:"has_accessible_parking"`
	HasElevator            bool `json:"has_elevator"`
	HasAccessibleEntrance  bool `json:"has_accessible_entrance"`
	HasTactileFloor        bool `json:"has_tactile_floor"`
	HasSignLanguageService bool `json:"has_sign_language_service"`
	HasAccessibleSeating   bool `json:"has_accessible_seating"`
}

func (a *AccessibilityFeaturesResponse) Set(flag domain.Flag, value bool) {
	switch flag {
	case domain.FlagRamp:
		a.HasRamp = value
	case domain.FlagAccessibleRestroom:
		a.HasAccessibleRestroom = value
	case domain.FlagAccessibleParking:
		a.HasAccessibleParking = value
	case domain.FlagElevator:
		a.HasElevator = value
	case domain.FlagAccessibleEntrance:
		a.HasAccessibleEntrance = value
	case domain.FlagTactileFloor:
		a.HasTactileFloor = value
	case domain.FlagSignLanguageService:
		a.HasSignLanguageService = value
	case domain.FlagAccessibleSeating:
		a.HasAccessibleSeating = value
	}
}

package models

import "time"

type Establishment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:200;not null" json:"name"`
	Address string `gorm:"size:300;not null" json:"address"`
	City    string `gorm:"size:100;not null;index" json:"city"`
	State   string `gorm:"size:2;not null;index" json:"state"`
	Type    string `gorm:"size:100;not null;index" json:"type"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	// Campos desnormalizados, recalculados a cada mutação de avaliação.
	AverageRating *float64 `gorm:"type:decimal(3,2)" json:"average_rating"`
	TotalRatings  int      `gorm:"not null;default:0" json:"total_ratings"`

	CreatedByID uint `gorm:"not null" json:"created_by_id"`
	CreatedBy   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"created_by"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

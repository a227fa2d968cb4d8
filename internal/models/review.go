package models

import "time"

// Review é a avaliação de um usuário para um estabelecimento.
// Cada par (estabelecimento, usuário) tem no máximo uma avaliação.
type Review struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EstablishmentID uint          `gorm:"not null;uniqueIndex:idx_reviews_establishment_user" json:"establishment_id"`
	Establishment   Establishment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	UserID uint `gorm:"not null;uniqueIndex:idx_reviews_establishment_user" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	// Características de acessibilidade observadas pelo avaliador
	HasRamp                bool `gorm:"not null;default:false" json:"has_ramp"`
	HasAccessibleRestroom  bool `gorm:"not null;default:false" json:"has_accessible_restroom"`
	HasAccessibleParking   bool `gorm:"not null;default:false" json:"has_accessible_parking"`
	HasElevator            bool `gorm:"not null;default:false" json:"has_elevator"`
	HasAccessibleEntrance  bool `gorm:"not null;default:false" json:"has_accessible_entrance"`
	HasTactileFloor        bool `gorm:"not null;default:false" json:"has_tactile_floor"`
	HasSignLanguageService bool `gorm:"not null;default:false" json:"has_sign_language_service"`
	HasAccessibleSeating   bool `gorm:"not null;default:false" json:"has_accessible_seating"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

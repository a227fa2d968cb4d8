package review

import "github.com/avaliaccess/aa-server/internal/models"

// RatingInput é o corpo validado de criação/edição de avaliação.
// A edição substitui nota, comentário e todas as oito flags.
type RatingInput struct {
	Rating  int
	Comment string

	HasRamp                bool
	HasAccessibleRestroom  bool
	HasAccessibleParking   bool
	HasElevator            bool
	HasAccessibleEntrance  bool
	HasTactileFloor        bool
	HasSignLanguageService bool
	HasAccessibleSeating   bool
}

func (in RatingInput) apply(r *models.Review) {
	r.Rating = in.Rating
	r.Comment = in.Comment

	r.HasRamp = in.HasRamp
	r.HasAccessibleRestroom = in.HasAccessibleRestroom
	r.HasAccessibleParking = in.HasAccessibleParking
	r.HasElevator = in.HasElevator
	r.HasAccessibleEntrance = in.HasAccessibleEntrance
	r.HasTactileFloor = in.HasTactileFloor
	r.HasSignLanguageService = in.HasSignLanguageService
	r.HasAccessibleSeating = in.HasAccessibleSeating
}

package access

import "github.com/avaliaccess/aa-server/internal/models"

// CanEditEstablishment permite mutações ao criador do estabelecimento
// ou a um administrador.
func CanEditEstablishment(user *models.User, est *models.Establishment) bool {
	if user == nil || est == nil {
		return false
	}
	if est.CreatedByID == user.ID {
		return true
	}
	return user.Roles.Has(models.RoleAdmin)
}

// CanEditReview permite mutações apenas ao autor da avaliação.
// Administradores não têm passe livre aqui: a avaliação é opinião
// pessoal do autor.
func CanEditReview(user *models.User, review *models.Review) bool {
	if user == nil || review == nil {
		return false
	}
	return review.UserID == user.ID
}

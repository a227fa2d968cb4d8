package review

import (
	"context"

	domain "github.com/avaliaccess/aa-server/internal/domain/review"
	"github.com/avaliaccess/aa-server/internal/models"
)

type ListReviews struct {
	repo domain.Repository
}

func NewListReviews(repo domain.Repository) *ListReviews {
	return &ListReviews{repo: repo}
}

// Execute lista as avaliações do estabelecimento, mais recentes primeiro.
func (uc *ListReviews) Execute(
	ctx context.Context,
	establishmentID uint,
) ([]models.Review, error) {
	return uc.repo.ListByEstablishment(ctx, establishmentID)
}

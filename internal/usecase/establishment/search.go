package establishment

import (
	"context"

	domain "github.com/avaliaccess/aa-server/internal/domain/establishment"
	"github.com/avaliaccess/aa-server/internal/models"
)

type SearchEstablishments struct {
	repo domain.Repository
}

func NewSearchEstablishments(repo domain.Repository) *SearchEstablishments {
	return &SearchEstablishments{repo: repo}
}

// Execute aplica os filtros opcionais e devolve a página pedida junto
// com o total de resultados.
func (uc *SearchEstablishments) Execute(
	ctx context.Context,
	params domain.SearchParams,
) ([]models.Establishment, int64, error) {
	return uc.repo.Search(ctx, params)
}

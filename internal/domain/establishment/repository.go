package establishment

import (
	"context"

	"github.com/avaliaccess/aa-server/internal/models"
)

// SearchParams são os filtros da busca paginada. Filtro vazio casa
// com tudo; Name é substring case-insensitive, os demais são exatos.
type SearchParams struct {
	Name  string
	City  string
	State string
	Type  string

	Page int
	Size int

	SortBy        string
	SortDirection string
}

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error

	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	GetByID(ctx context.Context, id uint) (*models.Establishment, error)

	Create(ctx context.Context, e *models.Establishment) error

	Update(ctx context.Context, e *models.Establishment) error

	Delete(ctx context.Context, e *models.Establishment) error

	// DeleteReviewsByEstablishment remove as avaliações do
	// estabelecimento (cascata na exclusão).
	DeleteReviewsByEstablishment(ctx context.Context, establishmentID uint) error

	ListAll(ctx context.Context) ([]models.Establishment, error)

	ListByCity(ctx context.Context, city string) ([]models.Establishment, error)

	ListByType(ctx context.Context, typ string) ([]models.Establishment, error)

	Search(ctx context.Context, params SearchParams) ([]models.Establishment, int64, error)
}

package establishment

import (
	"context"

	domain "github.com/avaliaccess/aa-server/internal/domain/establishment"
	"github.com/avaliaccess/aa-server/internal/httperr"
	"github.com/avaliaccess/aa-server/internal/models"
)

type GetEstablishments struct {
	repo domain.Repository
}

func NewGetEstablishments(repo domain.Repository) *GetEstablishments {
	return &GetEstablishments{repo: repo}
}

func (uc *GetEstablishments) ByID(ctx context.Context, id uint) (*models.Establishment, error) {
	est, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeEstablishmentNotFound)
	}
	return est, nil
}

func (uc *GetEstablishments) All(ctx context.Context) ([]models.Establishment, error) {
	return uc.repo.ListAll(ctx)
}

func (uc *GetEstablishments) ByCity(ctx context.Context, city string) ([]models.Establishment, error) {
	return uc.repo.ListByCity(ctx, city)
}

func (uc *GetEstablishments) ByType(ctx context.Context, typ string) ([]models.Establishment, error) {
	return uc.repo.ListByType(ctx, typ)
}

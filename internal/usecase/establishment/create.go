package establishment

import (
	"context"

	"github.com/avaliaccess/aa-server/internal/audit"
	domain "github.com/avaliaccess/aa-server/internal/domain/establishment"
	"github.com/avaliaccess/aa-server/internal/httperr"
	"github.com/avaliaccess/aa-server/internal/infra/storage"
	"github.com/avaliaccess/aa-server/internal/models"
)

type CreateEstablishment struct {
	repo    domain.Repository
	storage storage.Storage
	audit   *audit.Dispatcher
}

func NewCreateEstablishment(
	repo domain.Repository,
	store storage.Storage,
	audit *audit.Dispatcher,
) *CreateEstablishment {
	return &CreateEstablishment{
		repo:    repo,
		storage: store,
		audit:   audit,
	}
}

func (uc *CreateEstablishment) Execute(
	ctx context.Context,
	userEmail string,
	in EstablishmentInput,
	photo *PhotoUpload,
) (*models.Establishment, error) {

	user, err := uc.repo.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
	}

	est := &models.Establishment{
		CreatedByID: user.ID,
	}
	in.apply(est)

	if photo != nil {
		name, err := uc.storage.Store(photo.Reader, photo.OriginalName)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeStorageError)
		}
		est.PhotoURL = PhotoURLPrefix + name
	}

	if err := uc.repo.Create(ctx, est); err != nil {
		return nil, err
	}
	est.CreatedBy = *user

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "establishment_created",
		Entity:   "establishment",
		EntityID: &est.ID,
	})

	return est, nil
}

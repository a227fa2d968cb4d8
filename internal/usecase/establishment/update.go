package establishment

import (
	"context"

	"github.com/avaliaccess/aa-server/internal/audit"
	"github.com/avaliaccess/aa-server/internal/domain/access"
	domain "github.com/avaliaccess/aa-server/internal/domain/establishment"
	"github.com/avaliaccess/aa-server/internal/httperr"
	"github.com/avaliaccess/aa-server/internal/infra/storage"
	"github.com/avaliaccess/aa-server/internal/logger"
	"github.com/avaliaccess/aa-server/internal/models"
)

type UpdateEstablishment struct {
	repo    domain.Repository
	storage storage.Storage
	audit   *audit.Dispatcher
	log     *logger.Logger
}

func NewUpdateEstablishment(
	repo domain.Repository,
	store storage.Storage,
	audit *audit.Dispatcher,
	log *logger.Logger,
) *UpdateEstablishment {
	return &UpdateEstablishment{
		repo:    repo,
		storage: store,
		audit:   audit,
		log:     log,
	}
}

func (uc *UpdateEstablishment) Execute(
	ctx context.Context,
	id uint,
	userEmail string,
	in EstablishmentInput,
	photo *PhotoUpload,
) (*models.Establishment, error) {

	est, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeEstablishmentNotFound)
	}

	user, err := uc.repo.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
	}

	if !access.CanEditEstablishment(user, est) {
		return nil, httperr.ErrBusiness(httperr.CodeForbidden)
	}

	in.apply(est)

	if photo != nil {
		// A foto antiga sai em best-effort: falha na exclusão não
		// aborta a atualização.
		if old := photoFileName(est.PhotoURL); old != "" {
			if err := uc.storage.Delete(old); err != nil && err != storage.ErrNotFound {
				uc.log.Warn("failed to delete old establishment photo",
					"establishment_id", est.ID, "file", old, "error", err)
			}
		}

		name, err := uc.storage.Store(photo.Reader, photo.OriginalName)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeStorageError)
		}
		est.PhotoURL = PhotoURLPrefix + name
	}

	if err := uc.repo.Update(ctx, est); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "establishment_updated",
		Entity:   "establishment",
		EntityID: &est.ID,
	})

	return est, nil
}

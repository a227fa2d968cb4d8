package establishment

import (
	"context"

	"github.com/avaliaccess/aa-server/internal/audit"
	"github.com/avaliaccess/aa-server/internal/domain/access"
	domain "github.com/avaliaccess/aa-server/internal/domain/establishment"
	"github.com/avaliaccess/aa-server/internal/httperr"
	"github.com/avaliaccess/aa-server/internal/infra/storage"
	"github.com/avaliaccess/aa-server/internal/logger"
)

type DeleteEstablishment struct {
	repo    domain.Repository
	storage storage.Storage
	audit   *audit.Dispatcher
	log     *logger.Logger
}

func NewDeleteEstablishment(
	repo domain.Repository,
	store storage.Storage,
	audit *audit.Dispatcher,
	log *logger.Logger,
) *DeleteEstablishment {
	return &DeleteEstablishment{
		repo:    repo,
		storage: store,
		audit:   audit,
		log:     log,
	}
}

func (uc *DeleteEstablishment) Execute(
	ctx context.Context,
	id uint,
	userEmail string,
) error {

	est, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeEstablishmentNotFound)
	}

	user, err := uc.repo.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeUserNotFound)
	}

	if !access.CanEditEstablishment(user, est) {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}

	// As avaliações saem junto, na mesma transação.
	err = uc.repo.Transaction(ctx, func(repo domain.Repository) error {
		if err := repo.DeleteReviewsByEstablishment(ctx, est.ID); err != nil {
			return err
		}
		return repo.Delete(ctx, est)
	})
	if err != nil {
		return err
	}

	if name := photoFileName(est.PhotoURL); name != "" {
		if err := uc.storage.Delete(name); err != nil && err != storage.ErrNotFound {
			uc.log.Warn("failed to delete establishment photo",
				"establishment_id", est.ID, "file", name, "error", err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "establishment_deleted",
		Entity:   "establishment",
		EntityID: &est.ID,
	})

	return nil
}

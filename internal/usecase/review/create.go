package review

import (
	"context"

	"github.com/avaliaccess/aa-server/internal/audit"
	domain "github.com/avaliaccess/aa-server/internal/domain/review"
	"github.com/avaliaccess/aa-server/internal/httperr"
	"github.com/avaliaccess/aa-server/internal/models"
)

type CreateReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateReview) Execute(
	ctx context.Context,
	establishmentID uint,
	userEmail string,
	in RatingInput,
) (*models.Review, error) {

	var created *models.Review
	var authorID uint

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {

		user, err := repo.GetUserByEmail(ctx, userEmail)
		if err != nil {
			return httperr.ErrBusiness(httperr.CodeUserNotFound)
		}
		authorID = user.ID

		if _, err := repo.GetEstablishmentByID(ctx, establishmentID); err != nil {
			return httperr.ErrBusiness(httperr.CodeEstablishmentNotFound)
		}

		// O par (estabelecimento, autor) admite uma única avaliação.
		// Checado antes do insert para reportar como erro de domínio,
		// não como conflito genérico da constraint.
		if _, err := repo.FindByEstablishmentAndUser(ctx, establishmentID, user.ID); err == nil {
			return httperr.ErrBusiness(httperr.CodeDuplicateReview)
		}

		review := &models.Review{
			EstablishmentID: establishmentID,
			UserID:          user.ID,
		}
		in.apply(review)

		if err := repo.CreateReview(ctx, review); err != nil {
			return err
		}

		if err := domain.RecomputeAggregates(ctx, repo, establishmentID); err != nil {
			return err
		}

		created, err = repo.GetReviewByID(ctx, review.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &authorID,
		Action:   "review_created",
		Entity:   "review",
		EntityID: &created.ID,
	})

	return created, nil
}

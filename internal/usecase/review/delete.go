package review

import (
	"context"

	"github.com/avaliaccess/aa-server/internal/audit"
	"github.com/avaliaccess/aa-server/internal/domain/access"
	domain "github.com/avaliaccess/aa-server/internal/domain/review"
	"github.com/avaliaccess/aa-server/internal/httperr"
)

type DeleteReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteReview {
	return &DeleteReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteReview) Execute(
	ctx context.Context,
	reviewID uint,
	userEmail string,
) error {

	var authorID uint

	err := uc.repo.Transaction(ctx, func(repo domain.Repository) error {

		review, err := repo.GetReviewByID(ctx, reviewID)
		if err != nil {
			return httperr.ErrBusiness(httperr.CodeReviewNotFound)
		}

		user, err := repo.GetUserByEmail(ctx, userEmail)
		if err != nil {
			return httperr.ErrBusiness(httperr.CodeUserNotFound)
		}
		authorID = user.ID

		if !access.CanEditReview(user, review) {
			return httperr.ErrBusiness(httperr.CodeForbidden)
		}

		establishmentID := review.EstablishmentID

		if err := repo.DeleteReview(ctx, review); err != nil {
			return err
		}

		// Remover a última avaliação zera os agregados (média nula).
		return domain.RecomputeAggregates(ctx, repo, establishmentID)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &authorID,
		Action:   "review_deleted",
		Entity:   "review",
		EntityID: &reviewID,
	})

	return nil
}

package review

import (
	"context"

	"github.com/avaliaccess/aa-server/internal/audit"
	"github.com/avaliaccess/aa-server/internal/domain/access"
	domain "github.com/avaliaccess/aa-server/internal/domain/review"
	"github.com/avaliaccess/aa-server/internal/httperr"
	"github.com/avaliaccess/aa-server/internal/models"
)

type UpdateReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateReview(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateReview {
	return &UpdateReview{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateReview) Execute(
	ctx context.Context,
	reviewID uint,
	userEmail string,
	in RatingInput,
) (*models.Review, error) {

	var updated *models.Review
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

		in.apply(review)

		if err := repo.UpdateReview(ctx, review); err != nil {
			return err
		}

		if err := domain.RecomputeAggregates(ctx, repo, review.EstablishmentID); err != nil {
			return err
		}

		updated, err = repo.GetReviewByID(ctx, review.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &authorID,
		Action:   "review_updated",
		Entity:   "review",
		EntityID: &updated.ID,
	})

	return updated, nil
}

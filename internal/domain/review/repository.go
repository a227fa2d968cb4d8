package review

import (
	"context"

	"github.com/avaliaccess/aa-server/internal/models"
)

type Repository interface {
	// Transaction executa fn com um Repository amarrado à transação.
	// Mutações de avaliação e o recálculo dos agregados do
	// estabelecimento acontecem sempre dentro da mesma transação.
	Transaction(ctx context.Context, fn func(Repository) error) error

	// -------- User / Establishment lookups --------
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	GetEstablishmentByID(ctx context.Context, id uint) (*models.Establishment, error)

	// -------- Review --------
	GetReviewByID(ctx context.Context, id uint) (*models.Review, error)

	FindByEstablishmentAndUser(
		ctx context.Context,
		establishmentID uint,
		userID uint,
	) (*models.Review, error)

	ListByEstablishment(ctx context.Context, establishmentID uint) ([]models.Review, error)

	CreateReview(ctx context.Context, r *models.Review) error

	UpdateReview(ctx context.Context, r *models.Review) error

	DeleteReview(ctx context.Context, r *models.Review) error

	// -------- Aggregates --------
	CountByEstablishment(ctx context.Context, establishmentID uint) (int64, error)

	AverageRating(ctx context.Context, establishmentID uint) (*float64, error)

	CountFlag(ctx context.Context, establishmentID uint, flag Flag) (int64, error)

	SaveEstablishmentAggregates(
		ctx context.Context,
		establishmentID uint,
		averageRating *float64,
		totalRatings int,
	) error
}

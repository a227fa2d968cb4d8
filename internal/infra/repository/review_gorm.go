package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	domain "github.com/avaliaccess/aa-server/internal/domain/review"
	"github.com/avaliaccess/aa-server/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReviewGormRepository{db: tx})
	})
}

// --------------------------------------------------
// User / Establishment
// --------------------------------------------------

func (r *ReviewGormRepository) GetUserByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ReviewGormRepository) GetEstablishmentByID(
	ctx context.Context,
	id uint,
) (*models.Establishment, error) {

	var est models.Establishment
	if err := r.db.WithContext(ctx).First(&est, id).Error; err != nil {
		return nil, err
	}
	return &est, nil
}

// --------------------------------------------------
// Review
// --------------------------------------------------

func (r *ReviewGormRepository) GetReviewByID(
	ctx context.Context,
	id uint,
) (*models.Review, error) {

	var review models.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewGormRepository) FindByEstablishmentAndUser(
	ctx context.Context,
	establishmentID uint,
	userID uint,
) (*models.Review, error) {

	var review models.Review
	if err := r.db.WithContext(ctx).
		Where("establishment_id = ? AND user_id = ?", establishmentID, userID).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewGormRepository) ListByEstablishment(
	ctx context.Context,
	establishmentID uint,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("establishment_id = ?", establishmentID).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) CreateReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewGormRepository) UpdateReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *ReviewGormRepository) DeleteReview(
	ctx context.Context,
	review *models.Review,
) error {
	return r.db.WithContext(ctx).Delete(review).Error
}

// --------------------------------------------------
// Aggregates
// --------------------------------------------------

func (r *ReviewGormRepository) CountByEstablishment(
	ctx context.Context,
	establishmentID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("establishment_id = ?", establishmentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReviewGormRepository) AverageRating(
	ctx context.Context,
	establishmentID uint,
) (*float64, error) {

	var avg sql.NullFloat64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("establishment_id = ?", establishmentID).
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {
		return nil, err
	}

	if !avg.Valid {
		return nil, nil
	}
	return &avg.Float64, nil
}

func (r *ReviewGormRepository) CountFlag(
	ctx context.Context,
	establishmentID uint,
	flag domain.Flag,
) (int64, error) {

	// flag vem do enum do domínio, nunca de entrada do usuário
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("establishment_id = ? AND "+string(flag)+" = ?", establishmentID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReviewGormRepository) SaveEstablishmentAggregates(
	ctx context.Context,
	establishmentID uint,
	averageRating *float64,
	totalRatings int,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Establishment{}).
		Where("id = ?", establishmentID).
		Updates(map[string]any{
			"average_rating": averageRating,
			"total_ratings":  totalRatings,
		}).Error
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)

package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	domain "github.com/avaliaccess/aa-server/internal/domain/establishment"
	"github.com/avaliaccess/aa-server/internal/models"
)

type EstablishmentGormRepository struct {
	db *gorm.DB
}

func NewEstablishmentGormRepository(db *gorm.DB) *EstablishmentGormRepository {
	return &EstablishmentGormRepository{db: db}
}

func (r *EstablishmentGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&EstablishmentGormRepository{db: tx})
	})
}

func (r *EstablishmentGormRepository) GetUserByEmail(
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

func (r *EstablishmentGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Establishment, error) {

	var est models.Establishment
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		First(&est, id).Error; err != nil {
		return nil, err
	}
	return &est, nil
}

func (r *EstablishmentGormRepository) Create(
	ctx context.Context,
	e *models.Establishment,
) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EstablishmentGormRepository) Update(
	ctx context.Context,
	e *models.Establishment,
) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EstablishmentGormRepository) Delete(
	ctx context.Context,
	e *models.Establishment,
) error {
	return r.db.WithContext(ctx).Delete(e).Error
}

func (r *EstablishmentGormRepository) DeleteReviewsByEstablishment(
	ctx context.Context,
	establishmentID uint,
) error {
	return r.db.WithContext(ctx).
		Where("establishment_id = ?", establishmentID).
		Delete(&models.Review{}).Error
}

// --------------------------------------------------
// Listagens
// --------------------------------------------------

func (r *EstablishmentGormRepository) ListAll(
	ctx context.Context,
) ([]models.Establishment, error) {

	var ests []models.Establishment
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Order("created_at DESC").
		Find(&ests).Error; err != nil {
		return nil, err
	}
	return ests, nil
}

func (r *EstablishmentGormRepository) ListByCity(
	ctx context.Context,
	city string,
) ([]models.Establishment, error) {

	var ests []models.Establishment
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("city = ?", city).
		Order("created_at DESC").
		Find(&ests).Error; err != nil {
		return nil, err
	}
	return ests, nil
}

func (r *EstablishmentGormRepository) ListByType(
	ctx context.Context,
	typ string,
) ([]models.Establishment, error) {

	var ests []models.Establishment
	if err := r.db.WithContext(ctx).
		Preload("CreatedBy").
		Where("type = ?", typ).
		Order("created_at DESC").
		Find(&ests).Error; err != nil {
		return nil, err
	}
	return ests, nil
}

// --------------------------------------------------
// Busca paginada
// --------------------------------------------------

// sortColumns é a allowlist de campos ordenáveis, aceitando tanto o
// nome da coluna quanto o camelCase usado pelo frontend.
var sortColumns = map[string]string{
	"name":          "name",
	"city":          "city",
	"state":         "state",
	"type":          "type",
	"createdAt":     "created_at",
	"created_at":    "created_at",
	"updatedAt":     "updated_at",
	"updated_at":    "updated_at",
	"averageRating": "average_rating",
	"totalRatings":  "total_ratings",
}

func (r *EstablishmentGormRepository) Search(
	ctx context.Context,
	params domain.SearchParams,
) ([]models.Establishment, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Establishment{})

	if name := strings.TrimSpace(params.Name); name != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if params.City != "" {
		q = q.Where("city = ?", params.City)
	}
	if params.State != "" {
		q = q.Where("state = ?", params.State)
	}
	if params.Type != "" {
		q = q.Where("type = ?", params.Type)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(params.SortDirection, "asc") {
		direction = "ASC"
	}

	page := params.Page
	if page < 0 {
		page = 0
	}
	size := params.Size
	if size <= 0 {
		size = 12
	}

	var ests []models.Establishment
	if err := q.
		Preload("CreatedBy").
		Order(column + " " + direction).
		Offset(page * size).
		Limit(size).
		Find(&ests).Error; err != nil {
		return nil, 0, err
	}

	return ests, total, nil
}

// Compile-time check
var _ domain.Repository = (*EstablishmentGormRepository)(nil)

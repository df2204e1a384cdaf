package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rick2303/Olanchito/internal/model"
)

// BusinessListParams is the already-validated, bounded read query produced
// by the listing service: filters resolved, page turned into offset/limit.
type BusinessListParams struct {
	// CategoryID filters by category when non-nil. A pointer to uuid.Nil
	// means "the requested category slug matched nothing": the query still
	// runs and yields zero rows instead of silently dropping the filter.
	CategoryID *uuid.UUID
	// Name is a case-insensitive contains-match against the business name.
	Name   string
	Offset int
	Limit  int
}

// BusinessRepository defines the read-only data access contract for
// published businesses. Services depend on this interface, not on the
// concrete GORM implementation, enabling clean unit testing via stubs.
type BusinessRepository interface {
	List(ctx context.Context, p BusinessListParams) ([]model.Business, int64, error)
	FindBySlug(ctx context.Context, slug string) (*model.Business, error)
}

type businessRepo struct{ db *gorm.DB }

func NewBusinessRepository(db *gorm.DB) BusinessRepository { return &businessRepo{db: db} }

func (r *businessRepo) List(ctx context.Context, p BusinessListParams) ([]model.Business, int64, error) {
	var businesses []model.Business
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Business{})

	if p.CategoryID != nil {
		q = q.Where("category_id = ?", *p.CategoryID)
	}
	if p.Name != "" {
		q = q.Where("name ILIKE ?", "%"+p.Name+"%")
	}

	// Unpaginated count first so the caller can compute total pages.
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("name ASC").Limit(p.Limit).Offset(p.Offset).Find(&businesses).Error
	return businesses, total, err
}

func (r *businessRepo) FindBySlug(ctx context.Context, slug string) (*model.Business, error) {
	var b model.Business
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

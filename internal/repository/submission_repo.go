package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/rick2303/Olanchito/internal/model"
)

// SubmissionRepository writes pending registrations. This system never reads
// them back; review happens elsewhere.
type SubmissionRepository interface {
	Create(ctx context.Context, s *model.BusinessSubmission) error
}

type submissionRepo struct{ db *gorm.DB }

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository { return &submissionRepo{db: db} }

func (r *submissionRepo) Create(ctx context.Context, s *model.BusinessSubmission) error {
	return r.db.WithContext(ctx).Create(s).Error
}

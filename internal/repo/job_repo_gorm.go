package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"go-job-board/internal/domain"
)

type JobRepo struct{ db *gorm.DB }

func NewJobRepo(db *gorm.DB) *JobRepo { return &JobRepo{db: db} }

func (r *JobRepo) Create(ctx context.Context, j *domain.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *JobRepo) List(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepo) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	var j domain.Job
	err := r.db.WithContext(ctx).First(&j, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

package repo

import (
	"context"

	"gorm.io/gorm"

	"go-job-board/internal/apperr"
	"go-job-board/internal/domain"
)

type ApplicationRepo struct{ db *gorm.DB }

func NewApplicationRepo(db *gorm.DB) *ApplicationRepo { return &ApplicationRepo{db: db} }

// Submit 计数自增与投递写入在同一事务内提交；
// 自增用 SQL 表达式执行，并发投递不会丢更新
func (r *ApplicationRepo) Submit(ctx context.Context, a *domain.Application) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Job{}).
			Where("id = ?", a.JobID).
			UpdateColumn("applicant_count", gorm.Expr("applicant_count + ?", 1))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("job not found")
		}
		return tx.Create(a).Error
	})
}

func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.ApplicationSummary, error) {
	var rows []domain.ApplicationSummary
	err := r.db.WithContext(ctx).
		Table("applications").
		Select("jobs.title AS job_title, applications.created_at AS applied_at").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.applicant_id = ?", applicantID).
		Order("applications.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

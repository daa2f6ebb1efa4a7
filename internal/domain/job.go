package domain

import (
	"context"
	"time"
)

type Job struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	UploaderID     string    `gorm:"size:36;index;not null" json:"uploader_id"`
	Title          string    `gorm:"type:text;not null" json:"title"`
	Description    string    `gorm:"type:text;not null" json:"description"`
	ApplicantCount int64     `gorm:"not null;default:0" json:"applicant_count"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Job) TableName() string { return "jobs" }

type JobRepository interface {
	Create(ctx context.Context, j *Job) error
	List(ctx context.Context) ([]Job, error)
	FindByID(ctx context.Context, id string) (*Job, error)
}

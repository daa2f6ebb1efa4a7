package domain

import (
	"context"
	"time"
)

type Application struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	ApplicantID   string    `gorm:"size:36;index;not null" json:"applicant_id"`
	JobID         string    `gorm:"size:36;index;not null" json:"job_id"`
	AttachmentURL string    `gorm:"type:text;not null" json:"attachment_url"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Application) TableName() string { return "applications" }

// ApplicationSummary 求职者“我的投递”列表行（职位标题 + 投递时间）
type ApplicationSummary struct {
	JobTitle  string    `json:"job_title"`
	AppliedAt time.Time `json:"applied_at"`
}

type ApplicationRepository interface {
	// Submit 在同一事务内写入投递记录并递增职位的 applicant_count；
	// 职位不存在时整体失败，不留下任何写入
	Submit(ctx context.Context, a *Application) error
	ListByApplicant(ctx context.Context, applicantID string) ([]ApplicationSummary, error)
}

package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	FirstName    string    `gorm:"size:255;not null" json:"first_name"`
	LastName     string    `gorm:"size:255;not null" json:"last_name"`
	Email        string    `gorm:"uniqueIndex;size:254;not null" json:"email"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	IsEmployer   bool      `gorm:"not null;default:false" json:"is_employer"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string { return "users" }

// Role 写入 token 的角色声明；鉴权仍以库中的 IsEmployer 为准
func (u *User) Role() string {
	if u.IsEmployer {
		return "employer"
	}
	return "seeker"
}

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

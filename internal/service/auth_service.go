package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-job-board/internal/apperr"
	"go-job-board/internal/core/auth"
	"go-job-board/internal/domain"
	"go-job-board/pkg/utils"
)

type AuthService struct {
	users     domain.UserRepository
	jwter     *auth.JWTer
	blocklist auth.Blocklist
	log       *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer, blocklist auth.Blocklist, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwter: jwter, blocklist: blocklist, log: log}
}

type RegisterInput struct {
	FirstName  string
	LastName   string
	Email      string
	Password   string
	IsEmployer bool
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	if !validEmail(in.Email) {
		return apperr.Validation("invalid email")
	}
	if !validPassword(in.Password) {
		return apperr.Validation("password must be at least 8 characters and contain an uppercase, lowercase, digit and special character")
	}

	u := &domain.User{
		ID:           utils.NewID(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: utils.HashPassword(in.Password),
		IsEmployer:   in.IsEmployer,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return err
	}
	s.log.Info("user registered", zap.String("user_id", u.ID), zap.Bool("is_employer", u.IsEmployer))
	return nil
}

// Login 查无此人和密码不符返回同一条消息，不暴露哪个字段出错
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", apperr.Internal("login failed", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return "", apperr.Unauthorized("invalid email or password")
	}
	token, err := s.jwter.Issue(u.ID, u.Role())
	if err != nil {
		return "", apperr.Internal("issue token failed", err)
	}
	s.log.Info("user logged in", zap.String("user_id", u.ID))
	return token, nil
}

// Logout 把 jti 拉黑到令牌自然过期为止；重复注销为幂等成功
func (s *AuthService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if err := s.blocklist.Revoke(ctx, jti, time.Until(expiresAt)); err != nil {
		return apperr.Internal("logout failed", err)
	}
	return nil
}

package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"go-job-board/internal/apperr"
	"go-job-board/internal/core/cache"
	"go-job-board/internal/domain"
	"go-job-board/pkg/utils"
)

const jobCacheTTL = 30 * time.Second

type JobService struct {
	jobs  domain.JobRepository
	users domain.UserRepository
	cache *cache.Cache // 可为 nil，关闭缓存
	log   *zap.Logger
}

func NewJobService(jobs domain.JobRepository, users domain.UserRepository, c *cache.Cache, log *zap.Logger) *JobService {
	return &JobService{jobs: jobs, users: users, cache: c, log: log}
}

// Create 仅雇主可发布职位
func (s *JobService) Create(ctx context.Context, callerID, title, description string) (*domain.Job, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, apperr.Internal("load user failed", err)
	}
	if caller == nil {
		return nil, apperr.NotFound("user not found")
	}
	if !caller.IsEmployer {
		return nil, apperr.Forbidden("only employers can post jobs")
	}
	if strings.TrimSpace(title) == "" || strings.TrimSpace(description) == "" {
		return nil, apperr.BadRequest("title and description are required")
	}

	j := &domain.Job{
		ID:          utils.NewID(),
		UploaderID:  caller.ID,
		Title:       title,
		Description: description,
	}
	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, apperr.Internal("create job failed", err)
	}
	s.log.Info("job posted", zap.String("job_id", j.ID), zap.String("uploader_id", caller.ID))
	return j, nil
}

func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, apperr.Internal("list jobs failed", err)
	}
	return jobs, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	load := func(ctx context.Context) (*domain.Job, error) {
		return s.jobs.FindByID(ctx, id)
	}

	var (
		j   *domain.Job
		err error
	)
	if s.cache != nil {
		j, err = cache.GetOrLoadJSON[domain.Job](s.cache, ctx, "job:"+id, jobCacheTTL, load)
	} else {
		j, err = load(ctx)
	}
	if err != nil {
		return nil, apperr.Internal("load job failed", err)
	}
	if j == nil {
		return nil, apperr.NotFound("job not found")
	}
	return j, nil
}

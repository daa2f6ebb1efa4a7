package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"go-job-board/internal/apperr"
	"go-job-board/internal/domain"
	"go-job-board/internal/storage"
	"go-job-board/pkg/utils"
)

// 仅接受文档类附件
var allowedCVExt = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

type ApplicationService struct {
	applications domain.ApplicationRepository
	jobs         domain.JobRepository
	users        domain.UserRepository
	uploader     storage.Uploader
	log          *zap.Logger
}

func NewApplicationService(applications domain.ApplicationRepository, jobs domain.JobRepository, users domain.UserRepository, uploader storage.Uploader, log *zap.Logger) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		users:        users,
		uploader:     uploader,
		log:          log,
	}
}

// CVUpload 投递附件；handler 未取到文件时传 nil
type CVUpload struct {
	Filename string
	Data     io.Reader
}

// Apply 角色和职位检查先于附件检查，雇主缺附件也必须 403；
// 上传在事务开启前完成，事务回滚时外部存储里的孤儿文件可接受
func (s *ApplicationService) Apply(ctx context.Context, callerID, jobID string, cv *CVUpload) (*domain.Application, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, apperr.Internal("load user failed", err)
	}
	if caller == nil {
		return nil, apperr.NotFound("user not found")
	}
	if caller.IsEmployer {
		return nil, apperr.Forbidden("only job seekers can apply for jobs")
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, apperr.Internal("load job failed", err)
	}
	if job == nil {
		return nil, apperr.NotFound("job not found")
	}

	if cv == nil {
		return nil, apperr.BadRequest("CV not uploaded")
	}
	ext := strings.ToLower(filepath.Ext(cv.Filename))
	if _, ok := allowedCVExt[ext]; !ok {
		return nil, apperr.UnsupportedMedia("file type not allowed, only pdf/doc/docx accepted")
	}

	ref, err := s.uploader.Save(ctx, cv.Filename, cv.Data)
	if err != nil {
		return nil, apperr.Internal("upload failed", err)
	}

	a := &domain.Application{
		ID:            utils.NewID(),
		ApplicantID:   caller.ID,
		JobID:         job.ID,
		AttachmentURL: ref,
	}
	if err := s.applications.Submit(ctx, a); err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return nil, err
		}
		return nil, apperr.Internal("submit application failed", err)
	}
	s.log.Info("application submitted",
		zap.String("application_id", a.ID),
		zap.String("job_id", job.ID),
		zap.String("applicant_id", caller.ID),
	)
	return a, nil
}

func (s *ApplicationService) ListMine(ctx context.Context, callerID string) ([]domain.ApplicationSummary, error) {
	caller, err := s.users.FindByID(ctx, callerID)
	if err != nil {
		return nil, apperr.Internal("load user failed", err)
	}
	if caller == nil {
		return nil, apperr.NotFound("user not found")
	}
	if caller.IsEmployer {
		return nil, apperr.Forbidden("only job seekers have applications")
	}
	rows, err := s.applications.ListByApplicant(ctx, caller.ID)
	if err != nil {
		return nil, apperr.Internal("list applications failed", err)
	}
	return rows, nil
}

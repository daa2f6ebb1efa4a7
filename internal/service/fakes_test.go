package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"go-job-board/internal/apperr"
	"go-job-board/internal/domain"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return apperr.Conflict("email already registered")
	}
	cp := *u
	cp.CreatedAt = time.Now()
	r.byID[cp.ID] = &cp
	r.byEmail[cp.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*domain.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[string]*domain.Job)}
}

func (r *fakeJobRepo) Create(ctx context.Context, j *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *j
	cp.CreatedAt = time.Now()
	r.jobs[cp.ID] = &cp
	return nil
}

func (r *fakeJobRepo) List(ctx context.Context) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (r *fakeJobRepo) FindByID(ctx context.Context, id string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) applicantCount(id string) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.jobs[id]; ok {
		return j.ApplicantCount
	}
	return -1
}

// fakeApplicationRepo 模拟事务语义：计数自增与写入在同一把锁内完成
type fakeApplicationRepo struct {
	mu   sync.Mutex
	jobs *fakeJobRepo
	rows []domain.Application
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{jobs: jobs}
}

func (r *fakeApplicationRepo) Submit(ctx context.Context, a *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs.mu.Lock()
	defer r.jobs.mu.Unlock()
	j, ok := r.jobs.jobs[a.JobID]
	if !ok {
		return apperr.NotFound("job not found")
	}
	j.ApplicantCount++
	cp := *a
	cp.CreatedAt = time.Now()
	r.rows = append(r.rows, cp)
	return nil
}

func (r *fakeApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]domain.ApplicationSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.ApplicationSummary
	for _, a := range r.rows {
		if a.ApplicantID != applicantID {
			continue
		}
		title := ""
		if j, err := r.jobs.FindByID(ctx, a.JobID); err == nil && j != nil {
			title = j.Title
		}
		out = append(out, domain.ApplicationSummary{JobTitle: title, AppliedAt: a.CreatedAt})
	}
	return out, nil
}

func (r *fakeApplicationRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}

type fakeBlocklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func newFakeBlocklist() *fakeBlocklist {
	return &fakeBlocklist{revoked: make(map[string]time.Time)}
}

func (b *fakeBlocklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[jti] = time.Now().Add(ttl)
	return nil
}

func (b *fakeBlocklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.revoked[jti]
	return ok && exp.After(time.Now()), nil
}

type fakeUploader struct {
	mu    sync.Mutex
	saved []string
	err   error
}

func (u *fakeUploader) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.saved = append(u.saved, filename)
	return fmt.Sprintf("/uploads/%d_%s", len(u.saved), filename), nil
}

func (u *fakeUploader) calls() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.saved)
}

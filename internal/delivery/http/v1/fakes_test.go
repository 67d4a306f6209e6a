package v1_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"job-portal-backend/internal/domain"
)

// memStore backs every repository used by the router tests. Job writes
// enqueue sync tasks the way the postgres repositories do.
type memStore struct {
	mu         sync.Mutex
	nextID     int64
	users      map[int64]*domain.User
	applicants map[int64]*domain.Applicant
	companies  map[int64]*domain.Company
	jobs       map[int64]*domain.Job
	tasks      map[int64]*domain.SyncTask // keyed by job id
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[int64]*domain.User{},
		applicants: map[int64]*domain.Applicant{},
		companies:  map[int64]*domain.Company{},
		jobs:       map[int64]*domain.Job{},
		tasks:      map[int64]*domain.SyncTask{},
	}
}

func (s *memStore) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *memStore) enqueueLocked(jobID int64, action domain.SyncAction) {
	if t, ok := s.tasks[jobID]; ok {
		t.Action = action
		t.Revision++
		t.AvailableAt = time.Time{}
		return
	}
	s.tasks[jobID] = &domain.SyncTask{ID: s.id(), JobID: jobID, Action: action, Revision: 1}
}

type userRepo struct{ *memStore }

func (r userRepo) create(u *domain.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrDuplicateEmail
		}
	}
	u.ID = r.id()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r userRepo) CreateWithApplicant(_ context.Context, u *domain.User, a *domain.Applicant) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.create(u); err != nil {
		return err
	}
	a.ID = r.id()
	a.UserID = u.ID
	cp := *a
	r.applicants[a.ID] = &cp
	return nil
}

func (r userRepo) CreateWithCompany(_ context.Context, u *domain.User, c *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.create(u); err != nil {
		return err
	}
	c.ID = r.id()
	c.UserID = u.ID
	cp := *c
	r.companies[c.ID] = &cp
	return nil
}

func (r userRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r userRepo) List(context.Context, int, int) ([]domain.User, int64, error) {
	return nil, 0, nil
}

func (r userRepo) Update(context.Context, *domain.User) error { return nil }

func (r userRepo) Delete(context.Context, int64) error { return nil }

type applicantRepo struct{ *memStore }

func (r applicantRepo) GetByID(_ context.Context, id int64) (*domain.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applicants[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r applicantRepo) GetByUserID(_ context.Context, userID int64) (*domain.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.applicants {
		if a.UserID == userID {
			cp := *a
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r applicantRepo) List(context.Context, int, int) ([]domain.Applicant, int64, error) {
	return nil, 0, nil
}

func (r applicantRepo) Update(context.Context, *domain.Applicant) error { return nil }

func (r applicantRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applicants[id]
	if !ok {
		return domain.ErrNotFound
	}
	delete(r.applicants, id)
	delete(r.users, a.UserID)
	return nil
}

type companyRepo struct{ *memStore }

func (r companyRepo) GetByID(_ context.Context, id int64) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r companyRepo) GetByUserID(_ context.Context, userID int64) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r companyRepo) List(context.Context, int, int) ([]domain.Company, int64, error) {
	return nil, 0, nil
}

func (r companyRepo) Update(context.Context, *domain.Company) error { return nil }

func (r companyRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.companies[id]
	if !ok {
		return domain.ErrNotFound
	}
	for jobID, j := range r.jobs {
		if j.CompanyID == id {
			delete(r.jobs, jobID)
			r.enqueueLocked(jobID, domain.SyncActionDelete)
		}
	}
	delete(r.companies, id)
	delete(r.users, c.UserID)
	return nil
}

type jobRepo struct{ *memStore }

func (r jobRepo) withCompany(j *domain.Job) domain.JobWithCompany {
	out := domain.JobWithCompany{Job: *j}
	if c, ok := r.companies[j.CompanyID]; ok {
		out.CompanyName = c.Name
		out.CompanyLogo = c.Logo
		out.CompanyWebsite = c.Website
	}
	return out
}

func (r jobRepo) Create(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.ID = r.id()
	job.CreatedAt = time.Now()
	cp := *job
	r.jobs[job.ID] = &cp
	r.enqueueLocked(job.ID, domain.SyncActionIndex)
	return nil
}

func (r jobRepo) GetByID(_ context.Context, id int64) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r jobRepo) GetByIDWithCompany(_ context.Context, id int64) (*domain.JobWithCompany, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := r.withCompany(j)
	return &out, nil
}

func (r jobRepo) GetManyWithCompany(_ context.Context, ids []int64) ([]domain.JobWithCompany, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.JobWithCompany
	for _, id := range ids {
		if j, ok := r.jobs[id]; ok {
			out = append(out, r.withCompany(j))
		}
	}
	return out, nil
}

func (r jobRepo) FetchWithCompany(context.Context, int, int) ([]domain.JobWithCompany, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.JobWithCompany{}
	for _, j := range r.jobs {
		out = append(out, r.withCompany(j))
	}
	return out, int64(len(out)), nil
}

func (r jobRepo) FetchByCompanyID(context.Context, int64, int, int) ([]domain.Job, int64, error) {
	return nil, 0, nil
}

func (r jobRepo) ListIDs(context.Context) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int64, 0, len(r.jobs))
	for id := range r.jobs {
		ids = append(ids, id)
	}
	return ids, nil
}

func (r jobRepo) Update(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *job
	r.jobs[job.ID] = &cp
	r.enqueueLocked(job.ID, domain.SyncActionIndex)
	return nil
}

func (r jobRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.jobs, id)
	r.enqueueLocked(id, domain.SyncActionDelete)
	return nil
}

// taskRepo is the in-memory outbox.
type taskRepo struct{ *memStore }

func (r taskRepo) Enqueue(_ context.Context, jobID int64, action domain.SyncAction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enqueueLocked(jobID, action)
	return nil
}

func (r taskRepo) EnqueueIfAbsent(_ context.Context, jobID int64, action domain.SyncAction) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[jobID]; ok {
		return false, nil
	}
	r.enqueueLocked(jobID, action)
	return true, nil
}

func (r taskRepo) ClaimDue(_ context.Context, limit int, lease time.Duration) ([]domain.SyncTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var out []domain.SyncTask
	for _, t := range r.tasks {
		if len(out) == limit {
			break
		}
		if t.AvailableAt.After(now) {
			continue
		}
		t.AvailableAt = now.Add(lease)
		out = append(out, *t)
	}
	return out, nil
}

func (r taskRepo) Complete(_ context.Context, task domain.SyncTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[task.JobID]; ok && t.Revision == task.Revision {
		delete(r.tasks, task.JobID)
	}
	return nil
}

func (r taskRepo) Retry(_ context.Context, task domain.SyncTask, delay time.Duration, cause string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tasks[task.JobID]; ok {
		t.Attempts++
		t.LastError = cause
		t.AvailableAt = time.Now().Add(delay)
	}
	return nil
}

func (r taskRepo) Fail(_ context.Context, task domain.SyncTask, _ string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tasks, task.JobID)
	return nil
}

func (r taskRepo) ListFailures(context.Context, int) ([]domain.SyncFailure, error) {
	return nil, nil
}

// owners implements ownership.Store over the same data.
type owners struct{ *memStore }

func (o owners) UserOwner(_ context.Context, id int64) (int64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.users[id]; !ok {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

func (o owners) ApplicantOwner(_ context.Context, id int64) (int64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	a, ok := o.applicants[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return a.UserID, nil
}

func (o owners) CompanyOwner(_ context.Context, id int64) (int64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	c, ok := o.companies[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return c.UserID, nil
}

func (o owners) JobOwner(_ context.Context, id int64) (int64, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	j, ok := o.jobs[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	c, ok := o.companies[j.CompanyID]
	if !ok {
		return 0, domain.ErrNotFound
	}
	return c.UserID, nil
}

func (o owners) ExperienceOwner(context.Context, int64) (int64, error) {
	return 0, domain.ErrNotFound
}

func (o owners) ApplicationOwner(context.Context, int64) (int64, error) {
	return 0, domain.ErrNotFound
}

// memIndex matches a query against title, description and skills.
type memIndex struct {
	mu   sync.Mutex
	docs map[int64]domain.JobDocument
}

func newMemIndex() *memIndex {
	return &memIndex{docs: map[int64]domain.JobDocument{}}
}

func (i *memIndex) EnsureIndex(context.Context) error { return nil }

func (i *memIndex) Upsert(_ context.Context, doc domain.JobDocument) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.docs[doc.JobID] = doc
	return nil
}

func (i *memIndex) Delete(_ context.Context, jobID int64) error {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.docs, jobID)
	return nil
}

func (i *memIndex) Search(_ context.Context, query string, limit int) ([]int64, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	q := strings.ToLower(query)
	var ids []int64
	for id, d := range i.docs {
		text := strings.ToLower(d.Title + " " + d.Description + " " + d.Skills)
		if strings.Contains(text, q) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (i *memIndex) ListIDs(context.Context) ([]int64, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	ids := make([]int64, 0, len(i.docs))
	for id := range i.docs {
		ids = append(ids, id)
	}
	return ids, nil
}
